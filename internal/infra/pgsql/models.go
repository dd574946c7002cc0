package pgsql

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Apartment struct {
	ID          uuid.UUID          `db:"id"`
	BookingKey  string             `db:"booking_key"`
	Name        string             `db:"name"`
	NightlyRate pgtype.Numeric     `db:"nightly_rate"`
	Features    []string           `db:"features"`
	CreatedAt   pgtype.Timestamptz `db:"created_at"`
	UpdatedAt   pgtype.Timestamptz `db:"updated_at"`
}

// BookingDates is the only part of a booking the availability check reads.
type BookingDates struct {
	CheckIn  pgtype.Date `db:"check_in"`
	CheckOut pgtype.Date `db:"check_out"`
}

type Coupon struct {
	Code            string             `db:"code"`
	DiscountPercent pgtype.Numeric     `db:"discount_percent"`
	IsActive        bool               `db:"is_active"`
	ExpiresAt       pgtype.Timestamptz `db:"expires_at"`
}
