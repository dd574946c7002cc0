package pgsql

import (
	"context"
	"time"

	"apartment-booking/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type Queries struct{}

func New() *Queries {
	return &Queries{}
}

const listApartments = `
SELECT id, booking_key, name, nightly_rate, features, created_at, updated_at
FROM apartments
ORDER BY name, id
`

func (q *Queries) ListApartments(ctx context.Context, db db.DBTX) ([]Apartment, error) {
	rows, err := db.Query(ctx, listApartments)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[Apartment])
}

const getApartmentByID = `
SELECT id, booking_key, name, nightly_rate, features, created_at, updated_at
FROM apartments
WHERE id = $1
`

func (q *Queries) GetApartmentByID(ctx context.Context, db db.DBTX, id uuid.UUID) (Apartment, error) {
	rows, err := db.Query(ctx, getApartmentByID, id)
	if err != nil {
		return Apartment{}, err
	}
	return pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[Apartment])
}

const listBookingDatesByKey = `
SELECT check_in, check_out
FROM bookings
WHERE apartment_key = $1
ORDER BY check_in
`

func (q *Queries) ListBookingDatesByKey(ctx context.Context, db db.DBTX, apartmentKey string) ([]BookingDates, error) {
	rows, err := db.Query(ctx, listBookingDatesByKey, apartmentKey)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[BookingDates])
}

const getActiveCouponByCode = `
SELECT code, discount_percent, is_active, expires_at
FROM coupons
WHERE code = $1
  AND is_active = true
  AND expires_at > $2
LIMIT 1
`

func (q *Queries) GetActiveCouponByCode(ctx context.Context, db db.DBTX, code string, now time.Time) (Coupon, error) {
	rows, err := db.Query(ctx, getActiveCouponByCode, code, now)
	if err != nil {
		return Coupon{}, err
	}
	return pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[Coupon])
}
