package readstore

import (
	"context"
	"time"

	"apartment-booking/internal/infra/db"
	"apartment-booking/internal/infra/pgsql"

	"github.com/google/uuid"
)

type ApartmentReadQueries interface {
	ListApartments(ctx context.Context, db db.DBTX) ([]pgsql.Apartment, error)
	GetApartmentByID(ctx context.Context, db db.DBTX, id uuid.UUID) (pgsql.Apartment, error)
}

type ReservationReadQueries interface {
	ListBookingDatesByKey(ctx context.Context, db db.DBTX, apartmentKey string) ([]pgsql.BookingDates, error)
	GetActiveCouponByCode(ctx context.Context, db db.DBTX, code string, now time.Time) (pgsql.Coupon, error)
}
