package readstore

import (
	"context"
	"time"

	"apartment-booking/internal/domain/availability"
	"apartment-booking/internal/infra"
	"apartment-booking/internal/infra/db"
	"apartment-booking/internal/pkg/pgconv"
	"apartment-booking/internal/usecase/shared"
)

// ReservationReadStore reads bookings and coupons; inserting bookings belongs to the payment flow.
type ReservationReadStore struct {
	db      db.DBTX
	queries ReservationReadQueries
}

func NewReservationReadStore(db db.DBTX, queries ReservationReadQueries) *ReservationReadStore {
	return &ReservationReadStore{
		db:      db,
		queries: queries,
	}
}

// ListBookings returns dates as YYYY-MM-DD strings; NULL dates come back empty and are dropped by the parser.
func (r *ReservationReadStore) ListBookings(ctx context.Context, apartmentKey string) ([]availability.RawInterval, error) {
	rows, err := r.queries.ListBookingDatesByKey(ctx, r.db, apartmentKey)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}

	result := make([]availability.RawInterval, len(rows))
	for i, row := range rows {
		result[i] = availability.RawInterval{
			CheckIn:  pgconv.DateString(row.CheckIn),
			CheckOut: pgconv.DateString(row.CheckOut),
		}
	}
	return result, nil
}

// FindActiveCoupon matches the code exactly, case included.
func (r *ReservationReadStore) FindActiveCoupon(ctx context.Context, code string, now time.Time) (*shared.CouponSnapshot, error) {
	row, err := r.queries.GetActiveCouponByCode(ctx, r.db, code, now)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by code", err)
	}

	percent, err := pgconv.DecimalFromNumeric(row.DiscountPercent)
	if err != nil {
		return nil, infra.WrapRepoErr("coupon has an invalid discount", err, infra.KindCorruptData)
	}

	return &shared.CouponSnapshot{
		Code:            row.Code,
		DiscountPercent: percent,
		IsActive:        row.IsActive,
		ExpiresAt:       pgconv.TimeFromPgtype(row.ExpiresAt),
	}, nil
}
