//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"apartment-booking/internal/domain/availability"
	"apartment-booking/internal/infra"
	"apartment-booking/internal/infra/db"
	"apartment-booking/internal/infra/pgsql"
	"apartment-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReservationReadQueries struct {
	mock.Mock
}

func (m *MockReservationReadQueries) ListBookingDatesByKey(ctx context.Context, db db.DBTX, apartmentKey string) ([]pgsql.BookingDates, error) {
	args := m.Called(ctx, db, apartmentKey)
	rows, _ := args.Get(0).([]pgsql.BookingDates)
	return rows, args.Error(1)
}

func (m *MockReservationReadQueries) GetActiveCouponByCode(ctx context.Context, db db.DBTX, code string, now time.Time) (pgsql.Coupon, error) {
	args := m.Called(ctx, db, code, now)
	return args.Get(0).(pgsql.Coupon), args.Error(1)
}

func pgDate(s string) pgtype.Date {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return pgtype.Date{Time: t, Valid: true}
}

func TestListBookings(t *testing.T) {
	ctx := context.Background()

	t.Run("formats dates and keeps NULLs empty", func(t *testing.T) {
		q := new(MockReservationReadQueries)
		q.On("ListBookingDatesByKey", ctx, nil, "seaside").Return([]pgsql.BookingDates{
			{CheckIn: pgDate("2024-06-01"), CheckOut: pgDate("2024-06-03")},
			{CheckIn: pgDate("2024-07-10"), CheckOut: pgtype.Date{}},
		}, nil)
		store := NewReservationReadStore(nil, q)

		got, err := store.ListBookings(ctx, "seaside")
		require.NoError(t, err)
		assert.Equal(t, []availability.RawInterval{
			{CheckIn: "2024-06-01", CheckOut: "2024-06-03"},
			{CheckIn: "2024-07-10", CheckOut: ""},
		}, got)
		q.AssertExpectations(t)
	})

	t.Run("database error", func(t *testing.T) {
		q := new(MockReservationReadQueries)
		q.On("ListBookingDatesByKey", ctx, nil, "seaside").Return(nil, assert.AnError)
		store := NewReservationReadStore(nil, q)

		_, err := store.ListBookings(ctx, "seaside")
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestFindActiveCoupon(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	expires := now.Add(48 * time.Hour)

	tests := []struct {
		name      string
		row       pgsql.Coupon
		queryErr  error
		wantKind  infra.RepositoryErrorKind
		wantError bool
	}{
		{
			name: "active coupon",
			row: pgsql.Coupon{
				Code:            "SUMMER10",
				DiscountPercent: pgconv.NumericFromDecimal(decimal.NewFromInt(10)),
				IsActive:        true,
				ExpiresAt:       pgtype.Timestamptz{Time: expires, Valid: true},
			},
		},
		{
			name:      "no match",
			queryErr:  pgx.ErrNoRows,
			wantKind:  infra.KindNotFound,
			wantError: true,
		},
		{
			name:      "database error",
			queryErr:  assert.AnError,
			wantKind:  infra.KindDBFailure,
			wantError: true,
		},
		{
			name: "NULL discount",
			row: pgsql.Coupon{
				Code:      "BROKEN",
				IsActive:  true,
				ExpiresAt: pgtype.Timestamptz{Time: expires, Valid: true},
			},
			wantKind:  infra.KindCorruptData,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockReservationReadQueries)
			q.On("GetActiveCouponByCode", ctx, nil, "SUMMER10", now).Return(tt.row, tt.queryErr)
			store := NewReservationReadStore(nil, q)

			got, err := store.FindActiveCoupon(ctx, "SUMMER10", now)
			if tt.wantError {
				assert.Nil(t, got)
				assert.True(t, infra.IsKind(err, tt.wantKind), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "SUMMER10", got.Code)
			assert.True(t, got.DiscountPercent.Equal(decimal.NewFromInt(10)))
			assert.True(t, got.IsActive)
			assert.Equal(t, expires, got.ExpiresAt)
		})
	}
}
