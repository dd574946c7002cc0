//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"apartment-booking/internal/domain/availability"
	"apartment-booking/internal/domain/booking"
	"apartment-booking/internal/domain/coupon"
	"apartment-booking/internal/domain/pricing"
	"apartment-booking/internal/infra"
	"apartment-booking/internal/pkg/errs"
	"apartment-booking/internal/usecase/queries"
	sharedmock "apartment-booking/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var viewNow = time.Date(2030, 6, 1, 9, 0, 0, 0, time.UTC)

func readySession(t *testing.T) *booking.Session {
	t.Helper()
	apt := booking.ApartmentRef{ID: uuid.New(), Name: "Sea View", BookingKey: "sea-view", NightlyRate: decimal.RequireFromString("99.90")}
	s, ticket := booking.NewSession(uuid.New(), apt, viewNow)
	booked, err := availability.NewBookedInterval(availability.NewDate(2030, 6, 3), availability.NewDate(2030, 6, 4))
	require.NoError(t, err)
	require.NoError(t, s.CompleteLoad(ticket, []availability.BookedInterval{booked}, viewNow))
	require.NoError(t, s.SelectCheckIn(availability.NewDate(2030, 6, 10), viewNow))
	require.NoError(t, s.SelectCheckOut(availability.NewDate(2030, 6, 13), viewNow))
	require.NoError(t, s.SetGuest("Ada", "ada@example.com", viewNow))
	return s
}

func TestBuildSessionView(t *testing.T) {
	calc := pricing.NewDefaultCalculator()

	t.Run("ready session can submit", func(t *testing.T) {
		s := readySession(t)

		view := queries.BuildSessionView(s, calc)

		assert.Equal(t, "ready", view.State)
		assert.Equal(t, "2030-06-10", view.CheckIn)
		assert.Equal(t, "2030-06-13", view.CheckOut)
		assert.Equal(t, "99.90", view.Apartment.NightlyRate)
		assert.Equal(t, []string{"2030-06-03", "2030-06-04"}, view.BookedDates)
		assert.Equal(t, []string{}, view.MissingFields)
		assert.Equal(t, 3, view.Price.Nights)
		assert.Equal(t, "299.70", view.Price.Total)
		assert.Equal(t, int64(29970), view.Price.TotalMinorUnits)
		assert.Nil(t, view.Price.DiscountPercent)
		assert.True(t, view.CanSubmit)
	})

	t.Run("coupon shows in the view and the price", func(t *testing.T) {
		s := readySession(t)
		c, err := coupon.NewCoupon("HALF", decimal.NewFromInt(50), true, viewNow.Add(time.Hour))
		require.NoError(t, err)
		ticket, err := s.BeginCouponValidation(viewNow)
		require.NoError(t, err)
		require.NoError(t, s.CompleteCouponValidation(ticket, c, viewNow))

		view := queries.BuildSessionView(s, calc)

		require.NotNil(t, view.Coupon)
		assert.Equal(t, "HALF", view.Coupon.Code)
		assert.Equal(t, "50", view.Coupon.DiscountPercent)
		require.NotNil(t, view.Price.DiscountPercent)
		assert.Equal(t, "149.85", view.Price.Total)
		assert.Equal(t, "149.85", view.Price.Discount)
	})

	t.Run("pending coupon blocks submit", func(t *testing.T) {
		s := readySession(t)
		_, err := s.BeginCouponValidation(viewNow)
		require.NoError(t, err)

		view := queries.BuildSessionView(s, calc)

		assert.Equal(t, "coupon_pending", view.State)
		assert.False(t, view.CanSubmit)
	})

	t.Run("fresh session lists every missing field", func(t *testing.T) {
		s, _ := booking.NewSession(uuid.New(), booking.ApartmentRef{ID: uuid.New(), NightlyRate: decimal.NewFromInt(10)}, viewNow)

		view := queries.BuildSessionView(s, calc)

		assert.Equal(t, []string{"checkIn", "checkOut", "guestName", "guestEmail"}, view.MissingFields)
		assert.Equal(t, "loading", view.Availability)
		assert.Equal(t, "0.00", view.Price.Total)
		assert.False(t, view.CanSubmit)
	})
}

func TestBookingSessionQueries_GetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sessions := sharedmock.NewMockSessionStore(ctrl)
		s := readySession(t)
		sessions.EXPECT().Get(gomock.Any(), s.ID()).Return(s, nil)

		view, err := queries.NewBookingSessionQueries(sessions, pricing.NewDefaultCalculator()).GetByID(context.Background(), s.ID())

		require.NoError(t, err)
		assert.Equal(t, s.ID(), view.ID)
	})

	t.Run("unknown or expired", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sessions := sharedmock.NewMockSessionStore(ctrl)
		sessions.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr("booking session not found", nil, infra.KindNotFound))

		_, err := queries.NewBookingSessionQueries(sessions, pricing.NewDefaultCalculator()).GetByID(context.Background(), uuid.New())

		assert.True(t, errs.Is(err, queries.ErrSessionNotFound))
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sessions := sharedmock.NewMockSessionStore(ctrl)
		sessions.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr("failed to read booking session", errors.New("redis down"), infra.KindCacheFailure))

		_, err := queries.NewBookingSessionQueries(sessions, pricing.NewDefaultCalculator()).GetByID(context.Background(), uuid.New())

		assert.True(t, errs.Is(err, queries.ErrSessionLoad))
		assert.False(t, errs.Is(err, queries.ErrSessionNotFound))
	})
}
