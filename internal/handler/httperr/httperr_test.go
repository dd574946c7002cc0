//go:build unit

package httperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"apartment-booking/internal/domain/booking"
	"apartment-booking/internal/pkg/errs"
	"apartment-booking/internal/usecase/commands"
	"apartment-booking/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "validation keeps the domain message",
			err:        errs.Mark(booking.ErrDateBooked, commands.ErrBookingValidation),
			wantStatus: http.StatusUnprocessableEntity,
			wantMsg:    booking.ErrDateBooked.Error(),
		},
		{
			name:       "missing field",
			err:        errs.Mark(fmt.Errorf("%w: guestEmail", booking.ErrMissingRequiredField), commands.ErrBookingValidation),
			wantStatus: http.StatusUnprocessableEntity,
			wantMsg:    "missing required field: guestEmail",
		},
		{name: "unknown session", err: commands.ErrSessionNotFound, wantStatus: http.StatusNotFound, wantMsg: "Booking session not found"},
		{name: "unknown apartment", err: queries.ErrApartmentNotFound, wantStatus: http.StatusNotFound, wantMsg: "Apartment not found"},
		{name: "in progress", err: booking.ErrSubmissionInProgress, wantStatus: http.StatusConflict, wantMsg: booking.ErrSubmissionInProgress.Error()},
		{name: "closed", err: booking.ErrSessionClosed, wantStatus: http.StatusConflict, wantMsg: booking.ErrSessionClosed.Error()},
		{name: "coupon pending", err: errs.Mark(booking.ErrCouponPending, commands.ErrBookingValidation), wantStatus: http.StatusConflict, wantMsg: booking.ErrCouponPending.Error()},
		{name: "busy", err: errs.Mark(errors.New("lock timeout"), commands.ErrSessionBusy), wantStatus: http.StatusConflict},
		{name: "invalid coupon", err: commands.ErrInvalidOrExpiredCoupon, wantStatus: http.StatusUnprocessableEntity},
		{name: "empty coupon", err: commands.ErrEmptyCouponCode, wantStatus: http.StatusUnprocessableEntity, wantMsg: "coupon code is empty"},
		{name: "coupon lookup", err: errs.Mark(errors.New("db down"), commands.ErrCouponLookupFailed), wantStatus: http.StatusServiceUnavailable},
		{name: "checkout", err: errs.Mark(errors.New("502 from backend"), commands.ErrCheckoutFailed), wantStatus: http.StatusBadGateway},
		{name: "catalog", err: errs.Mark(errors.New("db down"), queries.ErrCatalogUnavailable), wantStatus: http.StatusServiceUnavailable},
		{name: "bookings", err: errs.Mark(errors.New("db down"), queries.ErrBookingsLoadFailed), wantStatus: http.StatusServiceUnavailable},
		{name: "unexpected", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantMsg: "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := StatusOf(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, msg)
			}
			assert.NotContains(t, msg, "db down")
		})
	}
}
