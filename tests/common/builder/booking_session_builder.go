//go:build unit || e2e

package builder

import (
	"time"

	"apartment-booking/internal/handler/dto/request"
	"apartment-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingSessionViewBuilder struct {
	ID          uuid.UUID
	State       string
	ApartmentID uuid.UUID
	CheckIn     string
	CheckOut    string
	GuestName   string
	GuestEmail  string
	Coupon      *queries.AppliedCouponView
	BookedDates []string
	LastError   string
}

func NewBookingSessionViewBuilder() *BookingSessionViewBuilder {
	return &BookingSessionViewBuilder{
		ID:          uuid.New(),
		State:       "empty",
		ApartmentID: uuid.New(),
		BookedDates: []string{"2024-06-10", "2024-06-11"},
	}
}

func (b *BookingSessionViewBuilder) With(mutate func(*BookingSessionViewBuilder)) *BookingSessionViewBuilder {
	mutate(b)
	return b
}

// Build methods

func (b *BookingSessionViewBuilder) BuildView() *queries.BookingSessionView {
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	return &queries.BookingSessionView{
		ID:    b.ID,
		State: b.State,
		Apartment: queries.ApartmentSummary{
			ID:          b.ApartmentID,
			Name:        "Seaside Loft",
			NightlyRate: "100.00",
		},
		CheckIn:      b.CheckIn,
		CheckOut:     b.CheckOut,
		GuestName:    b.GuestName,
		GuestEmail:   b.GuestEmail,
		Coupon:       b.Coupon,
		Availability: "loaded",
		BookedDates:  append([]string{}, b.BookedDates...),
		Price: queries.PriceView{
			NightlyRate: "100.00",
			Subtotal:    "0.00",
			Discount:    "0.00",
			Total:       "0.00",
		},
		MissingFields: []string{},
		LastError:     b.LastError,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (b *BookingSessionViewBuilder) BuildOpenRequestDTO() request.OpenSessionRequest {
	return request.OpenSessionRequest{ApartmentID: b.ApartmentID}
}
