package response

import (
	"time"

	"apartment-booking/internal/usecase/commands"
	"apartment-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ApartmentSummaryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	NightlyRate string    `json:"nightlyRate"`
}

type PriceResponse struct {
	NightlyRate     string  `json:"nightlyRate"`
	Nights          int     `json:"nights"`
	Subtotal        string  `json:"subtotal"`
	Discount        string  `json:"discount"`
	DiscountPercent *string `json:"discountPercent,omitempty"`
	Total           string  `json:"total"`
	TotalMinorUnits int64   `json:"totalMinorUnits"`
}

type BookingSessionResponse struct {
	ID            uuid.UUID                `json:"id"`
	State         string                   `json:"state"`
	Apartment     ApartmentSummaryResponse `json:"apartment"`
	CheckIn       string                   `json:"checkIn,omitempty"`
	CheckOut      string                   `json:"checkOut,omitempty"`
	GuestName     string                   `json:"guestName,omitempty"`
	GuestEmail    string                   `json:"guestEmail,omitempty"`
	Coupon        *CouponResponse          `json:"coupon,omitempty"`
	Availability  string                   `json:"availability"`
	BookedDates   []string                 `json:"bookedDates"`
	Price         PriceResponse            `json:"price"`
	MissingFields []string                 `json:"missingFields"`
	CanSubmit     bool                     `json:"canSubmit"`
	LastError     string                   `json:"lastError,omitempty"`
	CreatedAt     time.Time                `json:"createdAt"`
	UpdatedAt     time.Time                `json:"updatedAt"`
}

type SubmitResponse struct {
	SessionID   uuid.UUID `json:"sessionId"`
	RedirectURL string    `json:"redirectUrl"`
}

// FromBookingSessionView copies the flat parts with copier and maps nested views one level at a time.
func FromBookingSessionView(v *queries.BookingSessionView) *BookingSessionResponse {
	res := &BookingSessionResponse{
		ID:            v.ID,
		State:         v.State,
		CheckIn:       v.CheckIn,
		CheckOut:      v.CheckOut,
		GuestName:     v.GuestName,
		GuestEmail:    v.GuestEmail,
		Availability:  v.Availability,
		BookedDates:   append([]string{}, v.BookedDates...),
		MissingFields: append([]string{}, v.MissingFields...),
		CanSubmit:     v.CanSubmit,
		LastError:     v.LastError,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
	_ = copier.Copy(&res.Apartment, &v.Apartment)
	_ = copier.Copy(&res.Price, &v.Price)
	if v.Coupon != nil {
		res.Coupon = &CouponResponse{}
		_ = copier.Copy(res.Coupon, v.Coupon)
	}
	return res
}

func FromSubmitResult(r *commands.SubmitResult) *SubmitResponse {
	return &SubmitResponse{SessionID: r.SessionID, RedirectURL: r.RedirectURL}
}
