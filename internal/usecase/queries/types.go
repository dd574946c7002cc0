package queries

import (
	"time"

	"github.com/google/uuid"
)

// ApartmentView represents read-optimized catalog data
type ApartmentView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	NightlyRate string    `json:"nightly_rate"`
	Features    []string  `json:"features"`
}

// AvailabilityView is the public calendar for one apartment
type AvailabilityView struct {
	ApartmentID uuid.UUID      `json:"apartment_id"`
	Intervals   []IntervalView `json:"intervals"`
	BookedDates []string       `json:"booked_dates"`
	Skipped     int            `json:"skipped"`
}

type IntervalView struct {
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
}

// BookingSessionView is everything the booking dialog renders
type BookingSessionView struct {
	ID            uuid.UUID          `json:"id"`
	State         string             `json:"state"`
	Apartment     ApartmentSummary   `json:"apartment"`
	CheckIn       string             `json:"check_in,omitempty"`
	CheckOut      string             `json:"check_out,omitempty"`
	GuestName     string             `json:"guest_name,omitempty"`
	GuestEmail    string             `json:"guest_email,omitempty"`
	Coupon        *AppliedCouponView `json:"coupon,omitempty"`
	Availability  string             `json:"availability"`
	BookedDates   []string           `json:"booked_dates"`
	Price         PriceView          `json:"price"`
	MissingFields []string           `json:"missing_fields"`
	CanSubmit     bool               `json:"can_submit"`
	LastError     string             `json:"last_error,omitempty"`
	RedirectURL   string             `json:"redirect_url,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

type ApartmentSummary struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	NightlyRate string    `json:"nightly_rate"`
}

type AppliedCouponView struct {
	Code            string    `json:"code"`
	DiscountPercent string    `json:"discount_percent"`
	ExpiresAt       time.Time `json:"expires_at"`
}

type PriceView struct {
	NightlyRate     string  `json:"nightly_rate"`
	Nights          int     `json:"nights"`
	Subtotal        string  `json:"subtotal"`
	Discount        string  `json:"discount"`
	DiscountPercent *string `json:"discount_percent,omitempty"`
	Total           string  `json:"total"`
	TotalMinorUnits int64   `json:"total_minor_units"`
}
