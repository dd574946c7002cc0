package booking

import (
	"errors"
	"net/mail"
	"strings"

	"apartment-booking/internal/domain/availability"
	"apartment-booking/internal/domain/coupon"

	"github.com/google/uuid"
)

var (
	ErrGuestNameTooLong = errors.New("guest name is too long (max 255 characters)")
	ErrInvalidEmail     = errors.New("guest email is not a valid address")
)

const MaxGuestNameLength = 255

// Draft is the in-progress booking; zero dates mean "not chosen yet".
type Draft struct {
	ApartmentID uuid.UUID
	CheckIn     availability.Date
	CheckOut    availability.Date
	GuestName   string
	GuestEmail  string
	Coupon      *coupon.Coupon
}

func (d Draft) HasDates() bool {
	return !d.CheckIn.IsZero() && !d.CheckOut.IsZero()
}

func (d Draft) HasGuest() bool {
	return d.GuestName != "" && d.GuestEmail != ""
}

// Nights is zero until both dates are chosen.
func (d Draft) Nights() int {
	if !d.HasDates() || !d.CheckOut.After(d.CheckIn) {
		return 0
	}
	return d.CheckIn.DaysUntil(d.CheckOut)
}

// MissingFields lists the required fields that are still empty, in form order.
func (d Draft) MissingFields() []string {
	var missing []string
	if d.CheckIn.IsZero() {
		missing = append(missing, "checkIn")
	}
	if d.CheckOut.IsZero() {
		missing = append(missing, "checkOut")
	}
	if d.GuestName == "" {
		missing = append(missing, "guestName")
	}
	if d.GuestEmail == "" {
		missing = append(missing, "guestEmail")
	}
	return missing
}

func normalizeGuest(name, email string) (string, string, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if len(name) > MaxGuestNameLength {
		return "", "", ErrGuestNameTooLong
	}
	if email != "" {
		addr, err := mail.ParseAddress(email)
		if err != nil || addr.Address != email {
			return "", "", ErrInvalidEmail
		}
	}
	return name, email, nil
}
