package request

import (
	"strings"

	"apartment-booking/internal/domain/availability"

	"github.com/google/uuid"
)

type OpenSessionRequest struct {
	ApartmentID uuid.UUID `json:"apartmentId" binding:"required"`
}

type ChangeApartmentRequest struct {
	ApartmentID uuid.UUID `json:"apartmentId" binding:"required"`
}

type SelectDateRequest struct {
	Date string `json:"date" binding:"required,len=10"`
}

func (r SelectDateRequest) ToDate() (availability.Date, error) {
	return availability.ParseDate(strings.TrimSpace(r.Date))
}

// Both fields may be empty while the guest is still typing; completeness is checked on submit.
type UpdateGuestRequest struct {
	Name  string `json:"name" binding:"max=200"`
	Email string `json:"email" binding:"max=254"`
}

type ApplyCouponRequest struct {
	Code string `json:"code" binding:"max=64"`
}
