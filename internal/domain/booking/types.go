package booking

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type State string

const (
	StateEmpty         State = "empty"
	StateDatesPartial  State = "dates_partial"
	StateDatesSelected State = "dates_selected"
	StateCouponPending State = "coupon_pending"
	StateReady         State = "ready"
	StateSubmitting    State = "submitting"
	StateRedirected    State = "redirected"
	StateFailed        State = "failed"
)

func (s State) String() string {
	return string(s)
}

func (s State) IsValid() bool {
	switch s {
	case StateEmpty, StateDatesPartial, StateDatesSelected, StateCouponPending,
		StateReady, StateSubmitting, StateRedirected, StateFailed:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the session has been handed off and must not change again.
func (s State) IsTerminal() bool {
	return s == StateRedirected
}

// ApartmentRef is the part of the catalog entry a session needs.
type ApartmentRef struct {
	ID          uuid.UUID
	Name        string
	BookingKey  string
	NightlyRate decimal.Decimal
}

// LoadTicket tags an interval load with the apartment and generation it was issued for.
type LoadTicket struct {
	ApartmentID uuid.UUID
	Generation  int
}
