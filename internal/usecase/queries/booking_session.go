package queries

import (
	"context"

	"apartment-booking/internal/domain/availability"
	"apartment-booking/internal/domain/booking"
	"apartment-booking/internal/domain/pricing"
	"apartment-booking/internal/infra"
	"apartment-booking/internal/pkg/errs"
	"apartment-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound = errs.New("booking session not found")
	ErrSessionLoad     = errs.New("failed to load booking session")
)

type BookingSessionQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingSessionView, error)
}

type bookingSessionQueriesImpl struct {
	sessions shared.SessionStore
	calc     pricing.Calculator
}

func NewBookingSessionQueries(sessions shared.SessionStore, calc pricing.Calculator) BookingSessionQueries {
	return &bookingSessionQueriesImpl{sessions: sessions, calc: calc}
}

func (q *bookingSessionQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingSessionView, error) {
	s, err := q.sessions.Get(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, errs.Mark(err, ErrSessionLoad)
	}
	return BuildSessionView(s, q.calc), nil
}

// BuildSessionView renders a session with its current price quote.
func BuildSessionView(s *booking.Session, calc pricing.Calculator) *BookingSessionView {
	draft := s.Draft()
	apt := s.Apartment()
	quote := s.Quote(calc)

	booked := s.BookedDates()
	bookedDates := make([]string, len(booked))
	for i, d := range booked {
		bookedDates[i] = d.String()
	}

	missing := draft.MissingFields()
	if missing == nil {
		missing = []string{}
	}

	view := &BookingSessionView{
		ID:    s.ID(),
		State: s.State().String(),
		Apartment: ApartmentSummary{
			ID:          apt.ID,
			Name:        apt.Name,
			NightlyRate: apt.NightlyRate.StringFixed(pricing.CurrencyExponent),
		},
		CheckIn:       draft.CheckIn.String(),
		CheckOut:      draft.CheckOut.String(),
		GuestName:     draft.GuestName,
		GuestEmail:    draft.GuestEmail,
		Availability:  s.LoadState().String(),
		BookedDates:   bookedDates,
		Price:         toPriceView(quote),
		MissingFields: missing,
		CanSubmit:     canSubmit(s, missing),
		LastError:     s.LastError(),
		RedirectURL:   s.RedirectURL(),
		CreatedAt:     s.CreatedAt(),
		UpdatedAt:     s.UpdatedAt(),
	}
	if c := draft.Coupon; c != nil {
		view.Coupon = &AppliedCouponView{
			Code:            c.Code().String(),
			DiscountPercent: c.Discount().String(),
			ExpiresAt:       c.ExpiresAt(),
		}
	}
	return view
}

func canSubmit(s *booking.Session, missing []string) bool {
	switch s.State() {
	case booking.StateReady, booking.StateFailed:
	default:
		return false
	}
	return len(missing) == 0 && s.LoadState() == availability.LoadDone
}

func toPriceView(q pricing.Quote) PriceView {
	pv := PriceView{
		NightlyRate:     q.NightlyRate.StringFixed(pricing.CurrencyExponent),
		Nights:          q.Nights,
		Subtotal:        q.Subtotal.StringFixed(pricing.CurrencyExponent),
		Discount:        q.Discount.StringFixed(pricing.CurrencyExponent),
		Total:           q.Total.StringFixed(pricing.CurrencyExponent),
		TotalMinorUnits: q.TotalMinorUnits(),
	}
	if q.DiscountPercent != nil {
		p := q.DiscountPercent.String()
		pv.DiscountPercent = &p
	}
	return pv
}
