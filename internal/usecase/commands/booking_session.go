package commands

import (
	"context"
	"errors"
	"log/slog"

	"apartment-booking/internal/domain/availability"
	"apartment-booking/internal/domain/booking"
	"apartment-booking/internal/domain/pricing"
	"apartment-booking/internal/infra"
	"apartment-booking/internal/pkg/clock"
	"apartment-booking/internal/pkg/errs"
	"apartment-booking/internal/usecase/queries"
	"apartment-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrApartmentNotFound    = queries.ErrApartmentNotFound
	ErrSessionNotFound      = queries.ErrSessionNotFound
	ErrSubmissionInProgress = booking.ErrSubmissionInProgress
	ErrSessionClosed        = booking.ErrSessionClosed
	ErrCouponPending        = booking.ErrCouponPending
	ErrCatalogUnavailable   = queries.ErrCatalogUnavailable

	ErrBookingValidation  = errs.New("booking validation failed")
	ErrCheckoutFailed     = errs.New("checkout could not be started")
	ErrSessionBusy        = errs.New("booking session is busy")
	ErrSessionStoreFailed = errs.New("booking session storage failed")
)

type SubmitResult struct {
	SessionID   uuid.UUID
	RedirectURL string
}

type BookingSessionCommands interface {
	Open(ctx context.Context, apartmentID uuid.UUID) (*queries.BookingSessionView, error)
	ChangeApartment(ctx context.Context, id, apartmentID uuid.UUID) (*queries.BookingSessionView, error)
	SelectCheckIn(ctx context.Context, id uuid.UUID, date availability.Date) (*queries.BookingSessionView, error)
	SelectCheckOut(ctx context.Context, id uuid.UUID, date availability.Date) (*queries.BookingSessionView, error)
	UpdateGuest(ctx context.Context, id uuid.UUID, name, email string) (*queries.BookingSessionView, error)
	// ApplyCoupon returns the updated view alongside a typed coupon error when the code is refused.
	ApplyCoupon(ctx context.Context, id uuid.UUID, code string) (*queries.BookingSessionView, error)
	RemoveCoupon(ctx context.Context, id uuid.UUID) (*queries.BookingSessionView, error)
	RefreshAvailability(ctx context.Context, id uuid.UUID) (*queries.BookingSessionView, error)
	Submit(ctx context.Context, id uuid.UUID) (*SubmitResult, error)
	Close(ctx context.Context, id uuid.UUID) error
}

type BookingSessionOptions struct {
	RecheckOnSubmit bool
	// MaxStayNights caps new sessions; zero means booking.DefaultMaxStayNights.
	MaxStayNights int
}

type bookingSessionCommandsImpl struct {
	sessions shared.SessionStore
	locker   shared.SessionLocker
	catalog  shared.ApartmentCatalog
	keys     shared.ApartmentKeyMapper
	store    shared.ReservationStore
	coupons  CouponValidator
	checkout shared.CheckoutHandoff
	events   shared.EventPublisher
	calc     pricing.Calculator
	clock    clock.Clock
	opts     BookingSessionOptions
	newID    func() uuid.UUID
}

func NewBookingSessionCommands(
	sessions shared.SessionStore,
	locker shared.SessionLocker,
	catalog shared.ApartmentCatalog,
	keys shared.ApartmentKeyMapper,
	store shared.ReservationStore,
	coupons CouponValidator,
	checkout shared.CheckoutHandoff,
	events shared.EventPublisher,
	calc pricing.Calculator,
	clock clock.Clock,
	opts BookingSessionOptions,
) BookingSessionCommands {
	return &bookingSessionCommandsImpl{
		sessions: sessions,
		locker:   locker,
		catalog:  catalog,
		keys:     keys,
		store:    store,
		coupons:  coupons,
		checkout: checkout,
		events:   events,
		calc:     calc,
		clock:    clock,
		opts:     opts,
		newID:    uuid.New,
	}
}

func (u *bookingSessionCommandsImpl) Open(ctx context.Context, apartmentID uuid.UUID) (*queries.BookingSessionView, error) {
	apt, err := u.apartmentRef(ctx, apartmentID)
	if err != nil {
		return nil, err
	}

	s, ticket := booking.NewSession(u.newID(), apt, u.clock.Now())
	s.SetMaxStayNights(u.opts.MaxStayNights)
	if err := u.sessions.Save(ctx, s); err != nil {
		return nil, errs.Mark(err, ErrSessionStoreFailed)
	}
	slog.Info("booking session opened", "session_id", s.ID(), "apartment_id", apt.ID)

	s, err = u.loadIntervals(ctx, s.ID(), ticket, apt.BookingKey, false)
	if err != nil {
		return nil, err
	}
	return u.view(s), nil
}

func (u *bookingSessionCommandsImpl) ChangeApartment(ctx context.Context, id, apartmentID uuid.UUID) (*queries.BookingSessionView, error) {
	apt, err := u.apartmentRef(ctx, apartmentID)
	if err != nil {
		return nil, err
	}

	var ticket booking.LoadTicket
	if _, err := u.mutate(ctx, id, func(s *booking.Session) error {
		t, err := s.ChangeApartment(apt, u.clock.Now())
		ticket = t
		return err
	}); err != nil {
		return nil, err
	}

	s, err := u.loadIntervals(ctx, id, ticket, apt.BookingKey, false)
	if err != nil {
		return nil, err
	}
	return u.view(s), nil
}

func (u *bookingSessionCommandsImpl) SelectCheckIn(ctx context.Context, id uuid.UUID, date availability.Date) (*queries.BookingSessionView, error) {
	return u.mutateView(ctx, id, func(s *booking.Session) error {
		return s.SelectCheckIn(date, u.clock.Now())
	})
}

func (u *bookingSessionCommandsImpl) SelectCheckOut(ctx context.Context, id uuid.UUID, date availability.Date) (*queries.BookingSessionView, error) {
	return u.mutateView(ctx, id, func(s *booking.Session) error {
		return s.SelectCheckOut(date, u.clock.Now())
	})
}

func (u *bookingSessionCommandsImpl) UpdateGuest(ctx context.Context, id uuid.UUID, name, email string) (*queries.BookingSessionView, error) {
	return u.mutateView(ctx, id, func(s *booking.Session) error {
		return s.SetGuest(name, email, u.clock.Now())
	})
}

func (u *bookingSessionCommandsImpl) ApplyCoupon(ctx context.Context, id uuid.UUID, code string) (*queries.BookingSessionView, error) {
	var ticket int
	if _, err := u.mutate(ctx, id, func(s *booking.Session) error {
		t, err := s.BeginCouponValidation(u.clock.Now())
		ticket = t
		return err
	}); err != nil {
		return nil, err
	}

	c, lookupErr := u.coupons.ValidateCoupon(ctx, code)

	s, err := u.mutate(context.WithoutCancel(ctx), id, func(s *booking.Session) error {
		var err error
		if lookupErr != nil {
			err = s.FailCouponValidation(ticket, couponFailure(lookupErr), u.clock.Now())
		} else {
			err = s.CompleteCouponValidation(ticket, c, u.clock.Now())
		}
		if errors.Is(err, booking.ErrStaleResult) {
			slog.Debug("discarding superseded coupon result", "session_id", id)
			return nil
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return u.view(s), lookupErr
}

func (u *bookingSessionCommandsImpl) RemoveCoupon(ctx context.Context, id uuid.UUID) (*queries.BookingSessionView, error) {
	return u.mutateView(ctx, id, func(s *booking.Session) error {
		return s.RemoveCoupon(u.clock.Now())
	})
}

func (u *bookingSessionCommandsImpl) RefreshAvailability(ctx context.Context, id uuid.UUID) (*queries.BookingSessionView, error) {
	s, err := u.refresh(ctx, id, false)
	if err != nil {
		return nil, err
	}
	return u.view(s), nil
}

// Submit re-reads bookings, re-validates and hands the booking to checkout. Nothing holds the dates
// between the recheck and payment, so two overlapping sessions can both get a redirect URL.
func (u *bookingSessionCommandsImpl) Submit(ctx context.Context, id uuid.UUID) (*SubmitResult, error) {
	if u.opts.RecheckOnSubmit {
		if _, err := u.refresh(ctx, id, true); err != nil {
			return nil, err
		}
	}

	var sub *booking.Submission
	if _, err := u.mutate(ctx, id, func(s *booking.Session) error {
		var err error
		sub, err = s.BeginSubmit(u.calc, u.clock.Now())
		return err
	}); err != nil {
		return nil, err
	}

	req := toCheckoutRequest(sub)
	u.publish(ctx, shared.EventCheckoutStarted, sub, "")

	url, checkoutErr := u.checkout.CreateSession(ctx, req)

	// The outcome must be recorded even if the caller went away, or the session stays Submitting.
	ctx = context.WithoutCancel(ctx)
	unlock, err := u.lock(ctx, id)
	if err != nil {
		return nil, err
	}
	defer unlock()

	s, err := u.get(ctx, id)
	if err != nil {
		return nil, err
	}

	if checkoutErr != nil {
		slog.Warn("checkout handoff failed", "session_id", id, "error", checkoutErr)
		if err := s.FailSubmit(ErrCheckoutFailed, u.clock.Now()); err != nil {
			return nil, errs.Mark(err, ErrBookingValidation)
		}
		if err := u.sessions.Save(ctx, s); err != nil {
			return nil, errs.Mark(err, ErrSessionStoreFailed)
		}
		u.publish(ctx, shared.EventCheckoutFailed, sub, checkoutErr.Error())
		return nil, errs.Mark(checkoutErr, ErrCheckoutFailed)
	}

	if err := s.CompleteSubmit(url, u.clock.Now()); err != nil {
		return nil, errs.Mark(err, ErrBookingValidation)
	}
	if err := u.sessions.Delete(ctx, id); err != nil {
		slog.Warn("failed to discard redirected booking session", "session_id", id, "error", err)
	}
	slog.Info("booking session handed off to checkout", "session_id", id)

	return &SubmitResult{SessionID: id, RedirectURL: url}, nil
}

func (u *bookingSessionCommandsImpl) Close(ctx context.Context, id uuid.UUID) error {
	unlock, err := u.lock(ctx, id)
	if err != nil {
		return err
	}
	defer unlock()

	s, err := u.get(ctx, id)
	if err != nil {
		return err
	}
	if s.State() == booking.StateSubmitting {
		return ErrSubmissionInProgress
	}
	if err := u.sessions.Delete(ctx, id); err != nil {
		return errs.Mark(err, ErrSessionStoreFailed)
	}
	return nil
}

// refresh re-reads the bookings; a recheck keeps the draft so that submit can report the conflict.
func (u *bookingSessionCommandsImpl) refresh(ctx context.Context, id uuid.UUID, recheck bool) (*booking.Session, error) {
	var (
		ticket booking.LoadTicket
		key    string
	)
	if _, err := u.mutate(ctx, id, func(s *booking.Session) error {
		t, err := s.BeginLoad(u.clock.Now())
		ticket = t
		key = s.Apartment().BookingKey
		return err
	}); err != nil {
		return nil, err
	}
	return u.loadIntervals(ctx, id, ticket, key, recheck)
}

// loadIntervals reads outside the session lock and applies the result only if ticket is still current.
func (u *bookingSessionCommandsImpl) loadIntervals(ctx context.Context, id uuid.UUID, ticket booking.LoadTicket, key string, recheck bool) (*booking.Session, error) {
	raws, loadErr := u.store.ListBookings(ctx, key)

	var intervals []availability.BookedInterval
	if loadErr == nil {
		var skipped int
		intervals, skipped = availability.ParseIntervals(raws)
		if skipped > 0 {
			slog.Warn("skipped malformed bookings", "booking_key", key, "skipped", skipped)
		}
	} else {
		slog.Warn("failed to load bookings", "session_id", id, "booking_key", key, "error", loadErr)
	}

	return u.mutate(context.WithoutCancel(ctx), id, func(s *booking.Session) error {
		var err error
		if loadErr != nil {
			err = s.FailLoad(ticket, u.clock.Now())
		} else if recheck {
			err = s.CompleteRecheck(ticket, intervals, u.clock.Now())
		} else {
			err = s.CompleteLoad(ticket, intervals, u.clock.Now())
		}
		if errors.Is(err, booking.ErrStaleResult) {
			slog.Debug("discarding superseded availability", "session_id", id, "generation", ticket.Generation)
			return nil
		}
		return err
	})
}

func (u *bookingSessionCommandsImpl) mutateView(ctx context.Context, id uuid.UUID, fn func(s *booking.Session) error) (*queries.BookingSessionView, error) {
	s, err := u.mutate(ctx, id, fn)
	if err != nil {
		return nil, err
	}
	return u.view(s), nil
}

// mutate runs fn under the session lock and saves the session even when fn fails,
// since a rejected submit still moves the session to Failed.
func (u *bookingSessionCommandsImpl) mutate(ctx context.Context, id uuid.UUID, fn func(s *booking.Session) error) (*booking.Session, error) {
	unlock, err := u.lock(ctx, id)
	if err != nil {
		return nil, err
	}
	defer unlock()

	s, err := u.get(ctx, id)
	if err != nil {
		return nil, err
	}

	fnErr := fn(s)
	if err := u.sessions.Save(ctx, s); err != nil {
		return nil, errs.Mark(err, ErrSessionStoreFailed)
	}
	if fnErr != nil {
		return nil, classify(fnErr)
	}
	return s, nil
}

func (u *bookingSessionCommandsImpl) lock(ctx context.Context, id uuid.UUID) (func(), error) {
	unlock, err := u.locker.Lock(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrSessionBusy)
	}
	return unlock, nil
}

func (u *bookingSessionCommandsImpl) get(ctx context.Context, id uuid.UUID) (*booking.Session, error) {
	s, err := u.sessions.Get(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, errs.Mark(err, ErrSessionStoreFailed)
	}
	return s, nil
}

func (u *bookingSessionCommandsImpl) apartmentRef(ctx context.Context, id uuid.UUID) (booking.ApartmentRef, error) {
	apt, err := u.catalog.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return booking.ApartmentRef{}, ErrApartmentNotFound
		}
		return booking.ApartmentRef{}, errs.Mark(err, ErrCatalogUnavailable)
	}
	return booking.ApartmentRef{
		ID:          apt.ID,
		Name:        apt.Name,
		BookingKey:  u.keys.BookingKey(apt.ID, apt.Key),
		NightlyRate: apt.NightlyRate,
	}, nil
}

func (u *bookingSessionCommandsImpl) view(s *booking.Session) *queries.BookingSessionView {
	return queries.BuildSessionView(s, u.calc)
}

func (u *bookingSessionCommandsImpl) publish(ctx context.Context, typ shared.EventType, sub *booking.Submission, reason string) {
	event := shared.BookingEvent{
		Type:            typ,
		SessionID:       sub.SessionID,
		ApartmentID:     sub.Apartment.ID,
		CheckIn:         sub.CheckIn.String(),
		CheckOut:        sub.CheckOut.String(),
		TotalMinorUnits: sub.Quote.TotalMinorUnits(),
		Reason:          reason,
		OccurredAt:      u.clock.Now(),
	}
	if sub.Coupon != nil {
		code := sub.Coupon.Code().String()
		event.CouponCode = &code
	}
	if err := u.events.Publish(ctx, event); err != nil {
		slog.Warn("failed to publish booking event", "type", typ, "session_id", sub.SessionID, "error", err)
	}
}

func toCheckoutRequest(sub *booking.Submission) shared.CheckoutRequest {
	req := shared.CheckoutRequest{
		SessionID:             sub.SessionID,
		ApartmentID:           sub.Apartment.ID,
		ApartmentName:         sub.Apartment.Name,
		NightlyRateMinorUnits: sub.Quote.NightlyRateMinorUnits(),
		TotalMinorUnits:       sub.Quote.TotalMinorUnits(),
		GuestEmail:            sub.GuestEmail,
		GuestName:             sub.GuestName,
		CheckIn:               sub.CheckIn,
		CheckOut:              sub.CheckOut,
	}
	if sub.Coupon != nil {
		code := sub.Coupon.Code().String()
		percent := sub.Coupon.Discount().Decimal()
		req.CouponCode = &code
		req.DiscountPercent = &percent
	}
	return req
}

// classify leaves lifecycle errors as they are and marks everything else as a validation failure.
func classify(err error) error {
	switch {
	case errors.Is(err, booking.ErrSubmissionInProgress), errors.Is(err, booking.ErrSessionClosed):
		return err
	default:
		return errs.Mark(err, ErrBookingValidation)
	}
}

// couponFailure is the message the session records for a refused coupon.
func couponFailure(err error) error {
	switch {
	case errs.Is(err, ErrEmptyCouponCode):
		return ErrEmptyCouponCode
	case errs.Is(err, ErrInvalidOrExpiredCoupon):
		return ErrInvalidOrExpiredCoupon
	default:
		return ErrCouponLookupFailed
	}
}
