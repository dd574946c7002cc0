package booking

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"apartment-booking/internal/domain/availability"
	"apartment-booking/internal/domain/coupon"
	"apartment-booking/internal/domain/pricing"

	"github.com/google/uuid"
)

var (
	ErrDateBooked              = errors.New("selected date is already booked")
	ErrDateInPast              = errors.New("selected date is in the past")
	ErrCheckInRequired         = errors.New("check-in date must be chosen first")
	ErrCheckOutNotAfterCheckIn = errors.New("check-out must be after check-in")
	ErrRangeConflict           = errors.New("selected range contains a booked date")
	ErrMissingRequiredField    = errors.New("missing required field")
	ErrAvailabilityUnknown     = errors.New("availability has not been loaded")
	ErrAvailabilityLoadFailed  = errors.New("availability could not be loaded")
	ErrCouponNoLongerValid     = errors.New("applied coupon is no longer valid")
	ErrSubmissionInProgress    = errors.New("submission is in progress")
	ErrSessionClosed           = errors.New("booking session has already been handed off")
	ErrNotSubmitting           = errors.New("booking session is not submitting")
	ErrStaleResult             = errors.New("result belongs to a superseded request")
	ErrStayTooLong             = errors.New("stay exceeds the maximum number of nights")
	ErrCouponPending           = errors.New("coupon validation is still pending")
)

const DefaultMaxStayNights = 365

// Session is one booking dialog: a draft for one apartment plus that apartment's booked dates.
type Session struct {
	id            uuid.UUID
	apartment     ApartmentRef
	draft         Draft
	state         State
	loadState     availability.LoadState
	loadTicket    LoadTicket
	intervals     []availability.BookedInterval
	dates         availability.DateSet
	couponPending bool
	couponTicket  int
	maxNights     int
	lastError     string
	redirectURL   string
	createdAt     time.Time
	updatedAt     time.Time
}

// NewSession opens a dialog for apt and issues the first interval load.
func NewSession(id uuid.UUID, apt ApartmentRef, now time.Time) (*Session, LoadTicket) {
	s := &Session{
		id:        id,
		apartment: apt,
		draft:     Draft{ApartmentID: apt.ID},
		state:     StateEmpty,
		loadState: availability.LoadUnknown,
		dates:     availability.BuildDateSet(nil),
		createdAt: now,
		updatedAt: now,
	}
	return s, s.issueLoad()
}

// SetMaxStayNights caps the stay length; n <= 0 restores DefaultMaxStayNights.
func (s *Session) SetMaxStayNights(n int) {
	if n <= 0 {
		n = DefaultMaxStayNights
	}
	s.maxNights = n
}

func (s *Session) MaxStayNights() int {
	if s.maxNights <= 0 {
		return DefaultMaxStayNights
	}
	return s.maxNights
}

func (s *Session) stayTooLong(in, out availability.Date) bool {
	return in.DaysUntil(out) > s.MaxStayNights()
}

func (s *Session) issueLoad() LoadTicket {
	s.loadTicket = LoadTicket{ApartmentID: s.apartment.ID, Generation: s.loadTicket.Generation + 1}
	s.loadState = availability.LoadPending
	return s.loadTicket
}

func (s *Session) guardMutable() error {
	switch s.state {
	case StateSubmitting:
		return ErrSubmissionInProgress
	case StateRedirected:
		return ErrSessionClosed
	}
	return nil
}

// ChangeApartment moves the dialog to another apartment; dates reset, guest fields and coupon stay.
func (s *Session) ChangeApartment(apt ApartmentRef, now time.Time) (LoadTicket, error) {
	if err := s.guardMutable(); err != nil {
		return LoadTicket{}, err
	}
	s.apartment = apt
	s.draft.ApartmentID = apt.ID
	s.draft.CheckIn = availability.Date{}
	s.draft.CheckOut = availability.Date{}
	s.intervals = nil
	s.dates = availability.BuildDateSet(nil)
	s.lastError = ""
	ticket := s.issueLoad()
	s.touch(now)
	return ticket, nil
}

// BeginLoad re-issues the interval load for the current apartment.
func (s *Session) BeginLoad(now time.Time) (LoadTicket, error) {
	if err := s.guardMutable(); err != nil {
		return LoadTicket{}, err
	}
	ticket := s.issueLoad()
	s.touch(now)
	return ticket, nil
}

// CompleteLoad installs a fresh interval list and drops any picked dates it now blocks.
func (s *Session) CompleteLoad(ticket LoadTicket, intervals []availability.BookedInterval, now time.Time) error {
	return s.completeLoad(ticket, intervals, true, now)
}

// CompleteRecheck installs a fresh interval list but leaves the draft alone, so the
// submit that follows reports a range conflict with the guest's dates still in place.
func (s *Session) CompleteRecheck(ticket LoadTicket, intervals []availability.BookedInterval, now time.Time) error {
	return s.completeLoad(ticket, intervals, false, now)
}

func (s *Session) completeLoad(ticket LoadTicket, intervals []availability.BookedInterval, reconcile bool, now time.Time) error {
	if ticket != s.loadTicket || s.state.IsTerminal() {
		return ErrStaleResult
	}
	s.intervals = append([]availability.BookedInterval(nil), intervals...)
	s.dates = availability.BuildDateSet(s.intervals)
	s.loadState = availability.LoadDone
	if s.state != StateSubmitting {
		s.lastError = ""
		if reconcile {
			s.reconcileDates()
		}
		s.recomputeState()
	}
	s.touch(now)
	return nil
}

func (s *Session) FailLoad(ticket LoadTicket, now time.Time) error {
	if ticket != s.loadTicket || s.state.IsTerminal() {
		return ErrStaleResult
	}
	s.loadState = availability.LoadFailed
	s.lastError = ErrAvailabilityLoadFailed.Error()
	if s.state != StateSubmitting {
		s.recomputeState()
	}
	s.touch(now)
	return nil
}

func (s *Session) reconcileDates() {
	d := &s.draft
	if !d.CheckIn.IsZero() && s.dates.IsBooked(d.CheckIn) {
		d.CheckIn = availability.Date{}
		d.CheckOut = availability.Date{}
		s.lastError = ErrRangeConflict.Error()
		return
	}
	if d.HasDates() && s.dates.RangeHasConflict(d.CheckIn, d.CheckOut) {
		d.CheckOut = availability.Date{}
		s.lastError = ErrRangeConflict.Error()
	}
}

func (s *Session) isBooked(d availability.Date) bool {
	return s.loadState.IsKnown() && s.dates.IsBooked(d)
}

// SelectCheckIn rejects booked or past days in place.
func (s *Session) SelectCheckIn(d availability.Date, now time.Time) error {
	if err := s.guardMutable(); err != nil {
		return err
	}
	if d.IsZero() {
		return fmt.Errorf("%w: checkIn", ErrMissingRequiredField)
	}
	if d.Before(availability.DateOf(now)) {
		return ErrDateInPast
	}
	if s.isBooked(d) {
		return ErrDateBooked
	}

	s.draft.CheckIn = d
	if out := s.draft.CheckOut; !out.IsZero() {
		if !d.Before(out) || s.stayTooLong(d, out) || (s.loadState.IsKnown() && s.dates.RangeHasConflict(d, out)) {
			s.draft.CheckOut = availability.Date{}
		}
	}
	s.lastError = ""
	s.recomputeState()
	s.touch(now)
	return nil
}

// SelectCheckOut validates the whole range, not just the endpoint; the draft is untouched on rejection.
func (s *Session) SelectCheckOut(d availability.Date, now time.Time) error {
	if err := s.guardMutable(); err != nil {
		return err
	}
	if d.IsZero() {
		return fmt.Errorf("%w: checkOut", ErrMissingRequiredField)
	}
	if s.draft.CheckIn.IsZero() {
		return ErrCheckInRequired
	}
	if !d.After(s.draft.CheckIn) {
		return ErrCheckOutNotAfterCheckIn
	}
	if s.stayTooLong(s.draft.CheckIn, d) {
		return ErrStayTooLong
	}
	if s.isBooked(d) {
		return ErrDateBooked
	}
	if s.loadState.IsKnown() && s.dates.RangeHasConflict(s.draft.CheckIn, d) {
		return ErrRangeConflict
	}

	s.draft.CheckOut = d
	s.lastError = ""
	s.recomputeState()
	s.touch(now)
	return nil
}

func (s *Session) SetGuest(name, email string, now time.Time) error {
	if err := s.guardMutable(); err != nil {
		return err
	}
	name, email, err := normalizeGuest(name, email)
	if err != nil {
		return err
	}
	s.draft.GuestName = name
	s.draft.GuestEmail = email
	s.lastError = ""
	s.recomputeState()
	s.touch(now)
	return nil
}

// BeginCouponValidation returns a ticket the lookup result must present to be applied.
func (s *Session) BeginCouponValidation(now time.Time) (int, error) {
	if err := s.guardMutable(); err != nil {
		return 0, err
	}
	s.couponTicket++
	s.couponPending = true
	s.recomputeState()
	s.touch(now)
	return s.couponTicket, nil
}

// CompleteCouponValidation replaces any applied coupon; applying the same code again changes nothing.
func (s *Session) CompleteCouponValidation(ticket int, c *coupon.Coupon, now time.Time) error {
	if s.couponResultStale(ticket) {
		return ErrStaleResult
	}
	s.couponPending = false
	s.draft.Coupon = c
	s.lastError = ""
	s.recomputeState()
	s.touch(now)
	return nil
}

// FailCouponValidation keeps the previously applied coupon and records why the new one was refused.
func (s *Session) FailCouponValidation(ticket int, cause error, now time.Time) error {
	if s.couponResultStale(ticket) {
		return ErrStaleResult
	}
	s.couponPending = false
	if cause != nil {
		s.lastError = cause.Error()
	}
	s.recomputeState()
	s.touch(now)
	return nil
}

// couponResultStale also refuses results arriving once checkout has the priced draft.
func (s *Session) couponResultStale(ticket int) bool {
	return ticket != s.couponTicket || !s.couponPending ||
		s.state == StateSubmitting || s.state.IsTerminal()
}

// RemoveCoupon also abandons a pending lookup; its result will be stale.
func (s *Session) RemoveCoupon(now time.Time) error {
	if err := s.guardMutable(); err != nil {
		return err
	}
	if s.couponPending {
		s.couponPending = false
		s.couponTicket++
	}
	s.draft.Coupon = nil
	s.lastError = ""
	s.recomputeState()
	s.touch(now)
	return nil
}

// Submission is the finalized booking handed to checkout.
type Submission struct {
	SessionID  uuid.UUID
	Apartment  ApartmentRef
	CheckIn    availability.Date
	CheckOut   availability.Date
	GuestName  string
	GuestEmail string
	Coupon     *coupon.Coupon
	Quote      pricing.Quote
}

// BeginSubmit re-validates the draft against the current DateSet and enters Submitting.
// The recheck narrows but cannot close the window in which another session books the same days.
func (s *Session) BeginSubmit(calc pricing.Calculator, now time.Time) (*Submission, error) {
	if err := s.guardMutable(); err != nil {
		return nil, err
	}
	if s.couponPending {
		return nil, ErrCouponPending
	}
	if err := s.validateForSubmit(now); err != nil {
		s.state = StateFailed
		s.lastError = err.Error()
		s.touch(now)
		return nil, err
	}

	s.state = StateSubmitting
	s.lastError = ""
	s.touch(now)
	return &Submission{
		SessionID:  s.id,
		Apartment:  s.apartment,
		CheckIn:    s.draft.CheckIn,
		CheckOut:   s.draft.CheckOut,
		GuestName:  s.draft.GuestName,
		GuestEmail: s.draft.GuestEmail,
		Coupon:     s.draft.Coupon,
		Quote:      s.Quote(calc),
	}, nil
}

func (s *Session) validateForSubmit(now time.Time) error {
	if missing := s.draft.MissingFields(); len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingRequiredField, strings.Join(missing, ", "))
	}
	if !s.draft.CheckOut.After(s.draft.CheckIn) {
		return ErrCheckOutNotAfterCheckIn
	}
	if s.stayTooLong(s.draft.CheckIn, s.draft.CheckOut) {
		return ErrStayTooLong
	}
	if s.draft.CheckIn.Before(availability.DateOf(now)) {
		return ErrDateInPast
	}
	switch s.loadState {
	case availability.LoadDone:
	case availability.LoadFailed:
		return ErrAvailabilityLoadFailed
	default:
		return ErrAvailabilityUnknown
	}
	if s.dates.RangeHasConflict(s.draft.CheckIn, s.draft.CheckOut) {
		return ErrRangeConflict
	}
	if s.draft.Coupon != nil && !s.draft.Coupon.IsUsableAt(now) {
		return ErrCouponNoLongerValid
	}
	return nil
}

func (s *Session) CompleteSubmit(redirectURL string, now time.Time) error {
	if s.state != StateSubmitting {
		return ErrNotSubmitting
	}
	s.state = StateRedirected
	s.redirectURL = redirectURL
	s.lastError = ""
	s.touch(now)
	return nil
}

// FailSubmit returns to a correctable state with the draft intact.
func (s *Session) FailSubmit(cause error, now time.Time) error {
	if s.state != StateSubmitting {
		return ErrNotSubmitting
	}
	s.state = StateFailed
	if cause != nil {
		s.lastError = cause.Error()
	}
	s.touch(now)
	return nil
}

func (s *Session) recomputeState() {
	d := s.draft
	switch {
	case s.couponPending:
		s.state = StateCouponPending
	case d.CheckIn.IsZero():
		s.state = StateEmpty
	case d.CheckOut.IsZero():
		s.state = StateDatesPartial
	case d.HasGuest() && s.loadState.IsKnown():
		s.state = StateReady
	default:
		s.state = StateDatesSelected
	}
}

func (s *Session) touch(now time.Time) {
	s.updatedAt = now
}

// Quote prices the current draft; incomplete date selections price at zero.
func (s *Session) Quote(calc pricing.Calculator) pricing.Quote {
	return calc.Quote(s.draft.Nights(), s.apartment.NightlyRate, s.draft.Coupon)
}

// DayStatus answers for the calendar, reporting unknown until intervals are loaded.
func (s *Session) DayStatus(d availability.Date) availability.DayStatus {
	return availability.StatusOf(s.dates, s.loadState, d)
}

func (s *Session) ID() uuid.UUID                     { return s.id }
func (s *Session) Apartment() ApartmentRef           { return s.apartment }
func (s *Session) Draft() Draft                      { return s.draft }
func (s *Session) State() State                      { return s.state }
func (s *Session) LoadState() availability.LoadState { return s.loadState }
func (s *Session) LoadTicket() LoadTicket            { return s.loadTicket }
func (s *Session) BookedDates() []availability.Date  { return s.dates.Dates() }
func (s *Session) LastError() string                 { return s.lastError }
func (s *Session) RedirectURL() string               { return s.redirectURL }
func (s *Session) CreatedAt() time.Time              { return s.createdAt }
func (s *Session) UpdatedAt() time.Time              { return s.updatedAt }
