package shared

import (
	"context"
	"time"

	"apartment-booking/internal/domain/availability"
	"apartment-booking/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ApartmentSnapshot struct {
	ID          uuid.UUID
	Key         string
	Name        string
	NightlyRate decimal.Decimal
	Features    []string
}

type CouponSnapshot struct {
	Code            string
	DiscountPercent decimal.Decimal
	IsActive        bool
	ExpiresAt       time.Time
}

// ReservationStore is the read side of persisted bookings and coupons.
type ReservationStore interface {
	ListBookings(ctx context.Context, apartmentKey string) ([]availability.RawInterval, error)
	// FindActiveCoupon returns a KindNotFound repository error when no active, unexpired coupon matches.
	FindActiveCoupon(ctx context.Context, code string, now time.Time) (*CouponSnapshot, error)
}

type ApartmentCatalog interface {
	FindAll(ctx context.Context) ([]*ApartmentSnapshot, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ApartmentSnapshot, error)
}

// ApartmentKeyMapper resolves the key bookings are stored under for an apartment.
type ApartmentKeyMapper interface {
	BookingKey(apartmentID uuid.UUID, catalogKey string) string
}

type AvailabilityCache interface {
	Get(ctx context.Context, apartmentID uuid.UUID) ([]availability.RawInterval, bool, error)
	Set(ctx context.Context, apartmentID uuid.UUID, intervals []availability.RawInterval) error
}

type CheckoutRequest struct {
	SessionID             uuid.UUID
	ApartmentID           uuid.UUID
	ApartmentName         string
	NightlyRateMinorUnits int64
	TotalMinorUnits       int64
	GuestEmail            string
	GuestName             string
	CheckIn               availability.Date
	CheckOut              availability.Date
	CouponCode            *string
	DiscountPercent       *decimal.Decimal
}

type CheckoutHandoff interface {
	CreateSession(ctx context.Context, req CheckoutRequest) (string, error)
}

// SessionStore returns a KindNotFound repository error for unknown or expired sessions.
type SessionStore interface {
	Get(ctx context.Context, id uuid.UUID) (*booking.Session, error)
	Save(ctx context.Context, s *booking.Session) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// SessionLocker serializes operations on one booking session.
type SessionLocker interface {
	Lock(ctx context.Context, id uuid.UUID) (unlock func(), err error)
}

type EventType string

const (
	EventCheckoutStarted EventType = "checkout_started"
	EventCheckoutFailed  EventType = "checkout_failed"
)

type BookingEvent struct {
	Type            EventType `json:"type"`
	SessionID       uuid.UUID `json:"sessionId"`
	ApartmentID     uuid.UUID `json:"apartmentId"`
	CheckIn         string    `json:"checkIn"`
	CheckOut        string    `json:"checkOut"`
	TotalMinorUnits int64     `json:"totalMinorUnits"`
	CouponCode      *string   `json:"couponCode,omitempty"`
	Reason          string    `json:"reason,omitempty"`
	OccurredAt      time.Time `json:"occurredAt"`
}

type EventPublisher interface {
	Publish(ctx context.Context, event BookingEvent) error
}
