package booking

import (
	"errors"
	"time"

	"apartment-booking/internal/domain/availability"
	"apartment-booking/internal/domain/coupon"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrCorruptSnapshot = errors.New("booking session snapshot is corrupt")

// Snapshot is the persisted form of a Session, used by the session stores.
type Snapshot struct {
	ID            uuid.UUID              `json:"id"`
	Apartment     ApartmentSnapshot      `json:"apartment"`
	CheckIn       availability.Date      `json:"checkIn"`
	CheckOut      availability.Date      `json:"checkOut"`
	GuestName     string                 `json:"guestName"`
	GuestEmail    string                 `json:"guestEmail"`
	Coupon        *CouponSnapshot        `json:"coupon,omitempty"`
	State         State                  `json:"state"`
	LoadState     availability.LoadState `json:"loadState"`
	LoadTicket    LoadTicket             `json:"loadTicket"`
	Intervals     []IntervalSnapshot     `json:"intervals"`
	CouponPending bool                   `json:"couponPending"`
	CouponTicket  int                    `json:"couponTicket"`
	MaxStayNights int                    `json:"maxStayNights,omitempty"`
	LastError     string                 `json:"lastError,omitempty"`
	RedirectURL   string                 `json:"redirectUrl,omitempty"`
	CreatedAt     time.Time              `json:"createdAt"`
	UpdatedAt     time.Time              `json:"updatedAt"`
}

type ApartmentSnapshot struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	BookingKey  string          `json:"bookingKey"`
	NightlyRate decimal.Decimal `json:"nightlyRate"`
}

type CouponSnapshot struct {
	Code            string          `json:"code"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
	IsActive        bool            `json:"isActive"`
	ExpiresAt       time.Time       `json:"expiresAt"`
}

type IntervalSnapshot struct {
	CheckIn  availability.Date `json:"checkIn"`
	CheckOut availability.Date `json:"checkOut"`
}

func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		ID: s.id,
		Apartment: ApartmentSnapshot{
			ID:          s.apartment.ID,
			Name:        s.apartment.Name,
			BookingKey:  s.apartment.BookingKey,
			NightlyRate: s.apartment.NightlyRate,
		},
		CheckIn:       s.draft.CheckIn,
		CheckOut:      s.draft.CheckOut,
		GuestName:     s.draft.GuestName,
		GuestEmail:    s.draft.GuestEmail,
		State:         s.state,
		LoadState:     s.loadState,
		LoadTicket:    s.loadTicket,
		Intervals:     make([]IntervalSnapshot, len(s.intervals)),
		CouponPending: s.couponPending,
		CouponTicket:  s.couponTicket,
		MaxStayNights: s.maxNights,
		LastError:     s.lastError,
		RedirectURL:   s.redirectURL,
		CreatedAt:     s.createdAt,
		UpdatedAt:     s.updatedAt,
	}
	for i, iv := range s.intervals {
		snap.Intervals[i] = IntervalSnapshot{CheckIn: iv.CheckIn, CheckOut: iv.CheckOut}
	}
	if c := s.draft.Coupon; c != nil {
		snap.Coupon = &CouponSnapshot{
			Code:            c.Code().String(),
			DiscountPercent: c.Discount().Decimal(),
			IsActive:        c.IsActive(),
			ExpiresAt:       c.ExpiresAt(),
		}
	}
	return snap
}

// ReconstructSession rebuilds a Session from a stored snapshot, re-validating what the constructors would.
func ReconstructSession(snap Snapshot) (*Session, error) {
	if snap.ID == uuid.Nil || !snap.State.IsValid() || !snap.LoadState.IsValid() {
		return nil, ErrCorruptSnapshot
	}

	intervals := make([]availability.BookedInterval, 0, len(snap.Intervals))
	for _, raw := range snap.Intervals {
		iv, err := availability.NewBookedInterval(raw.CheckIn, raw.CheckOut)
		if err != nil {
			return nil, errors.Join(ErrCorruptSnapshot, err)
		}
		intervals = append(intervals, iv)
	}

	var applied *coupon.Coupon
	if snap.Coupon != nil {
		c, err := coupon.NewCoupon(snap.Coupon.Code, snap.Coupon.DiscountPercent, snap.Coupon.IsActive, snap.Coupon.ExpiresAt)
		if err != nil {
			return nil, errors.Join(ErrCorruptSnapshot, err)
		}
		applied = c
	}

	apt := ApartmentRef{
		ID:          snap.Apartment.ID,
		Name:        snap.Apartment.Name,
		BookingKey:  snap.Apartment.BookingKey,
		NightlyRate: snap.Apartment.NightlyRate,
	}
	return &Session{
		id:        snap.ID,
		apartment: apt,
		draft: Draft{
			ApartmentID: apt.ID,
			CheckIn:     snap.CheckIn,
			CheckOut:    snap.CheckOut,
			GuestName:   snap.GuestName,
			GuestEmail:  snap.GuestEmail,
			Coupon:      applied,
		},
		state:         snap.State,
		loadState:     snap.LoadState,
		loadTicket:    snap.LoadTicket,
		intervals:     intervals,
		dates:         availability.BuildDateSet(intervals),
		couponPending: snap.CouponPending,
		couponTicket:  snap.CouponTicket,
		maxNights:     snap.MaxStayNights,
		lastError:     snap.LastError,
		redirectURL:   snap.RedirectURL,
		createdAt:     snap.CreatedAt,
		updatedAt:     snap.UpdatedAt,
	}, nil
}
