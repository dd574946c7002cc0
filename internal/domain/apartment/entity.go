package apartment

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyApartmentName   = errors.New("apartment name cannot be empty")
	ErrApartmentNameTooLong = errors.New("apartment name is too long (max 255 characters)")
	ErrNegativeNightlyRate  = errors.New("nightly rate cannot be negative")
	ErrEmptyBookingKey      = errors.New("apartment booking key cannot be empty")
)

const (
	MaxApartmentNameLength = 255
)

// Apartment is read-only for the duration of a booking session.
type Apartment struct {
	id          uuid.UUID
	key         string
	name        string
	nightlyRate decimal.Decimal
	features    []string
}

func NewApartment(id uuid.UUID, key, name string, nightlyRate decimal.Decimal, features []string) (*Apartment, error) {
	if err := validateApartmentName(name); err != nil {
		return nil, err
	}

	if nightlyRate.IsNegative() {
		return nil, ErrNegativeNightlyRate
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return nil, ErrEmptyBookingKey
	}

	tags := make([]string, 0, len(features))
	for _, f := range features {
		if f = strings.TrimSpace(f); f != "" {
			tags = append(tags, f)
		}
	}

	return &Apartment{
		id:          id,
		key:         key,
		name:        strings.TrimSpace(name),
		nightlyRate: nightlyRate,
		features:    tags,
	}, nil
}

func validateApartmentName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyApartmentName
	}
	if len(name) > MaxApartmentNameLength {
		return ErrApartmentNameTooLong
	}
	return nil
}

func (a *Apartment) ID() uuid.UUID                { return a.id }
func (a *Apartment) Key() string                  { return a.key }
func (a *Apartment) Name() string                 { return a.name }
func (a *Apartment) NightlyRate() decimal.Decimal { return a.nightlyRate }
func (a *Apartment) Features() []string           { return append([]string{}, a.features...) }
