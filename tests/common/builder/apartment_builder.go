//go:build unit || e2e

package builder

import (
	"apartment-booking/internal/domain/apartment"
	"apartment-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ApartmentBuilder struct {
	ID          uuid.UUID
	Key         string
	Name        string
	NightlyRate decimal.Decimal
	Features    []string
}

func NewApartmentBuilder() *ApartmentBuilder {
	return &ApartmentBuilder{
		ID:          uuid.New(),
		Key:         "seaside-loft",
		Name:        "Seaside Loft",
		NightlyRate: decimal.NewFromInt(100),
		Features:    []string{"wifi", "balcony"},
	}
}

func (b *ApartmentBuilder) With(mutate func(*ApartmentBuilder)) *ApartmentBuilder {
	mutate(b)
	return b
}

// Build methods

func (b *ApartmentBuilder) BuildDomain() (*apartment.Apartment, error) {
	return apartment.NewApartment(b.ID, b.Key, b.Name, b.NightlyRate, b.Features)
}

func (b *ApartmentBuilder) BuildView() *queries.ApartmentView {
	return &queries.ApartmentView{
		ID:          b.ID,
		Name:        b.Name,
		NightlyRate: b.NightlyRate.StringFixed(2),
		Features:    append([]string{}, b.Features...),
	}
}
