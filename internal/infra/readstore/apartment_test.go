//go:build unit

package readstore

import (
	"context"
	"testing"

	"apartment-booking/internal/infra"
	"apartment-booking/internal/infra/db"
	"apartment-booking/internal/infra/pgsql"
	"apartment-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockApartmentReadQueries struct {
	mock.Mock
}

func (m *MockApartmentReadQueries) ListApartments(ctx context.Context, db db.DBTX) ([]pgsql.Apartment, error) {
	args := m.Called(ctx, db)
	rows, _ := args.Get(0).([]pgsql.Apartment)
	return rows, args.Error(1)
}

func (m *MockApartmentReadQueries) GetApartmentByID(ctx context.Context, db db.DBTX, id uuid.UUID) (pgsql.Apartment, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(pgsql.Apartment), args.Error(1)
}

func apartmentRow(name, rate string) pgsql.Apartment {
	return pgsql.Apartment{
		ID:          uuid.New(),
		BookingKey:  name,
		Name:        name,
		NightlyRate: pgconv.NumericFromDecimal(decimal.RequireFromString(rate)),
		Features:    []string{"wifi"},
	}
}

func TestApartmentFindAll(t *testing.T) {
	ctx := context.Background()
	good := apartmentRow("seaside", "120.50")
	bad := apartmentRow("broken", "1")
	bad.NightlyRate = pgtype.Numeric{}
	negative := apartmentRow("negative", "-5")
	unnamed := apartmentRow("  ", "80")

	q := new(MockApartmentReadQueries)
	q.On("ListApartments", ctx, nil).Return([]pgsql.Apartment{good, bad, negative, unnamed}, nil)
	store := NewApartmentReadStore(nil, q)

	got, err := store.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, good.ID, got[0].ID)
	assert.Equal(t, "120.5", got[0].NightlyRate.String())
	assert.Equal(t, []string{"wifi"}, got[0].Features)
}

func TestApartmentFindByID(t *testing.T) {
	ctx := context.Background()
	row := apartmentRow("seaside", "100")

	t.Run("found", func(t *testing.T) {
		q := new(MockApartmentReadQueries)
		q.On("GetApartmentByID", ctx, nil, row.ID).Return(row, nil)

		got, err := NewApartmentReadStore(nil, q).FindByID(ctx, row.ID)
		require.NoError(t, err)
		assert.Equal(t, "seaside", got.Key)
		assert.Equal(t, "seaside", got.Name)
	})

	t.Run("not found", func(t *testing.T) {
		q := new(MockApartmentReadQueries)
		q.On("GetApartmentByID", ctx, nil, row.ID).Return(pgsql.Apartment{}, pgx.ErrNoRows)

		_, err := NewApartmentReadStore(nil, q).FindByID(ctx, row.ID)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
