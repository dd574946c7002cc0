//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"apartment-booking/internal/domain/availability"
	"apartment-booking/internal/infra"
	"apartment-booking/internal/pkg/errs"
	"apartment-booking/internal/usecase/queries"
	"apartment-booking/internal/usecase/shared"
	sharedmock "apartment-booking/tests/mock/shared"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type apartmentMocks struct {
	catalog *sharedmock.MockApartmentCatalog
	keys    *sharedmock.MockApartmentKeyMapper
	store   *sharedmock.MockReservationStore
	cache   *sharedmock.MockAvailabilityCache
}

func newApartmentQueries(t *testing.T) (queries.ApartmentQueries, apartmentMocks) {
	ctrl := gomock.NewController(t)
	m := apartmentMocks{
		catalog: sharedmock.NewMockApartmentCatalog(ctrl),
		keys:    sharedmock.NewMockApartmentKeyMapper(ctrl),
		store:   sharedmock.NewMockReservationStore(ctrl),
		cache:   sharedmock.NewMockAvailabilityCache(ctrl),
	}
	return queries.NewApartmentQueries(m.catalog, m.keys, m.store, m.cache), m
}

func TestApartmentQueries_List(t *testing.T) {
	t.Run("renders rates with two decimals", func(t *testing.T) {
		q, m := newApartmentQueries(t)
		id := uuid.New()
		m.catalog.EXPECT().FindAll(gomock.Any()).Return([]*shared.ApartmentSnapshot{
			{ID: id, Key: "sea-view", Name: "Sea View", NightlyRate: decimal.NewFromInt(120), Features: []string{"balcony"}},
		}, nil)

		views, err := q.List(context.Background())

		require.NoError(t, err)
		want := []*queries.ApartmentView{
			{ID: id, Name: "Sea View", NightlyRate: "120.00", Features: []string{"balcony"}},
		}
		if diff := cmp.Diff(want, views); diff != "" {
			t.Errorf("List() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("catalog failure", func(t *testing.T) {
		q, m := newApartmentQueries(t)
		m.catalog.EXPECT().FindAll(gomock.Any()).
			Return(nil, infra.WrapRepoErr("failed to list apartments", errors.New("timeout")))

		_, err := q.List(context.Background())

		assert.True(t, errs.Is(err, queries.ErrCatalogUnavailable))
	})
}

func TestApartmentQueries_Availability(t *testing.T) {
	apt := &shared.ApartmentSnapshot{ID: uuid.New(), Key: "sea-view", Name: "Sea View", NightlyRate: decimal.NewFromInt(120)}
	raws := []availability.RawInterval{
		{CheckIn: "2030-06-10", CheckOut: "2030-06-11"},
		{CheckIn: "2030-06-20", CheckOut: "2030-06-18"},
	}

	t.Run("cache miss reads the store and fills the cache", func(t *testing.T) {
		q, m := newApartmentQueries(t)
		m.catalog.EXPECT().FindByID(gomock.Any(), apt.ID).Return(apt, nil)
		m.cache.EXPECT().Get(gomock.Any(), apt.ID).Return(nil, false, nil)
		m.keys.EXPECT().BookingKey(apt.ID, "sea-view").Return("legacy-7")
		m.store.EXPECT().ListBookings(gomock.Any(), "legacy-7").Return(raws, nil)
		m.cache.EXPECT().Set(gomock.Any(), apt.ID, raws).Return(nil)

		view, err := q.Availability(context.Background(), apt.ID)

		require.NoError(t, err)
		assert.Equal(t, []queries.IntervalView{{CheckIn: "2030-06-10", CheckOut: "2030-06-11"}}, view.Intervals)
		assert.Equal(t, []string{"2030-06-10", "2030-06-11"}, view.BookedDates)
		assert.Equal(t, 1, view.Skipped)
	})

	t.Run("cache hit skips the store", func(t *testing.T) {
		q, m := newApartmentQueries(t)
		m.catalog.EXPECT().FindByID(gomock.Any(), apt.ID).Return(apt, nil)
		m.cache.EXPECT().Get(gomock.Any(), apt.ID).Return(raws[:1], true, nil)

		view, err := q.Availability(context.Background(), apt.ID)

		require.NoError(t, err)
		assert.Len(t, view.BookedDates, 2)
	})

	t.Run("cache errors fall back to the store", func(t *testing.T) {
		q, m := newApartmentQueries(t)
		m.catalog.EXPECT().FindByID(gomock.Any(), apt.ID).Return(apt, nil)
		m.cache.EXPECT().Get(gomock.Any(), apt.ID).Return(nil, false, errors.New("redis down"))
		m.keys.EXPECT().BookingKey(apt.ID, "sea-view").Return("sea-view")
		m.store.EXPECT().ListBookings(gomock.Any(), "sea-view").Return(nil, nil)
		m.cache.EXPECT().Set(gomock.Any(), apt.ID, gomock.Any()).Return(errors.New("redis down"))

		view, err := q.Availability(context.Background(), apt.ID)

		require.NoError(t, err)
		assert.Empty(t, view.BookedDates)
		assert.Empty(t, view.Intervals)
	})

	t.Run("unknown apartment", func(t *testing.T) {
		q, m := newApartmentQueries(t)
		m.catalog.EXPECT().FindByID(gomock.Any(), apt.ID).
			Return(nil, infra.WrapRepoErr("apartment not found", nil, infra.KindNotFound))

		_, err := q.Availability(context.Background(), apt.ID)

		assert.True(t, errs.Is(err, queries.ErrApartmentNotFound))
	})

	t.Run("store failure", func(t *testing.T) {
		q, m := newApartmentQueries(t)
		m.catalog.EXPECT().FindByID(gomock.Any(), apt.ID).Return(apt, nil)
		m.cache.EXPECT().Get(gomock.Any(), apt.ID).Return(nil, false, nil)
		m.keys.EXPECT().BookingKey(apt.ID, "sea-view").Return("sea-view")
		m.store.EXPECT().ListBookings(gomock.Any(), "sea-view").
			Return(nil, infra.WrapRepoErr("failed to list bookings", errors.New("timeout")))

		_, err := q.Availability(context.Background(), apt.ID)

		assert.True(t, errs.Is(err, queries.ErrBookingsLoadFailed))
	})
}
