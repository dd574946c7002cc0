package queries

import (
	"context"
	"log/slog"

	"apartment-booking/internal/domain/availability"
	"apartment-booking/internal/domain/pricing"
	"apartment-booking/internal/infra"
	"apartment-booking/internal/pkg/errs"
	"apartment-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrApartmentNotFound  = errs.New("apartment not found")
	ErrCatalogUnavailable = errs.New("apartment catalog unavailable")
	ErrBookingsLoadFailed = errs.New("failed to load bookings")
)

type ApartmentQueries interface {
	List(ctx context.Context) ([]*ApartmentView, error)
	// Availability serves the public calendar; it may be up to the cache TTL stale.
	Availability(ctx context.Context, id uuid.UUID) (*AvailabilityView, error)
}

type apartmentQueriesImpl struct {
	catalog shared.ApartmentCatalog
	keys    shared.ApartmentKeyMapper
	store   shared.ReservationStore
	cache   shared.AvailabilityCache
}

func NewApartmentQueries(
	catalog shared.ApartmentCatalog,
	keys shared.ApartmentKeyMapper,
	store shared.ReservationStore,
	cache shared.AvailabilityCache,
) ApartmentQueries {
	return &apartmentQueriesImpl{
		catalog: catalog,
		keys:    keys,
		store:   store,
		cache:   cache,
	}
}

func (q *apartmentQueriesImpl) List(ctx context.Context) ([]*ApartmentView, error) {
	apartments, err := q.catalog.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrCatalogUnavailable)
	}

	views := make([]*ApartmentView, len(apartments))
	for i, a := range apartments {
		views[i] = &ApartmentView{
			ID:          a.ID,
			Name:        a.Name,
			NightlyRate: a.NightlyRate.StringFixed(pricing.CurrencyExponent),
			Features:    append([]string{}, a.Features...),
		}
	}
	return views, nil
}

func (q *apartmentQueriesImpl) Availability(ctx context.Context, id uuid.UUID) (*AvailabilityView, error) {
	apt, err := q.catalog.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrApartmentNotFound
		}
		return nil, errs.Mark(err, ErrCatalogUnavailable)
	}

	raws, err := q.bookings(ctx, apt)
	if err != nil {
		return nil, err
	}

	intervals, skipped := availability.ParseIntervals(raws)
	if skipped > 0 {
		slog.Warn("skipped malformed bookings", "apartment_id", id, "skipped", skipped)
	}
	set := availability.BuildDateSet(intervals)

	view := &AvailabilityView{
		ApartmentID: id,
		Intervals:   make([]IntervalView, len(intervals)),
		BookedDates: []string{},
		Skipped:     skipped,
	}
	for i, iv := range intervals {
		view.Intervals[i] = IntervalView{CheckIn: iv.CheckIn.String(), CheckOut: iv.CheckOut.String()}
	}
	for _, d := range set.Dates() {
		view.BookedDates = append(view.BookedDates, d.String())
	}
	return view, nil
}

// bookings reads through the cache; cache failures fall back to the store.
func (q *apartmentQueriesImpl) bookings(ctx context.Context, apt *shared.ApartmentSnapshot) ([]availability.RawInterval, error) {
	if raws, ok, err := q.cache.Get(ctx, apt.ID); err != nil {
		slog.Warn("availability cache read failed", "apartment_id", apt.ID, "error", err)
	} else if ok {
		return raws, nil
	}

	raws, err := q.store.ListBookings(ctx, q.keys.BookingKey(apt.ID, apt.Key))
	if err != nil {
		return nil, errs.Mark(err, ErrBookingsLoadFailed)
	}

	if err := q.cache.Set(ctx, apt.ID, raws); err != nil {
		slog.Warn("availability cache write failed", "apartment_id", apt.ID, "error", err)
	}
	return raws, nil
}
