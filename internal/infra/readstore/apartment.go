package readstore

import (
	"context"
	"log/slog"

	"apartment-booking/internal/domain/apartment"
	"apartment-booking/internal/infra"
	"apartment-booking/internal/infra/db"
	"apartment-booking/internal/infra/pgsql"
	"apartment-booking/internal/pkg/pgconv"
	"apartment-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type ApartmentReadStore struct {
	db      db.DBTX
	queries ApartmentReadQueries
}

func NewApartmentReadStore(db db.DBTX, queries ApartmentReadQueries) *ApartmentReadStore {
	return &ApartmentReadStore{
		db:      db,
		queries: queries,
	}
}

// FindAll skips invalid rows rather than failing the whole listing.
func (r *ApartmentReadStore) FindAll(ctx context.Context) ([]*shared.ApartmentSnapshot, error) {
	rows, err := r.queries.ListApartments(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list apartments", err)
	}

	result := make([]*shared.ApartmentSnapshot, 0, len(rows))
	for _, row := range rows {
		snap, err := toApartmentSnapshot(row)
		if err != nil {
			slog.Warn("skipping invalid apartment row", "apartment_id", row.ID, "error", err)
			continue
		}
		result = append(result, snap)
	}
	return result, nil
}

func (r *ApartmentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*shared.ApartmentSnapshot, error) {
	row, err := r.queries.GetApartmentByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("apartment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find apartment by ID", err)
	}

	snap, err := toApartmentSnapshot(row)
	if err != nil {
		return nil, infra.WrapRepoErr("apartment row is invalid", err, infra.KindCorruptData)
	}
	return snap, nil
}

func toApartmentSnapshot(row pgsql.Apartment) (*shared.ApartmentSnapshot, error) {
	rate, err := pgconv.DecimalFromNumeric(row.NightlyRate)
	if err != nil {
		return nil, err
	}
	apt, err := apartment.NewApartment(row.ID, row.BookingKey, row.Name, rate, row.Features)
	if err != nil {
		return nil, err
	}
	return &shared.ApartmentSnapshot{
		ID:          apt.ID(),
		Key:         apt.Key(),
		Name:        apt.Name(),
		NightlyRate: apt.NightlyRate(),
		Features:    apt.Features(),
	}, nil
}
