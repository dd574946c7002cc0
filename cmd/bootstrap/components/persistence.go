package components

import (
	"context"
	"time"

	"apartment-booking/internal/infra/apartmentkey"
	"apartment-booking/internal/infra/cache"
	"apartment-booking/internal/infra/db"
	"apartment-booking/internal/infra/pgsql"
	"apartment-booking/internal/infra/readstore"
	"apartment-booking/internal/infra/sessionstore"
	"apartment-booking/internal/pkg/clock"
	"apartment-booking/internal/pkg/config"
	"apartment-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const sessionSweepInterval = time.Minute

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	sessionModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Apartment
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ApartmentReadQueries)),
		),
		fx.Annotate(
			readstore.NewApartmentReadStore,
			fx.As(new(shared.ApartmentCatalog)),
		),
		// Reservation
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReservationReadQueries)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(shared.ReservationStore)),
		),
		// Apartment key mapping
		fx.Annotate(
			NewApartmentKeyMapper,
			fx.As(new(shared.ApartmentKeyMapper)),
		),
	),
)

var sessionModule = fx.Module("persistence/session",
	fx.Provide(
		NewSessionBackends,
		NewAvailabilityCache,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *pgsql.Queries {
	return pgsql.New()
}

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewApartmentKeyMapper(cfg config.Config) (*apartmentkey.Mapper, error) {
	return apartmentkey.Load(cfg.Catalog.ApartmentKeysFile)
}

// NewSessionBackends picks Redis when a client is configured, otherwise an in-process store swept on a timer.
func NewSessionBackends(lc fx.Lifecycle, cfg config.Config, client *redis.Client, clk clock.Clock) (shared.SessionStore, shared.SessionLocker) {
	if client != nil {
		return sessionstore.NewRedisStore(client, cfg.Session.TTL), sessionstore.NewRedisLocker(client, cfg.Redis.LockTTL)
	}

	store := sessionstore.NewMemoryStore(cfg.Session.TTL, clk)
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go sweepSessions(ctx, store)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
	return store, sessionstore.NewKeyedLocker()
}

func sweepSessions(ctx context.Context, store *sessionstore.MemoryStore) {
	ticker := time.NewTicker(sessionSweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			store.Sweep()
		}
	}
}

func NewAvailabilityCache(cfg config.Config, client *redis.Client) shared.AvailabilityCache {
	if client == nil {
		return cache.NoopAvailabilityCache{}
	}
	return cache.NewAvailabilityCache(client, cfg.Redis.AvailabilityTTL)
}
