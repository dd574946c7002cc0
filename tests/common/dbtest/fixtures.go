//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"apartment-booking/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type ApartmentFixture struct {
	ID          uuid.UUID
	BookingKey  string
	Name        string
	NightlyRate decimal.Decimal
	Features    []string
}

// BookingFixture dates are YYYY-MM-DD; empty strings are stored as NULL.
type BookingFixture struct {
	ApartmentKey string
	CheckIn      string
	CheckOut     string
}

type CouponFixture struct {
	Code            string
	DiscountPercent decimal.Decimal
	IsActive        bool
	ExpiresAt       time.Time
}

type Fixtures struct {
	Apartments []ApartmentFixture
	Bookings   []BookingFixture
	Coupons    []CouponFixture
}

// Seed inserts all fixtures in one transaction.
func Seed(t *testing.T, pool *pgxpool.Pool, f Fixtures) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := WithinTx(ctx, pool, func(ctx context.Context, tx db.DBTX) error {
		for _, a := range f.Apartments {
			features := a.Features
			if features == nil {
				features = []string{}
			}
			if _, err := tx.Exec(ctx,
				"INSERT INTO apartments (id, booking_key, name, nightly_rate, features) VALUES ($1, $2, $3, $4, $5)",
				a.ID, a.BookingKey, a.Name, a.NightlyRate.String(), features); err != nil {
				return fmt.Errorf("insert apartment %s: %w", a.Name, err)
			}
		}
		for _, b := range f.Bookings {
			if _, err := tx.Exec(ctx,
				"INSERT INTO bookings (id, apartment_key, check_in, check_out) VALUES ($1, $2, NULLIF($3, '')::date, NULLIF($4, '')::date)",
				uuid.New(), b.ApartmentKey, b.CheckIn, b.CheckOut); err != nil {
				return fmt.Errorf("insert booking for %s: %w", b.ApartmentKey, err)
			}
		}
		for _, c := range f.Coupons {
			if _, err := tx.Exec(ctx,
				"INSERT INTO coupons (code, discount_percent, is_active, expires_at) VALUES ($1, $2, $3, $4)",
				c.Code, c.DiscountPercent.String(), c.IsActive, c.ExpiresAt); err != nil {
				return fmt.Errorf("insert coupon %s: %w", c.Code, err)
			}
		}
		return nil
	})
	require.NoError(t, err, "failed to seed fixtures")
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates every public table.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
