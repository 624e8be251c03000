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

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "password123"
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, true) ON CONFLICT (email) DO NOTHING",
		userID, email, testPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1 AND is_active = true", email).Scan(&userID)
	}

	return userID
}

func CreateTestFacility(t *testing.T, db DBLike, ownerID uuid.UUID, name string, opensAtMin, closesAtMin int) uuid.UUID {
	t.Helper()

	facilityID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO facilities (id, owner_id, name, opens_at_min, closes_at_min) VALUES ($1, $2, $3, $4, $5)",
		facilityID, ownerID, name, opensAtMin, closesAtMin)
	require.NoError(t, err)

	return facilityID
}

func GetSportID(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	var sportID uuid.UUID
	err := db.QueryRow(context.Background(), "SELECT id FROM sports WHERE name = $1", name).Scan(&sportID)
	require.NoError(t, err)

	return sportID
}

func CreateTestCourtConfig(t *testing.T, db DBLike, facilityID, sportID uuid.UUID, courtCount int, priceCents int64) uuid.UUID {
	t.Helper()

	configID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO court_configs (id, facility_id, sport_id, court_count, price_per_hour_cents)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (facility_id, sport_id) DO UPDATE
		SET court_count = EXCLUDED.court_count, price_per_hour_cents = EXCLUDED.price_per_hour_cents`,
		configID, facilityID, sportID, courtCount, priceCents)
	require.NoError(t, err)

	return configID
}

func CreateTestBooking(t *testing.T, db DBLike, facilityID, sportID, userID uuid.UUID, courtNumber int, start, end time.Time, status string) uuid.UUID {
	t.Helper()

	bookingID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO bookings (id, facility_id, sport_id, court_number, user_id, start_time, end_time, status, amount_cents)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 0)`,
		bookingID, facilityID, sportID, courtNumber, userID, start, end, status)
	require.NoError(t, err)

	return bookingID
}

// BackdateBooking shifts created_at so the pending expirer sees the booking
// as stale.
func BackdateBooking(t *testing.T, db DBLike, bookingID uuid.UUID, age time.Duration) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"UPDATE bookings SET created_at = now() - $2::interval WHERE id = $1",
		bookingID, fmt.Sprintf("%d seconds", int(age.Seconds())))
	require.NoError(t, err)
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO sports (id, name) VALUES
		    (gen_random_uuid(), 'badminton'),
		    (gen_random_uuid(), 'tennis'),
		    (gen_random_uuid(), 'futsal')
		ON CONFLICT (name) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
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
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
