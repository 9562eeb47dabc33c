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

	"lumina-hotel-api/internal/pkg/password"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

var (
	hashOnce   sync.Once
	cachedHash string
)

// TestPassword is the plaintext behind every fixture account.
const TestPassword = "password123"

func testPasswordHash(t *testing.T) string {
	t.Helper()
	hashOnce.Do(func() {
		h, err := password.HashPassword(TestPassword)
		require.NoError(t, err)
		cachedHash = h
	})
	return cachedHash
}

func CreateTestAdmin(t *testing.T, db DBLike, email string) int64 {
	t.Helper()

	ctx := context.Background()
	var userID int64
	err := db.QueryRow(ctx,
		`INSERT INTO users (email, password_hash, role) VALUES ($1, $2, 'ADMIN')
		 ON CONFLICT (email) DO UPDATE SET role = 'ADMIN'
		 RETURNING id`,
		email, testPasswordHash(t)).Scan(&userID)
	require.NoError(t, err)

	return userID
}

func CreateTestRoom(t *testing.T, db DBLike, slug, name string, priceCents int64) int64 {
	t.Helper()

	ctx := context.Background()
	var roomID int64
	err := db.QueryRow(ctx,
		`INSERT INTO rooms (slug, name, description, price, size_sqm, occupancy, images, highlights)
		 VALUES ($1, $2, 'A comfortable room for integration tests.', $3::numeric / 100, 40, 2,
		         ARRAY['https://cdn.example.com/rooms/test.jpg'], ARRAY['Test highlight'])
		 RETURNING id`,
		slug, name, priceCents).Scan(&roomID)
	require.NoError(t, err)

	return roomID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	// The schema carries no mandatory reference rows; fixtures create what
	// each test needs.
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
