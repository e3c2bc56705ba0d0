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

// AuditRow is what the e2e tests read back from admin_actions.
type AuditRow struct {
	Action          string
	ActorID         string
	AccommodationID *string
	TargetID        *string
	Outcome         string
	Error           *string
}

func CreateTestAuditEntry(t *testing.T, db DBLike, action, actorID, outcome string, at time.Time) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO admin_actions (id, action, actor_id, outcome, created_at) VALUES ($1, $2, $3, $4, $5)",
		id, action, actorID, outcome, at)
	require.NoError(t, err)
	return id
}

// AuditRowsByAction returns the rows for action, newest first.
func AuditRowsByAction(t *testing.T, db DBLike, action string) []AuditRow {
	t.Helper()

	rows, err := db.Query(context.Background(), `
		SELECT action, actor_id, accommodation_id, target_id, outcome, error
		FROM admin_actions
		WHERE action = $1
		ORDER BY created_at DESC`, action)
	require.NoError(t, err)
	defer rows.Close()

	var out []AuditRow
	for rows.Next() {
		var r AuditRow
		require.NoError(t, rows.Scan(&r.Action, &r.ActorID, &r.AccommodationID, &r.TargetID, &r.Outcome, &r.Error))
		out = append(out, r)
	}
	require.NoError(t, rows.Err())
	return out
}

func CountAuditEntries(t *testing.T, db DBLike) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM admin_actions").Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
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
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
