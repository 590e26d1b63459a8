// ABOUTME: SQLite-backed session usage telemetry using modernc.org/sqlite
// ABOUTME: Records per-session tool counts and token estimates for tuning

package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// SessionUsage is one recorded proxied session.
type SessionUsage struct {
	ID             string
	Route          string
	AgentType      string
	SessionType    string
	Hybrid         bool
	DirectCount    int
	DelegatedCount int
	TokenEstimate  int
	Model          string
	CreatedAt      time.Time
}

// UsageStore persists session usage rows in SQLite. A nil *UsageStore is
// valid and drops all writes (telemetry disabled).
type UsageStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewUsageStore opens (or creates) the usage database at path. An empty
// path disables telemetry and returns a nil store.
// Parent directories are created if needed.
func NewUsageStore(path string) (*UsageStore, error) {
	if path == "" {
		return nil, nil
	}

	logger := slog.Default().With("component", "store")

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// WAL for better concurrent performance
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	s := &UsageStore{
		db:     db,
		logger: logger,
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	logger.Info("usage store initialized", "path", path)
	return s, nil
}

// createSchema creates the database tables if they don't exist
func (s *UsageStore) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS session_usage (
			id              TEXT PRIMARY KEY,
			route           TEXT NOT NULL,
			agent_type      TEXT NOT NULL,
			session_type    TEXT NOT NULL,
			hybrid          INTEGER NOT NULL DEFAULT 0,
			direct_count    INTEGER NOT NULL DEFAULT 0,
			delegated_count INTEGER NOT NULL DEFAULT 0,
			token_estimate  INTEGER NOT NULL DEFAULT 0,
			model           TEXT,
			created_at      TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_session_usage_created
			ON session_usage(created_at);

		CREATE INDEX IF NOT EXISTS idx_session_usage_session_type
			ON session_usage(session_type, agent_type);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return err
	}
	return nil
}

// Record writes one usage row. An ID is assigned when missing. A nil store
// is a no-op.
func (s *UsageStore) Record(ctx context.Context, u *SessionUsage) error {
	if s == nil {
		return nil
	}

	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO session_usage
			(id, route, agent_type, session_type, hybrid, direct_count, delegated_count, token_estimate, model, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Route, u.AgentType, u.SessionType, boolToInt(u.Hybrid),
		u.DirectCount, u.DelegatedCount, u.TokenEstimate, u.Model,
		u.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("recording session usage: %w", err)
	}
	return nil
}

// UsageSummary aggregates recorded sessions for one session/agent pair.
type UsageSummary struct {
	SessionType    string
	AgentType      string
	Sessions       int
	AvgTokens      float64
	HybridSessions int
}

// Summarize aggregates usage per session/agent pair since the given time.
func (s *UsageStore) Summarize(ctx context.Context, since time.Time) ([]UsageSummary, error) {
	if s == nil {
		return nil, nil
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT session_type, agent_type, COUNT(*), AVG(token_estimate), SUM(hybrid)
		FROM session_usage
		WHERE created_at >= ?
		GROUP BY session_type, agent_type
		ORDER BY COUNT(*) DESC`,
		since.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("querying usage summary: %w", err)
	}
	defer rows.Close()

	var summaries []UsageSummary
	for rows.Next() {
		var sum UsageSummary
		if err := rows.Scan(&sum.SessionType, &sum.AgentType, &sum.Sessions, &sum.AvgTokens, &sum.HybridSessions); err != nil {
			return nil, fmt.Errorf("scanning usage summary: %w", err)
		}
		summaries = append(summaries, sum)
	}
	return summaries, rows.Err()
}

// Close closes the underlying database. A nil store is a no-op.
func (s *UsageStore) Close() error {
	if s == nil {
		return nil
	}
	return s.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
