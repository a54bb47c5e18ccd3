// Package history persists submitted search queries to a local SQLite
// database so past searches can be recalled from the CLI.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sahilm/fuzzy"

	"github.com/studiowebux/shapecli/internal/types"
)

type Manager struct {
	db *sql.DB
}

// NewManager opens (and if needed creates) the history database at dbPath.
func NewManager(dbPath string) (*Manager, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to history database: %w", err)
	}

	m := &Manager{db: db}
	if err := m.initSchema(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Manager) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS searches (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp DATETIME NOT NULL,
		tenant TEXT NOT NULL,
		query TEXT NOT NULL,
		results INTEGER NOT NULL,
		error TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_searches_timestamp ON searches(timestamp DESC);
	CREATE INDEX IF NOT EXISTS idx_searches_tenant ON searches(tenant);
	`

	if _, err := m.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to initialize history schema: %w", err)
	}
	return nil
}

// Record stores one submitted search. searchErr may be nil.
func (m *Manager) Record(tenant, query string, results int, searchErr error) error {
	errText := ""
	if searchErr != nil {
		errText = searchErr.Error()
	}

	timestamp := time.Now().Local().Format("2006-01-02 15:04:05")
	_, err := m.db.Exec(
		`INSERT INTO searches (timestamp, tenant, query, results, error) VALUES (?, ?, ?, ?, ?)`,
		timestamp, tenant, query, results, errText,
	)
	if err != nil {
		return fmt.Errorf("failed to record search: %w", err)
	}
	return nil
}

// Recent returns up to limit records, newest first.
func (m *Manager) Recent(limit int) ([]types.SearchRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := m.db.Query(
		`SELECT id, timestamp, tenant, query, results, COALESCE(error, '')
		 FROM searches ORDER BY timestamp DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var records []types.SearchRecord
	for rows.Next() {
		var r types.SearchRecord
		if err := rows.Scan(&r.ID, &r.Timestamp, &r.Tenant, &r.Query, &r.Results, &r.Error); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// Find fuzzy-ranks past queries against term and returns the matches, best
// first. An empty term behaves like Recent.
func (m *Manager) Find(term string, limit int) ([]types.SearchRecord, error) {
	records, err := m.Recent(500)
	if err != nil {
		return nil, err
	}
	if term == "" {
		if limit > 0 && len(records) > limit {
			records = records[:limit]
		}
		return records, nil
	}

	queries := make([]string, len(records))
	for i, r := range records {
		queries[i] = r.Query
	}

	matches := fuzzy.Find(term, queries)
	out := make([]types.SearchRecord, 0, len(matches))
	for _, match := range matches {
		out = append(out, records[match.Index])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

// Clear removes all recorded searches.
func (m *Manager) Clear() error {
	if _, err := m.db.Exec(`DELETE FROM searches`); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}

// Close closes the database.
func (m *Manager) Close() error {
	return m.db.Close()
}
