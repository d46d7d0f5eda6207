package db

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	_ "github.com/lib/pq"
)

// DB is a handle on the gateway's optional Postgres instance. Every data
// route is served straight from the upstream node; the database only backs
// the diagnostics report.
type DB struct {
	mu   sync.Mutex
	db   *sql.DB
	Name string
}

// NewDB connects to the database at connStr and verifies the connection.
func NewDB(connStr, name string) (*DB, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.Ping()
	if err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		db:   db,
		Name: name,
	}, nil
}

// Ping re-checks the connection.
func (d *DB) Ping(ctx context.Context) error {
	return d.db.PingContext(ctx)
}

// TableNames returns up to limit table names from the public schema.
func (d *DB) TableNames(ctx context.Context, limit int) ([]string, error) {
	rows, err := d.db.QueryContext(ctx, `
    SELECT table_name
    FROM information_schema.tables
    WHERE table_schema = 'public'
    ORDER BY table_name
    LIMIT $1;
    `, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tables := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		tables = append(tables, name)
	}

	return tables, rows.Err()
}

// Close closes the db
func (d *DB) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.db.Close()
}
