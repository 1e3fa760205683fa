package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/glebarez/go-sqlite"
)

// DSN builds the SQLite connection string for the given store path.
// foreign_keys must be enabled per connection for the cascade rules
// and the cleanup trigger to fire; busy_timeout keeps concurrent
// readers from failing immediately while a write is in flight.
func DSN(path string) string {
	return fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", path)
}

// Open connects to the SQLite store file and verifies the connection.
// SQLite allows a single writer, so the pool is capped at one open
// connection; each logical operation borrows it, runs and returns it.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", DSN(path))
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return db, nil
}
