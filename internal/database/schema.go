package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
)

// schema holds the full DDL for the store. Association tables use
// composite primary keys with ON DELETE CASCADE on both sides. The
// clean_empty_trips trigger removes a trip once its last participant
// row is gone: a trip's existence is contingent on having at least
// one participant at all times after creation.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	user_id INTEGER PRIMARY KEY AUTOINCREMENT,
	username TEXT NOT NULL UNIQUE,
	email TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS trips (
	trip_id INTEGER PRIMARY KEY AUTOINCREMENT,
	start_day DATE NOT NULL,
	end_day DATE NOT NULL CHECK (end_day > start_day)
);

CREATE TABLE IF NOT EXISTS trip_participants (
	user_id INTEGER NOT NULL REFERENCES users (user_id) ON DELETE CASCADE,
	trip_id INTEGER NOT NULL REFERENCES trips (trip_id) ON DELETE CASCADE,
	PRIMARY KEY (user_id, trip_id)
);

CREATE TABLE IF NOT EXISTS locations (
	location_id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE,
	address TEXT,
	type TEXT NOT NULL CHECK (type IN ('attraction', 'restaurant', 'transport'))
);

CREATE TABLE IF NOT EXISTS trip_locations (
	location_id INTEGER NOT NULL REFERENCES locations (location_id) ON DELETE CASCADE,
	trip_id INTEGER NOT NULL REFERENCES trips (trip_id) ON DELETE CASCADE,
	PRIMARY KEY (location_id, trip_id)
);

CREATE TABLE IF NOT EXISTS footprints (
	footprint_id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	content TEXT,
	image_url TEXT,
	created_at DATETIME NOT NULL,
	user_id INTEGER NOT NULL REFERENCES users (user_id) ON DELETE CASCADE,
	location_id INTEGER NOT NULL REFERENCES locations (location_id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS comments (
	comment_id INTEGER PRIMARY KEY AUTOINCREMENT,
	footprint_id INTEGER NOT NULL REFERENCES footprints (footprint_id) ON DELETE CASCADE,
	user_id INTEGER NOT NULL REFERENCES users (user_id) ON DELETE CASCADE,
	content TEXT NOT NULL,
	parent_id INTEGER REFERENCES comments (comment_id) ON DELETE CASCADE,
	created_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS collections (
	user_id INTEGER NOT NULL REFERENCES users (user_id) ON DELETE CASCADE,
	footprint_id INTEGER NOT NULL REFERENCES footprints (footprint_id) ON DELETE CASCADE,
	created_at DATETIME NOT NULL,
	PRIMARY KEY (user_id, footprint_id)
);

CREATE TRIGGER IF NOT EXISTS clean_empty_trips
AFTER DELETE ON trip_participants
FOR EACH ROW
BEGIN
	DELETE FROM trips
	WHERE trip_id = OLD.trip_id
	AND (SELECT COUNT(*) FROM trip_participants WHERE trip_id = OLD.trip_id) = 0;
END;
`

// Reset deletes the store file so the next Open starts from empty.
// It is a no-op when the file does not exist.
func Reset(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reset store: %w", err)
	}
	return nil
}

// Init creates all tables, constraints and the cleanup trigger in a
// single transaction. It is called once at process start; request
// handlers never touch the schema.
func Init(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	if _, err := tx.ExecContext(ctx, schema); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("init schema: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}
