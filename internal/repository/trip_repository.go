package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/wayfarerhq/footprints/internal/model"
)

// TripRepo provides CRUD operations for trips and their participant
// and visited-location associations. Trip creation is a single
// transaction: the trip row, participant rows and location rows all
// land together or not at all.
type TripRepo struct {
	db *sql.DB
}

// NewTripRepo returns a new TripRepo bound to the given database.
func NewTripRepo(db *sql.DB) *TripRepo { return &TripRepo{db: db} }

// Create inserts a trip for the given participants and optional
// visited locations. Participant ids are deduplicated and silently
// filtered to ids that exist in the users table; when no valid
// participant remains the whole creation rolls back with
// ErrNoValidParticipants. Location ids get the same dedupe-and-filter
// treatment, but an empty valid-location result is not an error — a
// trip may have zero recorded locations. Days are ISO dates.
func (r *TripRepo) Create(ctx context.Context, participantIDs []int64, startDay, endDay string, locationIDs []int64) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("create trip: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Insert the trip row first so a generated id exists for the
	// association rows; the deferred rollback discards it on any
	// later failure.
	res, err := tx.ExecContext(ctx,
		"INSERT INTO trips (start_day, end_day) VALUES (?, ?)",
		startDay, endDay)
	if err != nil {
		if strings.Contains(err.Error(), "CHECK constraint failed") {
			return 0, ErrEndNotAfterStart
		}
		return 0, fmt.Errorf("create trip: %w", err)
	}
	tripID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("create trip: %w", err)
	}

	validUsers, err := filterExistingTx(ctx, tx, "users", "user_id", dedupe(participantIDs))
	if err != nil {
		return 0, fmt.Errorf("create trip: %w", err)
	}
	if len(validUsers) == 0 {
		return 0, ErrNoValidParticipants
	}
	if err := insertAssociationsTx(ctx, tx, "trip_participants", "user_id", tripID, validUsers); err != nil {
		return 0, fmt.Errorf("create trip: %w", err)
	}

	if len(locationIDs) > 0 {
		validLocations, err := filterExistingTx(ctx, tx, "locations", "location_id", dedupe(locationIDs))
		if err != nil {
			return 0, fmt.Errorf("create trip: %w", err)
		}
		if err := insertAssociationsTx(ctx, tx, "trip_locations", "location_id", tripID, validLocations); err != nil {
			return 0, fmt.Errorf("create trip: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("create trip: %w", err)
	}
	return tripID, nil
}

// Delete removes a trip by id and reports whether a row was removed.
// Participant and location associations go via ON DELETE CASCADE.
func (r *TripRepo) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM trips WHERE trip_id = ?", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// List returns all trips ordered by start day descending. Participant
// usernames and visited location names are comma-joined per trip by
// correlated aggregation, empty string when none.
func (r *TripRepo) List(ctx context.Context) ([]model.TripSummary, error) {
	const q = `SELECT t.trip_id, t.start_day, t.end_day,
			COALESCE((SELECT GROUP_CONCAT(u.username, ', ')
				FROM trip_participants tp
				JOIN users u ON u.user_id = tp.user_id
				WHERE tp.trip_id = t.trip_id), '') AS participants,
			COALESCE((SELECT GROUP_CONCAT(l.name, ', ')
				FROM trip_locations tl
				JOIN locations l ON l.location_id = tl.location_id
				WHERE tl.trip_id = t.trip_id), '') AS locations
		FROM trips t
		ORDER BY t.start_day DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.TripSummary, 0)
	for rows.Next() {
		var t model.TripSummary
		if err := rows.Scan(&t.ID, &t.StartDay, &t.EndDay, &t.Participants, &t.Locations); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// dedupe removes duplicate ids while keeping first-seen order.
func dedupe(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// filterExistingTx returns the subset of ids that exist in the given
// table. The IN list is built from generated placeholders, one per
// id, never from interpolated values.
func filterExistingTx(ctx context.Context, tx *sql.Tx, table, column string, ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	placeholders := make([]string, 0, len(ids))
	args := make([]interface{}, 0, len(ids))
	for _, id := range ids {
		placeholders = append(placeholders, "?")
		args = append(args, id)
	}
	query := "SELECT " + column + " FROM " + table +
		" WHERE " + column + " IN (" + strings.Join(placeholders, ",") + ")"
	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var valid []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		valid = append(valid, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return valid, nil
}

// insertAssociationsTx bulk-inserts (id, trip_id) association rows in
// a single statement. Passing an empty slice has no effect.
func insertAssociationsTx(ctx context.Context, tx *sql.Tx, table, column string, tripID int64, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	query := "INSERT INTO " + table + " (" + column + ", trip_id) VALUES "
	args := make([]interface{}, 0, len(ids)*2)
	for i, id := range ids {
		if i > 0 {
			query += ","
		}
		query += "(?, ?)"
		args = append(args, id, tripID)
	}
	_, err := tx.ExecContext(ctx, query, args...)
	return err
}
