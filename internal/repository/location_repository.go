package repository

import (
	"context"
	"database/sql"

	"github.com/wayfarerhq/footprints/internal/model"
)

type LocationRepo struct{ DB *sql.DB }

func NewLocationRepo(db *sql.DB) *LocationRepo { return &LocationRepo{DB: db} }

// LocationRow is the shape returned by List: just enough to populate
// a location picker.
type LocationRow struct {
	ID   int64  `json:"location_id"`
	Name string `json:"name"`
}

// Create inserts a location and returns its ID. The type is checked
// against the closed enumeration before any write; an invalid type
// yields ErrInvalidLocationType, never a storage error. A duplicate
// name yields a *ConflictError.
func (r *LocationRepo) Create(ctx context.Context, name string, address *string, locType string) (int64, error) {
	if !model.ValidLocationType(locType) {
		return 0, ErrInvalidLocationType
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO locations (name, address, type) VALUES (?, ?, ?)",
		name, address, locType)
	if err != nil {
		if constraint, ok := conflictConstraint(err); ok {
			return 0, &ConflictError{Constraint: constraint}
		}
		return 0, err
	}
	return res.LastInsertId()
}

// List returns every location's id and name in insertion order.
func (r *LocationRepo) List(ctx context.Context) ([]LocationRow, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT location_id, name FROM locations ORDER BY location_id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]LocationRow, 0)
	for rows.Next() {
		var l LocationRow
		if err := rows.Scan(&l.ID, &l.Name); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
