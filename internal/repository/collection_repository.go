package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/wayfarerhq/footprints/internal/model"
)

// CollectionRepo manages the favorite relation between users and
// footprints. The pair is unique, so collecting is a toggle.
type CollectionRepo struct{ DB *sql.DB }

func NewCollectionRepo(db *sql.DB) *CollectionRepo { return &CollectionRepo{DB: db} }

// IsCollected reports whether the user has collected the footprint.
func (r *CollectionRepo) IsCollected(ctx context.Context, userID, footprintID int64) (bool, error) {
	var n int
	err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM collections WHERE user_id = ? AND footprint_id = ?",
		userID, footprintID).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Toggle flips the collected state inside one transaction and returns
// the resulting state: true when the footprint is now collected.
func (r *CollectionRepo) Toggle(ctx context.Context, userID, footprintID int64) (bool, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("toggle collection: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var n int
	if err := tx.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM collections WHERE user_id = ? AND footprint_id = ?",
		userID, footprintID).Scan(&n); err != nil {
		return false, fmt.Errorf("toggle collection: %w", err)
	}

	collected := false
	if n > 0 {
		if _, err := tx.ExecContext(ctx,
			"DELETE FROM collections WHERE user_id = ? AND footprint_id = ?",
			userID, footprintID); err != nil {
			return false, fmt.Errorf("toggle collection: %w", err)
		}
	} else {
		createdAt := time.Now().UTC().Format(timestampLayout)
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO collections (user_id, footprint_id, created_at) VALUES (?, ?, ?)",
			userID, footprintID, createdAt); err != nil {
			return false, fmt.Errorf("toggle collection: %w", err)
		}
		collected = true
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("toggle collection: %w", err)
	}
	return collected, nil
}

// ListByUser returns the footprints a user has collected, most
// recently collected first, with location names joined.
func (r *CollectionRepo) ListByUser(ctx context.Context, userID int64) ([]model.CollectionDetail, error) {
	const q = `SELECT f.footprint_id, f.title, f.image_url, l.name, c.created_at
		FROM collections c
		JOIN footprints f ON f.footprint_id = c.footprint_id
		JOIN locations l ON l.location_id = f.location_id
		WHERE c.user_id = ?
		ORDER BY c.created_at DESC, f.footprint_id DESC`
	rows, err := r.DB.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.CollectionDetail, 0)
	for rows.Next() {
		var d model.CollectionDetail
		if err := rows.Scan(&d.FootprintID, &d.Title, &d.ImageURL, &d.LocationName, &d.CollectedAt); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
