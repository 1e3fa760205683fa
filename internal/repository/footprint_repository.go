package repository

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"time"

	"github.com/wayfarerhq/footprints/internal/model"
)

// timestampLayout is the DATETIME format used for server-assigned
// timestamps, stored in UTC.
const timestampLayout = "2006-01-02 15:04:05"

// FootprintRepo provides CRUD and detail queries for footprints.
// Every footprint is anchored to exactly one author and one location.
type FootprintRepo struct {
	db *sql.DB
}

// NewFootprintRepo returns a new FootprintRepo bound to the given database.
func NewFootprintRepo(db *sql.DB) *FootprintRepo { return &FootprintRepo{db: db} }

// placeholderImageURL generates a placeholder token standing in for a
// real upload path.
func placeholderImageURL() string {
	buf := make([]byte, 8)
	_, _ = rand.Read(buf)
	return "/static/placeholders/" + hex.EncodeToString(buf) + ".jpg"
}

// Create inserts a footprint for the given author and location. The
// creation timestamp is stamped server-side in UTC and the image URL
// is a generated placeholder.
func (r *FootprintRepo) Create(ctx context.Context, userID int64, title string, content *string, locationID int64) (int64, error) {
	createdAt := time.Now().UTC().Format(timestampLayout)
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO footprints (title, content, image_url, created_at, user_id, location_id)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		title, content, placeholderImageURL(), createdAt, userID, locationID)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

const footprintSelect = `SELECT f.footprint_id, f.title, f.content, f.image_url, f.created_at,
		f.user_id, f.location_id, u.username, l.name, l.type
	FROM footprints f
	JOIN users u ON u.user_id = f.user_id
	JOIN locations l ON l.location_id = f.location_id`

func scanFootprintDetail(rows *sql.Rows) (model.FootprintDetail, error) {
	var d model.FootprintDetail
	err := rows.Scan(&d.ID, &d.Title, &d.Content, &d.ImageURL, &d.CreatedAt,
		&d.UserID, &d.LocationID, &d.Username, &d.LocationName, &d.LocationType)
	return d, err
}

// List returns all footprints joined with author username and
// location name/type, newest first.
func (r *FootprintRepo) List(ctx context.Context) ([]model.FootprintDetail, error) {
	rows, err := r.db.QueryContext(ctx, footprintSelect+` ORDER BY f.created_at DESC, f.footprint_id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.FootprintDetail, 0)
	for rows.Next() {
		d, err := scanFootprintDetail(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetDetail returns a single footprint with author and location
// fields joined. When no footprint with the id exists, sql.ErrNoRows
// is returned.
func (r *FootprintRepo) GetDetail(ctx context.Context, id int64) (*model.FootprintDetail, error) {
	var d model.FootprintDetail
	err := r.db.QueryRowContext(ctx, footprintSelect+` WHERE f.footprint_id = ?`, id).
		Scan(&d.ID, &d.Title, &d.Content, &d.ImageURL, &d.CreatedAt,
			&d.UserID, &d.LocationID, &d.Username, &d.LocationName, &d.LocationType)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Update rewrites a footprint's title, content and location and
// reports whether a row was actually changed.
func (r *FootprintRepo) Update(ctx context.Context, id int64, title string, content *string, locationID int64) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE footprints SET title = ?, content = ?, location_id = ? WHERE footprint_id = ?`,
		title, content, locationID, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
