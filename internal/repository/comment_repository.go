package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/wayfarerhq/footprints/internal/model"
)

type CommentRepo struct{ DB *sql.DB }

func NewCommentRepo(db *sql.DB) *CommentRepo { return &CommentRepo{DB: db} }

// Create inserts a comment on a footprint and returns its ID.
// parentID may be nil for top-level comments or reference an existing
// comment for a threaded reply.
func (r *CommentRepo) Create(ctx context.Context, footprintID, userID int64, content string, parentID *int64) (int64, error) {
	createdAt := time.Now().UTC().Format(timestampLayout)
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO comments (footprint_id, user_id, content, parent_id, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		footprintID, userID, content, parentID, createdAt)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListByFootprint returns the comments on a footprint in
// chronological order with author usernames joined.
func (r *CommentRepo) ListByFootprint(ctx context.Context, footprintID int64) ([]model.CommentDetail, error) {
	const q = `SELECT c.comment_id, c.footprint_id, c.user_id, c.content, c.parent_id, c.created_at, u.username
		FROM comments c
		JOIN users u ON u.user_id = c.user_id
		WHERE c.footprint_id = ?
		ORDER BY c.created_at, c.comment_id`
	rows, err := r.DB.QueryContext(ctx, q, footprintID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.CommentDetail, 0)
	for rows.Next() {
		var c model.CommentDetail
		if err := rows.Scan(&c.ID, &c.FootprintID, &c.UserID, &c.Content, &c.ParentID, &c.CreatedAt, &c.Username); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
