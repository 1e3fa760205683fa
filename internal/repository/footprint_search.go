package repository

import (
	"context"
	"strings"

	"github.com/wayfarerhq/footprints/internal/model"
)

// FootprintSearchQuery defines the filters for footprint search. All
// predicates are conjunctive; absent predicates are omitted, not
// treated as always-false. Username and LocationName match as
// substrings with the storage engine's default LIKE semantics.
// Timestamp bounds are inclusive at both ends.
type FootprintSearchQuery struct {
	Username      string
	LocationName  string
	LocationTypes []string
	CreatedAfter  string
	CreatedBefore string
}

// Search returns the footprints matching every supplied filter,
// newest first, with author and location fields joined.
func (r *FootprintRepo) Search(ctx context.Context, q FootprintSearchQuery) ([]model.FootprintDetail, error) {
	where := []string{}
	args := []interface{}{}

	if q.Username != "" {
		where = append(where, "u.username LIKE ?")
		args = append(args, "%"+q.Username+"%")
	}
	if q.LocationName != "" {
		where = append(where, "l.name LIKE ?")
		args = append(args, "%"+q.LocationName+"%")
	}
	if len(q.LocationTypes) > 0 {
		placeholders := make([]string, 0, len(q.LocationTypes))
		for _, t := range q.LocationTypes {
			placeholders = append(placeholders, "?")
			args = append(args, t)
		}
		where = append(where, "l.type IN ("+strings.Join(placeholders, ",")+")")
	}
	if q.CreatedAfter != "" {
		where = append(where, "f.created_at >= ?")
		args = append(args, q.CreatedAfter)
	}
	if q.CreatedBefore != "" {
		where = append(where, "f.created_at <= ?")
		args = append(args, q.CreatedBefore)
	}

	cond := "1=1"
	if len(where) > 0 {
		cond = strings.Join(where, " AND ")
	}

	query := footprintSelect + `
	WHERE ` + cond + `
	ORDER BY f.created_at DESC, f.footprint_id DESC`
	rows, err := r.db.QueryContext(ctx, query, args...)
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
