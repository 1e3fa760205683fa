package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/wayfarerhq/footprints/internal/model"
)

type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// Create inserts a user and returns its ID. A username or email that
// is already taken yields a *ConflictError and leaves the user
// collection unchanged.
func (r *UserRepo) Create(ctx context.Context, username, email string) (int64, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (username, email) VALUES (?, ?)",
		username, email)
	if err != nil {
		if constraint, ok := conflictConstraint(err); ok {
			return 0, &ConflictError{Constraint: constraint}
		}
		return 0, err
	}
	return res.LastInsertId()
}

// Delete removes a user by id and reports whether a row was actually
// removed. Participant, comment and collection rows go with the user
// via ON DELETE CASCADE; any trip left without participants is then
// removed by the clean_empty_trips trigger.
func (r *UserRepo) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM users WHERE user_id = ?", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// List returns all users in insertion order.
func (r *UserRepo) List(ctx context.Context) ([]model.User, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT user_id, username, email FROM users ORDER BY user_id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.User, 0)
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
