package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// DefaultUserKey identifies the implicit local user when no --user flag or
// FLEXBOARD_USER override is given.
const DefaultUserKey = "main"

type UserRepo struct {
	db DBTX
}

func NewUserRepo(db DBTX) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) Get(ctx context.Context, key string) (*User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT key, points, current_streak, longest_streak, last_activity_date, created_at
		FROM users
		WHERE key = ?
	`, key)

	var u User
	var lastActivity sql.NullString
	if err := row.Scan(&u.Key, &u.Points, &u.CurrentStreak, &u.LongestStreak, &lastActivity, &u.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("user get: %w", err)
	}
	if lastActivity.Valid {
		v := lastActivity.String
		u.LastActivityDate = &v
	}
	return &u, nil
}

func (r *UserRepo) GetOrCreate(ctx context.Context, key string) (*User, error) {
	u, err := r.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if u != nil {
		return u, nil
	}

	if _, err := r.db.ExecContext(ctx, `INSERT INTO users (key) VALUES (?)`, key); err != nil {
		return nil, fmt.Errorf("user insert: %w", err)
	}
	return r.Get(ctx, key)
}

// Update persists the gamification fields. Only the completion and
// uncompletion paths should ever call this.
func (r *UserRepo) Update(ctx context.Context, u *User) error {
	var lastActivity any
	if u.LastActivityDate != nil {
		lastActivity = *u.LastActivityDate
	}
	_, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET points = ?, current_streak = ?, longest_streak = ?, last_activity_date = ?
		WHERE key = ?
	`, u.Points, u.CurrentStreak, u.LongestStreak, lastActivity, u.Key)
	if err != nil {
		return fmt.Errorf("user update: %w", err)
	}
	return nil
}
