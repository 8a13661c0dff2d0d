package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type FlexRepo struct {
	db DBTX
}

func NewFlexRepo(db DBTX) *FlexRepo {
	return &FlexRepo{db: db}
}

type FlexInsert struct {
	UserKey      string
	TaskID       int64
	PointsEarned int
	Message      string
	StreakBonus  bool
	Multiplier   float64
	CreatedAt    time.Time
}

func (r *FlexRepo) Insert(ctx context.Context, in FlexInsert) (int64, error) {
	bonus := 0
	if in.StreakBonus {
		bonus = 1
	}
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO flexes (user_key, task_id, points_earned, message, streak_bonus, multiplier, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, in.UserKey, in.TaskID, in.PointsEarned, in.Message, bonus, in.Multiplier, in.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("flex insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("flex last insert id: %w", err)
	}
	return id, nil
}

// GetByUserAndTask returns the active completion record for the pair, or nil.
// There is at most one while the task is completed.
func (r *FlexRepo) GetByUserAndTask(ctx context.Context, userKey string, taskID int64) (*Flex, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, user_key, task_id, points_earned, message, streak_bonus, multiplier, created_at
		FROM flexes
		WHERE user_key = ? AND task_id = ?
		ORDER BY id DESC
		LIMIT 1
	`, userKey, taskID)
	return scanFlex(row)
}

func (r *FlexRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM flexes WHERE id = ?`, id); err != nil {
		return fmt.Errorf("flex delete: %w", err)
	}
	return nil
}

// ListRecentByUser returns the user's latest flexes, newest first.
func (r *FlexRepo) ListRecentByUser(ctx context.Context, userKey string, limit int) ([]Flex, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_key, task_id, points_earned, message, streak_bonus, multiplier, created_at
		FROM flexes
		WHERE user_key = ?
		ORDER BY id DESC
		LIMIT ?
	`, userKey, limit)
	if err != nil {
		return nil, fmt.Errorf("flex list: %w", err)
	}
	defer rows.Close()

	var out []Flex
	for rows.Next() {
		f, err := scanFlex(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("flex list rows: %w", err)
	}
	return out, nil
}

func scanFlex(row scanner) (*Flex, error) {
	var f Flex
	var bonus int
	if err := row.Scan(&f.ID, &f.UserKey, &f.TaskID, &f.PointsEarned, &f.Message, &bonus, &f.Multiplier, &f.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("flex scan: %w", err)
	}
	f.StreakBonus = bonus != 0
	return &f, nil
}
