package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type TaskRepo struct {
	db DBTX
}

func NewTaskRepo(db DBTX) *TaskRepo {
	return &TaskRepo{db: db}
}

type TaskInsert struct {
	ProjectID int64
	Title     string
	Points    int
}

func (r *TaskRepo) Insert(ctx context.Context, in TaskInsert) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO tasks (project_id, title, points) VALUES (?, ?, ?)
	`, in.ProjectID, in.Title, in.Points)
	if err != nil {
		return 0, fmt.Errorf("task insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("task last insert id: %w", err)
	}
	return id, nil
}

// Get returns the task by id, or nil if it does not exist or is soft-deleted.
func (r *TaskRepo) Get(ctx context.Context, id int64) (*Task, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, project_id, title, points, completed, completed_at, deleted_at, created_at
		FROM tasks
		WHERE id = ? AND deleted_at IS NULL
	`, id)
	return scanTask(row)
}

// ListByUser returns the user's live tasks across all projects, ordered by
// project then id.
func (r *TaskRepo) ListByUser(ctx context.Context, userKey string) ([]Task, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT t.id, t.project_id, t.title, t.points, t.completed, t.completed_at, t.deleted_at, t.created_at
		FROM tasks t
		JOIN projects p ON p.id = t.project_id
		WHERE p.user_key = ? AND t.deleted_at IS NULL
		ORDER BY t.project_id ASC, t.id ASC
	`, userKey)
	if err != nil {
		return nil, fmt.Errorf("task list: %w", err)
	}
	defer rows.Close()

	var out []Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("task list rows: %w", err)
	}
	return out, nil
}

// CountCompletedByUser counts the user's completed live tasks through the
// project ownership chain.
func (r *TaskRepo) CountCompletedByUser(ctx context.Context, userKey string) (int, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM tasks t
		JOIN projects p ON p.id = t.project_id
		WHERE p.user_key = ? AND t.completed = 1 AND t.deleted_at IS NULL
	`, userKey)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("task completed count: %w", err)
	}
	return n, nil
}

// MarkCompleted flips the task to completed only if it is currently pending.
// It reports false when the row was already completed (or missing), which is
// how double-completion is caught without a read-then-write race.
func (r *TaskRepo) MarkCompleted(ctx context.Context, id int64, completedAt time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE tasks
		SET completed = 1, completed_at = ?
		WHERE id = ? AND completed = 0 AND deleted_at IS NULL
	`, completedAt, id)
	if err != nil {
		return false, fmt.Errorf("task mark completed: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("task mark completed rows: %w", err)
	}
	return n > 0, nil
}

// MarkUncompleted is the inverse conditional update; false means the task was
// not completed to begin with.
func (r *TaskRepo) MarkUncompleted(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE tasks
		SET completed = 0, completed_at = NULL
		WHERE id = ? AND completed = 1 AND deleted_at IS NULL
	`, id)
	if err != nil {
		return false, fmt.Errorf("task mark uncompleted: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("task mark uncompleted rows: %w", err)
	}
	return n > 0, nil
}

// SoftDelete stamps deleted_at; the row keeps existing for restore.
func (r *TaskRepo) SoftDelete(ctx context.Context, id int64, deletedAt time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE tasks SET deleted_at = ? WHERE id = ? AND deleted_at IS NULL
	`, deletedAt, id)
	if err != nil {
		return false, fmt.Errorf("task soft delete: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("task soft delete rows: %w", err)
	}
	return n > 0, nil
}

func (r *TaskRepo) Restore(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE tasks SET deleted_at = NULL WHERE id = ? AND deleted_at IS NOT NULL
	`, id)
	if err != nil {
		return false, fmt.Errorf("task restore: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("task restore rows: %w", err)
	}
	return n > 0, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(row scanner) (*Task, error) {
	var (
		t           Task
		completed   int
		completedAt sql.NullTime
		deletedAt   sql.NullTime
	)
	if err := row.Scan(&t.ID, &t.ProjectID, &t.Title, &t.Points, &completed, &completedAt, &deletedAt, &t.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("task scan: %w", err)
	}
	t.Completed = completed != 0
	if completedAt.Valid {
		v := completedAt.Time
		t.CompletedAt = &v
	}
	if deletedAt.Valid {
		v := deletedAt.Time
		t.DeletedAt = &v
	}
	return &t, nil
}
