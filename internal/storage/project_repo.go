package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type ProjectRepo struct {
	db DBTX
}

func NewProjectRepo(db DBTX) *ProjectRepo {
	return &ProjectRepo{db: db}
}

func (r *ProjectRepo) Insert(ctx context.Context, userKey, name string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO projects (user_key, name) VALUES (?, ?)
	`, userKey, name)
	if err != nil {
		return 0, fmt.Errorf("project insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("project last insert id: %w", err)
	}
	return id, nil
}

func (r *ProjectRepo) Get(ctx context.Context, id int64) (*Project, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, user_key, name, created_at FROM projects WHERE id = ?
	`, id)

	var p Project
	if err := row.Scan(&p.ID, &p.UserKey, &p.Name, &p.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("project get: %w", err)
	}
	return &p, nil
}

func (r *ProjectRepo) ListByUser(ctx context.Context, userKey string) ([]Project, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_key, name, created_at
		FROM projects
		WHERE user_key = ?
		ORDER BY id ASC
	`, userKey)
	if err != nil {
		return nil, fmt.Errorf("project list: %w", err)
	}
	defer rows.Close()

	var out []Project
	for rows.Next() {
		var p Project
		if err := rows.Scan(&p.ID, &p.UserKey, &p.Name, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("project scan: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("project rows: %w", err)
	}
	return out, nil
}
