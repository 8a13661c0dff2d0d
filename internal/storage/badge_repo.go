package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type BadgeRepo struct {
	db DBTX
}

func NewBadgeRepo(db DBTX) *BadgeRepo {
	return &BadgeRepo{db: db}
}

func (r *BadgeRepo) Get(ctx context.Context, slug string) (*Badge, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT slug, name, icon, description FROM badges WHERE slug = ?
	`, slug)

	var b Badge
	if err := row.Scan(&b.Slug, &b.Name, &b.Icon, &b.Description); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("badge get: %w", err)
	}
	return &b, nil
}

// EarnedSlugs returns the set of badge slugs the user already holds.
func (r *BadgeRepo) EarnedSlugs(ctx context.Context, userKey string) (map[string]bool, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT badge_slug FROM user_badges WHERE user_key = ?
	`, userKey)
	if err != nil {
		return nil, fmt.Errorf("earned slugs: %w", err)
	}
	defer rows.Close()

	earned := map[string]bool{}
	for rows.Next() {
		var slug string
		if err := rows.Scan(&slug); err != nil {
			return nil, fmt.Errorf("earned slug scan: %w", err)
		}
		earned[slug] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("earned slugs rows: %w", err)
	}
	return earned, nil
}

// Award records the association. The (user_key, badge_slug) primary key makes
// a second award of the same badge fail, so callers must check EarnedSlugs
// first; badges are never removed once granted.
func (r *BadgeRepo) Award(ctx context.Context, userKey, slug string, earnedAt time.Time) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO user_badges (user_key, badge_slug, earned_at) VALUES (?, ?, ?)
	`, userKey, slug, earnedAt)
	if err != nil {
		return fmt.Errorf("badge award: %w", err)
	}
	return nil
}

// ListEarnedByUser returns the user's badges with earn timestamps, oldest first.
func (r *BadgeRepo) ListEarnedByUser(ctx context.Context, userKey string) ([]EarnedBadge, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT b.slug, b.name, b.icon, b.description, ub.earned_at
		FROM user_badges ub
		JOIN badges b ON b.slug = ub.badge_slug
		WHERE ub.user_key = ?
		ORDER BY ub.earned_at ASC, b.slug ASC
	`, userKey)
	if err != nil {
		return nil, fmt.Errorf("earned badges: %w", err)
	}
	defer rows.Close()

	var out []EarnedBadge
	for rows.Next() {
		var eb EarnedBadge
		if err := rows.Scan(&eb.Slug, &eb.Name, &eb.Icon, &eb.Description, &eb.EarnedAt); err != nil {
			return nil, fmt.Errorf("earned badge scan: %w", err)
		}
		out = append(out, eb)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("earned badges rows: %w", err)
	}
	return out, nil
}

// ListAll returns the badge catalog in seeded order.
func (r *BadgeRepo) ListAll(ctx context.Context) ([]Badge, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT slug, name, icon, description FROM badges ORDER BY rowid ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("badge list: %w", err)
	}
	defer rows.Close()

	var out []Badge
	for rows.Next() {
		var b Badge
		if err := rows.Scan(&b.Slug, &b.Name, &b.Icon, &b.Description); err != nil {
			return nil, fmt.Errorf("badge scan: %w", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("badge rows: %w", err)
	}
	return out, nil
}
