package storage

import (
	"context"
	"database/sql"
	"fmt"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			key TEXT PRIMARY KEY,
			points INTEGER NOT NULL DEFAULT 0,
			current_streak INTEGER NOT NULL DEFAULT 0,
			longest_streak INTEGER NOT NULL DEFAULT 0,
			last_activity_date TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS projects (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_key TEXT NOT NULL,
			name TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,

			FOREIGN KEY(user_key) REFERENCES users(key)
		);`,
		`CREATE TABLE IF NOT EXISTS tasks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			project_id INTEGER NOT NULL,
			title TEXT NOT NULL,
			points INTEGER NOT NULL DEFAULT 10,

			completed INTEGER NOT NULL DEFAULT 0,
			completed_at DATETIME,
			deleted_at DATETIME,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,

			FOREIGN KEY(project_id) REFERENCES projects(id)
		);`,
		// One row per active completion; removed again on uncomplete.
		`CREATE TABLE IF NOT EXISTS flexes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_key TEXT NOT NULL,
			task_id INTEGER NOT NULL,
			points_earned INTEGER NOT NULL,
			message TEXT NOT NULL,
			streak_bonus INTEGER NOT NULL DEFAULT 0,
			multiplier REAL NOT NULL DEFAULT 1.0,
			created_at DATETIME NOT NULL,

			FOREIGN KEY(user_key) REFERENCES users(key),
			FOREIGN KEY(task_id) REFERENCES tasks(id)
		);`,
		`CREATE TABLE IF NOT EXISTS badges (
			slug TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			icon TEXT NOT NULL,
			description TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS user_badges (
			user_key TEXT NOT NULL,
			badge_slug TEXT NOT NULL,
			earned_at DATETIME NOT NULL,

			PRIMARY KEY(user_key, badge_slug),
			FOREIGN KEY(user_key) REFERENCES users(key),
			FOREIGN KEY(badge_slug) REFERENCES badges(slug)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_projects_user_key ON projects(user_key);`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_project_id ON tasks(project_id);`,
		`CREATE INDEX IF NOT EXISTS idx_flexes_user_key_task_id ON flexes(user_key, task_id);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	return seedBadges(ctx, db)
}

// seedBadges inserts the static badge reference rows. Slugs already present
// are left untouched, so re-running migration is safe.
func seedBadges(ctx context.Context, db *sql.DB) error {
	rows := []Badge{
		{Slug: "first-flex", Name: "First Flex", Icon: "💪", Description: "Complete your first task"},
		{Slug: "getting-started", Name: "Getting Started", Icon: "🚀", Description: "Complete 5 tasks"},
		{Slug: "task-master", Name: "Task Master", Icon: "🎯", Description: "Complete 25 tasks"},
		{Slug: "century", Name: "Century Club", Icon: "💯", Description: "Earn 100 points"},
		{Slug: "high-roller", Name: "High Roller", Icon: "🎰", Description: "Earn 500 points"},
		{Slug: "legend", Name: "Legend", Icon: "👑", Description: "Earn 1000 points"},
		{Slug: "on-fire", Name: "On Fire", Icon: "🔥", Description: "Keep a 7-day streak"},
		{Slug: "unstoppable", Name: "Unstoppable", Icon: "⚡", Description: "Keep a 30-day streak"},
	}

	for _, b := range rows {
		_, err := db.ExecContext(ctx, `
			INSERT OR IGNORE INTO badges (slug, name, icon, description)
			VALUES (?, ?, ?, ?)
		`, b.Slug, b.Name, b.Icon, b.Description)
		if err != nil {
			return fmt.Errorf("seed badge %s: %w", b.Slug, err)
		}
	}
	return nil
}
