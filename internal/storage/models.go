package storage

import "time"

type User struct {
	Key           string
	Points        int
	CurrentStreak int
	LongestStreak int
	// LastActivityDate is a calendar date (YYYY-MM-DD), nil before the
	// first completion. No time component, no timezone.
	LastActivityDate *string
	CreatedAt        time.Time
}

type Project struct {
	ID        int64
	UserKey   string
	Name      string
	CreatedAt time.Time
}

type Task struct {
	ID          int64
	ProjectID   int64
	Title       string
	Points      int
	Completed   bool
	CompletedAt *time.Time
	DeletedAt   *time.Time
	CreatedAt   time.Time
}

// Flex is the immutable audit record of one completion. It is created when a
// task is completed and deleted when the task is uncompleted, never updated.
type Flex struct {
	ID           int64
	UserKey      string
	TaskID       int64
	PointsEarned int
	Message      string
	StreakBonus  bool
	Multiplier   float64
	CreatedAt    time.Time
}

// Badge rows are static reference data seeded at migration time.
// The unlock criteria live in the engine, keyed by slug.
type Badge struct {
	Slug        string
	Name        string
	Icon        string
	Description string
}

type UserBadge struct {
	UserKey   string
	BadgeSlug string
	EarnedAt  time.Time
}

// EarnedBadge joins a badge with the moment the user earned it.
type EarnedBadge struct {
	Badge
	EarnedAt time.Time
}
