package engine

import (
	"context"

	"github.com/impruthvi/flexboard-bytes-sub000/internal/storage"
)

// UserStatus aggregates everything the status surfaces show for one user.
type UserStatus struct {
	User           *storage.User
	Level          int
	NextLevelAt    int
	PointsToNext   int
	CompletedTasks int
	Badges         []storage.EarnedBadge
}

func (s *Service) UserStatus(ctx context.Context, userKey string) (*UserStatus, error) {
	u, err := s.users.GetOrCreate(ctx, userKey)
	if err != nil {
		return nil, err
	}

	level := LevelForPoints(u.Points)
	nextAt := PointsForLevel(level + 1)
	toNext := nextAt - u.Points
	if toNext < 0 {
		toNext = 0
	}

	completed, err := s.tasks.CountCompletedByUser(ctx, userKey)
	if err != nil {
		return nil, err
	}
	earned, err := s.badges.ListEarnedByUser(ctx, userKey)
	if err != nil {
		return nil, err
	}

	return &UserStatus{
		User:           u,
		Level:          level,
		NextLevelAt:    nextAt,
		PointsToNext:   toNext,
		CompletedTasks: completed,
		Badges:         earned,
	}, nil
}
