package engine

import (
	"context"
	"database/sql"

	"github.com/impruthvi/flexboard-bytes-sub000/internal/storage"
)

type CompleteResult struct {
	TaskID       int64
	Message      string
	PointsEarned int
	TotalPoints  int
	Streak       int
	Multiplier   float64
	StreakBonus  bool
	BadgeEarned  *storage.Badge
	LevelBefore  int
	LevelAfter   int
	LevelUp      bool
}

// CompleteTask transitions a task from pending to completed and applies the
// full reward chain: streak, multiplied points, Flex record, badge check,
// level-up detection. Everything runs in one transaction; the completed-flag
// flip is a conditional update, so a concurrent double-complete surfaces as
// AlreadyCompletedError instead of a double award.
func (s *Service) CompleteTask(ctx context.Context, userKey string, taskID int64) (*CompleteResult, error) {
	var result *CompleteResult

	err := storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		users := storage.NewUserRepo(tx)
		projects := storage.NewProjectRepo(tx)
		tasks := storage.NewTaskRepo(tx)
		flexes := storage.NewFlexRepo(tx)
		badges := storage.NewBadgeRepo(tx)

		task, err := taskOwnedBy(ctx, tasks, projects, userKey, taskID)
		if err != nil {
			return err
		}

		u, err := users.GetOrCreate(ctx, userKey)
		if err != nil {
			return err
		}

		now := s.now()
		today := DateKey(now)

		levelBefore := LevelForPoints(u.Points)
		streak := NextStreak(u.LastActivityDate, u.CurrentStreak, now)
		reward := CalculateReward(task.Points, streak)

		ok, err := tasks.MarkCompleted(ctx, taskID, now)
		if err != nil {
			return err
		}
		if !ok {
			return AlreadyCompletedError{TaskID: taskID}
		}

		message := pickMessage()
		if _, err := flexes.Insert(ctx, storage.FlexInsert{
			UserKey:      userKey,
			TaskID:       taskID,
			PointsEarned: reward.Points,
			Message:      message,
			StreakBonus:  reward.StreakBonus,
			Multiplier:   reward.Multiplier,
			CreatedAt:    now,
		}); err != nil {
			return err
		}

		u.Points += reward.Points
		u.CurrentStreak = streak
		if streak > u.LongestStreak {
			u.LongestStreak = streak
		}
		u.LastActivityDate = &today
		if err := users.Update(ctx, u); err != nil {
			return err
		}

		completedCount, err := tasks.CountCompletedByUser(ctx, userKey)
		if err != nil {
			return err
		}
		earned, err := badges.EarnedSlugs(ctx, userKey)
		if err != nil {
			return err
		}
		stats := UserStats{
			CompletedTasks: completedCount,
			TotalPoints:    u.Points,
			CurrentStreak:  u.CurrentStreak,
		}

		var awarded *storage.Badge
		if slug, ok := NextBadgeSlug(stats, earned); ok {
			if err := badges.Award(ctx, userKey, slug, now); err != nil {
				return err
			}
			awarded, err = badges.Get(ctx, slug)
			if err != nil {
				return err
			}
		}

		levelAfter := LevelForPoints(u.Points)
		result = &CompleteResult{
			TaskID:       taskID,
			Message:      message,
			PointsEarned: reward.Points,
			TotalPoints:  u.Points,
			Streak:       streak,
			Multiplier:   reward.Multiplier,
			StreakBonus:  reward.StreakBonus,
			BadgeEarned:  awarded,
			LevelBefore:  levelBefore,
			LevelAfter:   levelAfter,
			LevelUp:      levelAfter > levelBefore,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

type UncompleteResult struct {
	TaskID         int64
	PointsDeducted int
	TotalPoints    int
}

// UncompleteTask reverses a completion: the Flex record is removed and its
// points are deducted (floored at zero), then the task returns to pending.
// Streaks and badges are intentionally left alone; the day of activity still
// happened and badges are permanent.
func (s *Service) UncompleteTask(ctx context.Context, userKey string, taskID int64) (*UncompleteResult, error) {
	var result *UncompleteResult

	err := storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		users := storage.NewUserRepo(tx)
		projects := storage.NewProjectRepo(tx)
		tasks := storage.NewTaskRepo(tx)
		flexes := storage.NewFlexRepo(tx)

		if _, err := taskOwnedBy(ctx, tasks, projects, userKey, taskID); err != nil {
			return err
		}

		ok, err := tasks.MarkUncompleted(ctx, taskID)
		if err != nil {
			return err
		}
		if !ok {
			return NotCompletedError{TaskID: taskID}
		}

		u, err := users.GetOrCreate(ctx, userKey)
		if err != nil {
			return err
		}

		// A completion that never produced a Flex (or whose Flex is gone)
		// skips the deduction instead of failing.
		deducted := 0
		flex, err := flexes.GetByUserAndTask(ctx, userKey, taskID)
		if err != nil {
			return err
		}
		if flex != nil {
			deducted = flex.PointsEarned
			u.Points -= deducted
			if u.Points < 0 {
				u.Points = 0
			}
			if err := users.Update(ctx, u); err != nil {
				return err
			}
			if err := flexes.Delete(ctx, flex.ID); err != nil {
				return err
			}
		}

		result = &UncompleteResult{
			TaskID:         taskID,
			PointsDeducted: deducted,
			TotalPoints:    u.Points,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
