package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func newTestDB(t *testing.T) (*UserRepo, *ProjectRepo, *TaskRepo, *FlexRepo, *BadgeRepo) {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return NewUserRepo(db), NewProjectRepo(db), NewTaskRepo(db), NewFlexRepo(db), NewBadgeRepo(db)
}

func seedProjectTask(t *testing.T, users *UserRepo, projects *ProjectRepo, tasks *TaskRepo) int64 {
	t.Helper()
	ctx := context.Background()

	if _, err := users.GetOrCreate(ctx, "main"); err != nil {
		t.Fatalf("create user: %v", err)
	}
	pid, err := projects.Insert(ctx, "main", "Inbox")
	if err != nil {
		t.Fatalf("insert project: %v", err)
	}
	tid, err := tasks.Insert(ctx, TaskInsert{ProjectID: pid, Title: "Do the thing", Points: 10})
	if err != nil {
		t.Fatalf("insert task: %v", err)
	}
	return tid
}

func TestMarkCompletedIsConditional(t *testing.T) {
	users, projects, tasks, _, _ := newTestDB(t)
	ctx := context.Background()
	tid := seedProjectTask(t, users, projects, tasks)

	now := time.Now().UTC()
	ok, err := tasks.MarkCompleted(ctx, tid, now)
	if err != nil {
		t.Fatalf("mark completed: %v", err)
	}
	if !ok {
		t.Fatalf("expected first completion to affect a row")
	}

	ok, err = tasks.MarkCompleted(ctx, tid, now)
	if err != nil {
		t.Fatalf("second mark completed: %v", err)
	}
	if ok {
		t.Fatalf("second completion should affect zero rows")
	}

	task, err := tasks.Get(ctx, tid)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !task.Completed || task.CompletedAt == nil {
		t.Fatalf("completed flag/timestamp out of sync: %+v", task)
	}

	ok, err = tasks.MarkUncompleted(ctx, tid)
	if err != nil {
		t.Fatalf("mark uncompleted: %v", err)
	}
	if !ok {
		t.Fatalf("expected uncompletion to affect a row")
	}
	task, _ = tasks.Get(ctx, tid)
	if task.Completed || task.CompletedAt != nil {
		t.Fatalf("timestamp should be cleared with the flag: %+v", task)
	}

	ok, err = tasks.MarkUncompleted(ctx, tid)
	if err != nil {
		t.Fatalf("second mark uncompleted: %v", err)
	}
	if ok {
		t.Fatalf("uncompleting a pending task should affect zero rows")
	}
}

func TestSoftDeleteFiltersEverywhere(t *testing.T) {
	users, projects, tasks, _, _ := newTestDB(t)
	ctx := context.Background()
	tid := seedProjectTask(t, users, projects, tasks)

	if _, err := tasks.MarkCompleted(ctx, tid, time.Now().UTC()); err != nil {
		t.Fatalf("mark completed: %v", err)
	}

	ok, err := tasks.SoftDelete(ctx, tid, time.Now().UTC())
	if err != nil {
		t.Fatalf("soft delete: %v", err)
	}
	if !ok {
		t.Fatalf("expected soft delete to affect a row")
	}

	task, err := tasks.Get(ctx, tid)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if task != nil {
		t.Fatalf("Get should hide soft-deleted rows, got %+v", task)
	}

	list, err := tasks.ListByUser(ctx, "main")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("list should hide soft-deleted rows, got %d", len(list))
	}

	n, err := tasks.CountCompletedByUser(ctx, "main")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Fatalf("count should exclude soft-deleted rows, got %d", n)
	}

	ok, err = tasks.Restore(ctx, tid)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if !ok {
		t.Fatalf("expected restore to affect a row")
	}
	task, _ = tasks.Get(ctx, tid)
	if task == nil {
		t.Fatalf("restored task should be visible again")
	}
}

func TestBadgeSeedAndAward(t *testing.T) {
	users, _, _, _, badges := newTestDB(t)
	ctx := context.Background()

	if _, err := users.GetOrCreate(ctx, "main"); err != nil {
		t.Fatalf("create user: %v", err)
	}

	all, err := badges.ListAll(ctx)
	if err != nil {
		t.Fatalf("list badges: %v", err)
	}
	if len(all) != 8 {
		t.Fatalf("seeded %d badges, want 8", len(all))
	}
	if all[0].Slug != "first-flex" {
		t.Fatalf("first seeded badge=%q, want first-flex", all[0].Slug)
	}

	now := time.Now().UTC()
	if err := badges.Award(ctx, "main", "first-flex", now); err != nil {
		t.Fatalf("award: %v", err)
	}
	if err := badges.Award(ctx, "main", "first-flex", now); err == nil {
		t.Fatalf("double award of the same badge should violate the primary key")
	}

	earned, err := badges.EarnedSlugs(ctx, "main")
	if err != nil {
		t.Fatalf("earned: %v", err)
	}
	if !earned["first-flex"] || len(earned) != 1 {
		t.Fatalf("earned=%v, want exactly first-flex", earned)
	}
}

func TestFlexLifecycle(t *testing.T) {
	users, projects, tasks, flexes, _ := newTestDB(t)
	ctx := context.Background()
	tid := seedProjectTask(t, users, projects, tasks)

	now := time.Now().UTC()
	id, err := flexes.Insert(ctx, FlexInsert{
		UserKey:      "main",
		TaskID:       tid,
		PointsEarned: 15,
		Message:      "Boom. Done. Next!",
		StreakBonus:  true,
		Multiplier:   1.5,
		CreatedAt:    now,
	})
	if err != nil {
		t.Fatalf("insert flex: %v", err)
	}

	f, err := flexes.GetByUserAndTask(ctx, "main", tid)
	if err != nil {
		t.Fatalf("get flex: %v", err)
	}
	if f == nil || f.ID != id || f.PointsEarned != 15 || !f.StreakBonus || f.Multiplier != 1.5 {
		t.Fatalf("flex round trip mismatch: %+v", f)
	}

	recent, err := flexes.ListRecentByUser(ctx, "main", 10)
	if err != nil {
		t.Fatalf("list recent: %v", err)
	}
	if len(recent) != 1 {
		t.Fatalf("recent=%d, want 1", len(recent))
	}

	if err := flexes.Delete(ctx, id); err != nil {
		t.Fatalf("delete flex: %v", err)
	}
	f, err = flexes.GetByUserAndTask(ctx, "main", tid)
	if err != nil {
		t.Fatalf("get after delete: %v", err)
	}
	if f != nil {
		t.Fatalf("flex should be gone, got %+v", f)
	}
}
