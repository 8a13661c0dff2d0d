package engine

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/impruthvi/flexboard-bytes-sub000/internal/storage"
)

type Service struct {
	db       *sql.DB
	users    *storage.UserRepo
	projects *storage.ProjectRepo
	tasks    *storage.TaskRepo
	flexes   *storage.FlexRepo
	badges   *storage.BadgeRepo

	// now is the clock used for completion timestamps and streak dates.
	// Overridable so tests can pin "today".
	now func() time.Time
}

func NewService(db *sql.DB) *Service {
	return &Service{
		db:       db,
		users:    storage.NewUserRepo(db),
		projects: storage.NewProjectRepo(db),
		tasks:    storage.NewTaskRepo(db),
		flexes:   storage.NewFlexRepo(db),
		badges:   storage.NewBadgeRepo(db),
		now:      time.Now,
	}
}

// WithClock replaces the service clock. Returns the service for chaining.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) UserRepo() *storage.UserRepo       { return s.users }
func (s *Service) ProjectRepo() *storage.ProjectRepo { return s.projects }
func (s *Service) TaskRepo() *storage.TaskRepo       { return s.tasks }
func (s *Service) FlexRepo() *storage.FlexRepo       { return s.flexes }
func (s *Service) BadgeRepo() *storage.BadgeRepo     { return s.badges }

func normalizeTitle(title string) (string, error) {
	t := strings.TrimSpace(title)
	if t == "" {
		return "", errors.New("title is required")
	}
	return t, nil
}

// taskOwnedBy loads a live task and verifies it belongs to the user through
// its project. Tasks outside the user's projects read as not found.
func taskOwnedBy(ctx context.Context, tasks *storage.TaskRepo, projects *storage.ProjectRepo, userKey string, taskID int64) (*storage.Task, error) {
	task, err := tasks.Get(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, TaskNotFoundError{TaskID: taskID}
	}
	project, err := projects.Get(ctx, task.ProjectID)
	if err != nil {
		return nil, err
	}
	if project == nil || project.UserKey != userKey {
		return nil, TaskNotFoundError{TaskID: taskID}
	}
	return task, nil
}
