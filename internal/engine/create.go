package engine

import (
	"context"
	"fmt"

	"github.com/impruthvi/flexboard-bytes-sub000/internal/storage"
)

// DefaultTaskPoints is the point value applied when none is given.
const DefaultTaskPoints = 10

func (s *Service) CreateProject(ctx context.Context, userKey, name string) (*storage.Project, error) {
	name, err := normalizeTitle(name)
	if err != nil {
		return nil, err
	}
	if _, err := s.users.GetOrCreate(ctx, userKey); err != nil {
		return nil, err
	}
	id, err := s.projects.Insert(ctx, userKey, name)
	if err != nil {
		return nil, err
	}
	return s.projects.Get(ctx, id)
}

type CreateTaskInput struct {
	ProjectID int64
	Title     string
	Points    int // zero means DefaultTaskPoints
}

func (s *Service) CreateTask(ctx context.Context, userKey string, in CreateTaskInput) (*storage.Task, error) {
	title, err := normalizeTitle(in.Title)
	if err != nil {
		return nil, err
	}

	points := in.Points
	if points == 0 {
		points = DefaultTaskPoints
	}
	if points < 0 {
		return nil, fmt.Errorf("points must be positive, got %d", points)
	}

	project, err := s.projects.Get(ctx, in.ProjectID)
	if err != nil {
		return nil, err
	}
	if project == nil || project.UserKey != userKey {
		return nil, ProjectNotFoundError{ProjectID: in.ProjectID}
	}

	id, err := s.tasks.Insert(ctx, storage.TaskInsert{
		ProjectID: in.ProjectID,
		Title:     title,
		Points:    points,
	})
	if err != nil {
		return nil, err
	}
	return s.tasks.Get(ctx, id)
}

// DeleteTask soft-deletes; the row survives for Restore. Gamification state
// is untouched: points already earned through the task stay earned.
func (s *Service) DeleteTask(ctx context.Context, userKey string, taskID int64) error {
	if _, err := taskOwnedBy(ctx, s.tasks, s.projects, userKey, taskID); err != nil {
		return err
	}
	ok, err := s.tasks.SoftDelete(ctx, taskID, s.now())
	if err != nil {
		return err
	}
	if !ok {
		return TaskNotFoundError{TaskID: taskID}
	}
	return nil
}

// RestoreTask clears the soft-delete stamp.
func (s *Service) RestoreTask(ctx context.Context, taskID int64) error {
	ok, err := s.tasks.Restore(ctx, taskID)
	if err != nil {
		return err
	}
	if !ok {
		return TaskNotFoundError{TaskID: taskID}
	}
	return nil
}
