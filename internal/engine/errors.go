package engine

import "fmt"

// TaskNotFoundError covers both truly missing tasks and tasks that are
// soft-deleted or owned by a different user; callers get the same answer
// either way.
type TaskNotFoundError struct {
	TaskID int64
}

func (e TaskNotFoundError) Error() string {
	return fmt.Sprintf("task %d not found", e.TaskID)
}

// AlreadyCompletedError is returned when the completed-flag transition
// affects zero rows, i.e. the task was already completed (or completed
// concurrently).
type AlreadyCompletedError struct {
	TaskID int64
}

func (e AlreadyCompletedError) Error() string {
	return fmt.Sprintf("task %d is already completed", e.TaskID)
}

// NotCompletedError is the inverse: uncompleting a task that is pending.
type NotCompletedError struct {
	TaskID int64
}

func (e NotCompletedError) Error() string {
	return fmt.Sprintf("task %d is not completed", e.TaskID)
}

// ProjectNotFoundError is returned when a task references a project the
// user does not own, or one that does not exist.
type ProjectNotFoundError struct {
	ProjectID int64
}

func (e ProjectNotFoundError) Error() string {
	return fmt.Sprintf("project %d not found", e.ProjectID)
}
