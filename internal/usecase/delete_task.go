package usecase

import (
	"context"
	"fmt"

	"github.com/hmizuno/taskdeck/internal/domain"
)

// DeleteTask is the use case for deleting a single task.
type DeleteTask struct {
	tasks domain.TaskRepository
}

// NewDeleteTask creates a new DeleteTask use case.
func NewDeleteTask(tasks domain.TaskRepository) *DeleteTask {
	return &DeleteTask{tasks: tasks}
}

// Execute removes the task, reporting whether it existed. A missing ID is
// not an error.
func (uc *DeleteTask) Execute(_ context.Context, id string) (bool, error) {
	if err := validateID("id", id); err != nil {
		return false, err
	}
	ok, err := uc.tasks.Delete(id)
	if err != nil {
		return false, fmt.Errorf("delete task %s: %w", id, err)
	}
	return ok, nil
}
