package usecase

import (
	"context"
	"fmt"

	"github.com/hmizuno/taskdeck/internal/domain"
)

// GetTask is the use case for fetching a single task.
type GetTask struct {
	tasks domain.TaskRepository
}

// NewGetTask creates a new GetTask use case.
func NewGetTask(tasks domain.TaskRepository) *GetTask {
	return &GetTask{tasks: tasks}
}

// Execute returns the task, or nil if no task has the given ID.
func (uc *GetTask) Execute(_ context.Context, id string) (*domain.Task, error) {
	if err := validateID("id", id); err != nil {
		return nil, err
	}
	task, err := uc.tasks.Get(id)
	if err != nil {
		return nil, fmt.Errorf("get task %s: %w", id, err)
	}
	return task, nil
}
