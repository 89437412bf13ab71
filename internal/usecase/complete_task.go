package usecase

import (
	"context"
	"fmt"

	"github.com/hmizuno/taskdeck/internal/domain"
)

// ToggleTask is the use case for flipping a task's completion state.
type ToggleTask struct {
	tasks domain.TaskRepository
}

// NewToggleTask creates a new ToggleTask use case.
func NewToggleTask(tasks domain.TaskRepository) *ToggleTask {
	return &ToggleTask{tasks: tasks}
}

// Execute toggles completion. Returns nil if the task does not exist.
func (uc *ToggleTask) Execute(_ context.Context, id string) (*domain.Task, error) {
	if err := validateID("id", id); err != nil {
		return nil, err
	}
	task, err := uc.tasks.Toggle(id)
	if err != nil {
		return nil, fmt.Errorf("toggle task %s: %w", id, err)
	}
	return task, nil
}

// CompleteTask is the use case for marking a task completed.
type CompleteTask struct {
	tasks domain.TaskRepository
}

// NewCompleteTask creates a new CompleteTask use case.
func NewCompleteTask(tasks domain.TaskRepository) *CompleteTask {
	return &CompleteTask{tasks: tasks}
}

// Execute marks the task completed. Returns nil if it does not exist.
func (uc *CompleteTask) Execute(_ context.Context, id string) (*domain.Task, error) {
	if err := validateID("id", id); err != nil {
		return nil, err
	}
	task, err := uc.tasks.MarkCompleted(id)
	if err != nil {
		return nil, fmt.Errorf("complete task %s: %w", id, err)
	}
	return task, nil
}

// ReopenTask is the use case for marking a task incomplete again.
type ReopenTask struct {
	tasks domain.TaskRepository
}

// NewReopenTask creates a new ReopenTask use case.
func NewReopenTask(tasks domain.TaskRepository) *ReopenTask {
	return &ReopenTask{tasks: tasks}
}

// Execute marks the task incomplete. Returns nil if it does not exist.
func (uc *ReopenTask) Execute(_ context.Context, id string) (*domain.Task, error) {
	if err := validateID("id", id); err != nil {
		return nil, err
	}
	task, err := uc.tasks.MarkIncomplete(id)
	if err != nil {
		return nil, fmt.Errorf("reopen task %s: %w", id, err)
	}
	return task, nil
}
