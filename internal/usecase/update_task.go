package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/hmizuno/taskdeck/internal/domain"
)

// UpdateTaskInput is a partial-field patch for a task. Nil fields are left
// untouched, so an omitted field can never be confused with "set to
// empty". ClearDeadline removes the deadline.
type UpdateTaskInput struct {
	ID            string
	Title         *string
	Description   *string
	Deadline      *time.Time
	ClearDeadline bool
	Completed     *bool
}

// UpdateTaskOutput contains the updated task, nil when the ID was not
// found.
type UpdateTaskOutput struct {
	Task *domain.Task
}

// UpdateTask is the use case for patching a task.
type UpdateTask struct {
	tasks domain.TaskRepository
	clock domain.Clock
}

// NewUpdateTask creates a new UpdateTask use case.
func NewUpdateTask(tasks domain.TaskRepository, clock domain.Clock) *UpdateTask {
	return &UpdateTask{tasks: tasks, clock: clock}
}

// Execute validates the patch and applies it. Completion-transition side
// effects (CompletedAt assignment and clearing) happen in the store, not
// here. A missing ID yields a nil Task, not an error.
func (uc *UpdateTask) Execute(_ context.Context, in UpdateTaskInput) (*UpdateTaskOutput, error) {
	if err := validateID("id", in.ID); err != nil {
		return nil, err
	}
	if in.Title != nil {
		if err := validateTitle(*in.Title); err != nil {
			return nil, err
		}
	}
	if in.Description != nil {
		if err := validateTaskDescription(*in.Description); err != nil {
			return nil, err
		}
	}
	if in.Deadline != nil && !in.ClearDeadline {
		if err := validateDeadline(*in.Deadline, uc.clock.Now()); err != nil {
			return nil, err
		}
	}

	task, err := uc.tasks.Update(in.ID, domain.TaskPatch{
		Title:         in.Title,
		Description:   in.Description,
		Deadline:      in.Deadline,
		ClearDeadline: in.ClearDeadline,
		Completed:     in.Completed,
	})
	if err != nil {
		return nil, fmt.Errorf("update task %s: %w", in.ID, err)
	}
	return &UpdateTaskOutput{Task: task}, nil
}
