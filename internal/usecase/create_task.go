package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/hmizuno/taskdeck/internal/domain"
)

// CreateTaskInput contains the parameters for creating a task.
type CreateTaskInput struct {
	ListID      string
	Title       string
	Description string
	Deadline    *time.Time // must be strictly in the future when set
}

// CreateTaskOutput contains the created task.
type CreateTaskOutput struct {
	Task *domain.Task
}

// CreateTask is the use case for creating a task under an existing list.
type CreateTask struct {
	tasks domain.TaskRepository
	lists domain.ListRepository
	clock domain.Clock
}

// NewCreateTask creates a new CreateTask use case.
func NewCreateTask(tasks domain.TaskRepository, lists domain.ListRepository, clock domain.Clock) *CreateTask {
	return &CreateTask{tasks: tasks, lists: lists, clock: clock}
}

// Execute validates the input, verifies the referenced list exists and
// stores the task. New tasks always start incomplete.
func (uc *CreateTask) Execute(_ context.Context, in CreateTaskInput) (*CreateTaskOutput, error) {
	if err := validateID("listId", in.ListID); err != nil {
		return nil, err
	}
	if err := validateTitle(in.Title); err != nil {
		return nil, err
	}
	if err := validateTaskDescription(in.Description); err != nil {
		return nil, err
	}
	if in.Deadline != nil {
		if err := validateDeadline(*in.Deadline, uc.clock.Now()); err != nil {
			return nil, err
		}
	}

	exists, err := uc.lists.Exists(in.ListID)
	if err != nil {
		return nil, fmt.Errorf("check list %s: %w", in.ListID, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", domain.ErrListNotFound, in.ListID)
	}

	task, err := uc.tasks.Create(domain.TaskDraft{
		ListID:      in.ListID,
		Title:       in.Title,
		Description: in.Description,
		Deadline:    in.Deadline,
	})
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	return &CreateTaskOutput{Task: task}, nil
}
