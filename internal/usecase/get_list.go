package usecase

import (
	"context"
	"fmt"

	"github.com/hmizuno/taskdeck/internal/domain"
)

// GetList is the use case for fetching a single list. The task count is
// recomputed live from the task store rather than read from the cached
// counter, so a drifted cache can never mislead a reader.
type GetList struct {
	lists domain.ListRepository
	tasks domain.TaskRepository
}

// NewGetList creates a new GetList use case.
func NewGetList(lists domain.ListRepository, tasks domain.TaskRepository) *GetList {
	return &GetList{lists: lists, tasks: tasks}
}

// Execute returns the list with a live task count, or nil if absent.
func (uc *GetList) Execute(_ context.Context, id string) (*domain.List, error) {
	if err := validateID("id", id); err != nil {
		return nil, err
	}
	list, err := uc.lists.Find(id, false)
	if err != nil {
		return nil, fmt.Errorf("get list %s: %w", id, err)
	}
	if list == nil {
		return nil, nil
	}

	n, err := uc.tasks.CountByList(id, true)
	if err != nil {
		return nil, fmt.Errorf("count tasks of list %s: %w", id, err)
	}
	list.TaskCount = n
	return list, nil
}
