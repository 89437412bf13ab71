package usecase

import (
	"context"
	"fmt"
	"slices"

	"github.com/hmizuno/taskdeck/internal/domain"
)

// ListListsOutput contains every list, each with a live task count.
type ListListsOutput struct {
	Lists []*domain.List
}

// ListLists is the use case for listing all lists.
type ListLists struct {
	lists domain.ListRepository
	tasks domain.TaskRepository
}

// NewListLists creates a new ListLists use case.
func NewListLists(lists domain.ListRepository, tasks domain.TaskRepository) *ListLists {
	return &ListLists{lists: lists, tasks: tasks}
}

// Execute returns all lists ordered by name, with task counts recomputed
// from the task store.
func (uc *ListLists) Execute(_ context.Context) (*ListListsOutput, error) {
	lists, err := uc.lists.FindAll(false)
	if err != nil {
		return nil, fmt.Errorf("list lists: %w", err)
	}

	for _, l := range lists {
		n, err := uc.tasks.CountByList(l.ID, true)
		if err != nil {
			return nil, fmt.Errorf("count tasks of list %s: %w", l.ID, err)
		}
		l.TaskCount = n
	}

	slices.SortFunc(lists, func(a, b *domain.List) int {
		switch {
		case a.Name < b.Name:
			return -1
		case a.Name > b.Name:
			return 1
		default:
			return 0
		}
	})

	return &ListListsOutput{Lists: lists}, nil
}
