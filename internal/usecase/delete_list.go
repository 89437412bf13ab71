package usecase

import (
	"context"
	"fmt"

	"github.com/hmizuno/taskdeck/internal/domain"
)

// DeleteListOutput reports the cascade result.
type DeleteListOutput struct {
	Deleted      bool
	DeletedTasks int
}

// DeleteList is the use case for cascade-deleting a list: every task
// belonging to the list is removed first, then the list record itself.
//
// The two phases are not atomic; an interruption between them can leave
// the list behind with its tasks already gone. Acceptable for the
// in-memory model, but a durable backend must wrap the cascade in a
// transaction.
type DeleteList struct {
	lists domain.ListRepository
	tasks domain.TaskRepository
}

// NewDeleteList creates a new DeleteList use case.
func NewDeleteList(lists domain.ListRepository, tasks domain.TaskRepository) *DeleteList {
	return &DeleteList{lists: lists, tasks: tasks}
}

// Execute removes the list's tasks, syncs the cached count to zero and
// deletes the list. A missing ID yields Deleted=false, not an error.
func (uc *DeleteList) Execute(_ context.Context, id string) (*DeleteListOutput, error) {
	if err := validateID("id", id); err != nil {
		return nil, err
	}

	exists, err := uc.lists.Exists(id)
	if err != nil {
		return nil, fmt.Errorf("check list %s: %w", id, err)
	}
	if !exists {
		return &DeleteListOutput{}, nil
	}

	removed, err := uc.tasks.DeleteByList(id)
	if err != nil {
		return nil, fmt.Errorf("delete tasks of list %s: %w", id, err)
	}

	// The cached counter is advisory only, but the list store's own
	// delete still checks it; sync it so deletion cannot be blocked by a
	// stale value.
	if err := uc.lists.SetTaskCount(id, 0); err != nil {
		return nil, fmt.Errorf("reset task count of list %s: %w", id, err)
	}

	ok, err := uc.lists.Delete(id)
	if err != nil {
		return nil, fmt.Errorf("delete list %s: %w", id, err)
	}
	return &DeleteListOutput{Deleted: ok, DeletedTasks: removed}, nil
}
