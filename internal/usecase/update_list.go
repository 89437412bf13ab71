package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/hmizuno/taskdeck/internal/domain"
)

// UpdateListInput is a partial-field patch for a list.
type UpdateListInput struct {
	ID          string
	Name        *string
	Description *string
}

// UpdateListOutput contains the updated list, nil when the ID was not
// found.
type UpdateListOutput struct {
	List *domain.List
}

// UpdateList is the use case for patching a list.
type UpdateList struct {
	lists domain.ListRepository
}

// NewUpdateList creates a new UpdateList use case.
func NewUpdateList(lists domain.ListRepository) *UpdateList {
	return &UpdateList{lists: lists}
}

// Execute validates the patch and applies it. The store rejects a rename
// that collides with a different list; renaming to the list's own current
// name succeeds.
func (uc *UpdateList) Execute(_ context.Context, in UpdateListInput) (*UpdateListOutput, error) {
	if err := validateID("id", in.ID); err != nil {
		return nil, err
	}
	if in.Name != nil {
		if err := validateListName(*in.Name); err != nil {
			return nil, err
		}
	}
	if in.Description != nil {
		if err := validateListDescription(*in.Description); err != nil {
			return nil, err
		}
	}

	list, err := uc.lists.Update(in.ID, domain.ListPatch{Name: in.Name, Description: in.Description})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateListName) {
			return nil, err
		}
		return nil, fmt.Errorf("update list %s: %w", in.ID, err)
	}
	return &UpdateListOutput{List: list}, nil
}
