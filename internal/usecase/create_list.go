package usecase

import (
	"context"

	"github.com/hmizuno/taskdeck/internal/domain"
)

// CreateListInput contains the parameters for creating a list.
type CreateListInput struct {
	Name        string
	Description string
}

// CreateListOutput contains the created list.
type CreateListOutput struct {
	List *domain.List
}

// CreateList is the use case for creating a list.
type CreateList struct {
	lists domain.ListRepository
}

// NewCreateList creates a new CreateList use case.
func NewCreateList(lists domain.ListRepository) *CreateList {
	return &CreateList{lists: lists}
}

// Execute validates the input and stores the list. A duplicate name
// surfaces as domain.ErrDuplicateListName, propagated unchanged.
func (uc *CreateList) Execute(_ context.Context, in CreateListInput) (*CreateListOutput, error) {
	if err := validateListName(in.Name); err != nil {
		return nil, err
	}
	if err := validateListDescription(in.Description); err != nil {
		return nil, err
	}

	list, err := uc.lists.Create(domain.ListDraft{Name: in.Name, Description: in.Description})
	if err != nil {
		return nil, err
	}
	return &CreateListOutput{List: list}, nil
}
