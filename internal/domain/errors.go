package domain

import "errors"

// Domain errors. Absence of a record is never one of these: lookups,
// updates and deletes report "not found" as nil/false return values and
// leave it to the caller to decide whether that matters.
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrListNotFound      = errors.New("list not found")
	ErrDuplicateListName = errors.New("list name already exists")
	ErrListNotEmpty      = errors.New("list is not empty")
)
