package domain

import "time"

// List is a named container for tasks. Names are unique across all lists
// (case-sensitive exact match).
type List struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	TaskCount   int       `json:"taskCount"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Clone returns a copy of the list.
func (l *List) Clone() *List {
	if l == nil {
		return nil
	}
	c := *l
	return &c
}

// ListDraft carries the caller-supplied fields for list creation.
type ListDraft struct {
	Name        string
	Description string
}

// ListPatch describes a partial update to a list. Nil fields are left
// untouched.
type ListPatch struct {
	Name        *string
	Description *string
}

// IsZero reports whether the patch carries no changes.
func (p ListPatch) IsZero() bool {
	return p.Name == nil && p.Description == nil
}
