// Package domain contains core business entities and interfaces.
package domain

import "time"

// Field length limits enforced by the validating layer.
const (
	MaxTitleLen           = 200
	MaxTaskDescriptionLen = 1000
	MaxListNameLen        = 100
	MaxListDescriptionLen = 500
)

// Task represents a titled unit of work belonging to exactly one list.
type Task struct {
	ID          string     `json:"id"`
	ListID      string     `json:"listId"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// Clone returns a deep copy of the task. Stores hand out clones so that
// callers can never mutate internal state through a returned record.
func (t *Task) Clone() *Task {
	if t == nil {
		return nil
	}
	c := *t
	if t.Deadline != nil {
		d := *t.Deadline
		c.Deadline = &d
	}
	if t.CompletedAt != nil {
		ca := *t.CompletedAt
		c.CompletedAt = &ca
	}
	return &c
}

// IsOverdue reports whether the task has a deadline strictly in the past
// and is not completed.
func (t *Task) IsOverdue(now time.Time) bool {
	return t.Deadline != nil && t.Deadline.Before(now) && !t.Completed
}

// TaskDraft carries the caller-supplied fields for task creation.
// ID, CreatedAt and UpdatedAt are assigned by the store.
type TaskDraft struct {
	ListID      string
	Title       string
	Description string
	Deadline    *time.Time
	Completed   bool
	CompletedAt *time.Time
}

// TaskPatch describes a partial update. Nil pointer fields are left
// untouched. ClearDeadline removes an existing deadline; it wins over
// Deadline when both are set.
type TaskPatch struct {
	Title         *string
	Description   *string
	Deadline      *time.Time
	ClearDeadline bool
	Completed     *bool
}

// IsZero reports whether the patch carries no changes.
func (p TaskPatch) IsZero() bool {
	return p.Title == nil && p.Description == nil && p.Deadline == nil &&
		!p.ClearDeadline && p.Completed == nil
}

// BulkTaskUpdate pairs a task ID with the patch to apply to it.
type BulkTaskUpdate struct {
	ID    string
	Patch TaskPatch
}
