package domain

import "time"

// TaskRepository manages task persistence.
//
// Absence is a normal outcome throughout: Get and Update return (nil, nil)
// for unknown IDs, Delete returns (false, nil). Only genuine storage
// failures surface as errors, keeping the interface compatible with a
// future durable backend.
type TaskRepository interface {
	// Create stores a new task, assigning ID, CreatedAt and UpdatedAt.
	// Completed defaults to false; an explicit Completed=true draft is
	// stored as given, without inventing a CompletedAt.
	Create(draft TaskDraft) (*Task, error)

	// Get retrieves a task by ID. Returns nil if not found.
	Get(id string) (*Task, error)

	// Query returns tasks matching q, sorted and paginated.
	Query(q TaskQuery) ([]*Task, error)

	// Update merges patch into the task, refreshing UpdatedAt and
	// applying completion timestamp side effects. Returns nil if the
	// task does not exist.
	Update(id string, patch TaskPatch) (*Task, error)

	// Toggle flips the completion state. Returns nil if not found.
	Toggle(id string) (*Task, error)

	// MarkCompleted sets Completed=true. Returns nil if not found.
	MarkCompleted(id string) (*Task, error)

	// MarkIncomplete sets Completed=false. Returns nil if not found.
	MarkIncomplete(id string) (*Task, error)

	// Delete removes a task, reporting whether it existed.
	Delete(id string) (bool, error)

	// DeleteByList removes every task of a list, returning the count.
	DeleteByList(listID string) (int, error)

	// Count returns the total number of tasks.
	Count() (int, error)

	// CountByList counts a list's tasks, optionally excluding completed.
	CountByList(listID string, includeCompleted bool) (int, error)

	// CountCompleted counts a list's completed tasks.
	CountCompleted(listID string) (int, error)

	// CountPending counts a list's incomplete tasks.
	CountPending(listID string) (int, error)

	// DueThisWeek runs q restricted to the current Monday-Sunday week
	// window; any Deadline range already in q is replaced.
	DueThisWeek(q TaskQuery) ([]*Task, error)

	// Overdue runs q restricted to incomplete tasks with a deadline
	// strictly in the past.
	Overdue(q TaskQuery) ([]*Task, error)

	// CountOverdue counts incomplete tasks whose deadline has passed.
	CountOverdue() (int, error)

	// CountDueThisWeek counts tasks due in the current Monday-Sunday week.
	CountDueThisWeek() (int, error)

	// BulkUpdate applies each patch independently, skipping unknown IDs,
	// and returns the successfully updated tasks.
	BulkUpdate(items []BulkTaskUpdate) ([]*Task, error)

	// BulkDelete removes the given IDs, returning the count removed.
	BulkDelete(ids []string) (int, error)
}

// ListRepository manages list persistence.
type ListRepository interface {
	// Create stores a new list with TaskCount=0. Returns
	// ErrDuplicateListName if the name is already taken.
	Create(draft ListDraft) (*List, error)

	// FindAll returns every list. When includeTaskCount is false the
	// cached count is omitted from results (left at zero).
	FindAll(includeTaskCount bool) ([]*List, error)

	// Find retrieves a list by ID. Returns nil if not found.
	Find(id string, includeTaskCount bool) (*List, error)

	// FindByName retrieves a list by exact name. Returns nil if not found.
	FindByName(name string, includeTaskCount bool) (*List, error)

	// Update merges patch into the list. Returns nil if not found and
	// ErrDuplicateListName if a rename collides with another list.
	Update(id string, patch ListPatch) (*List, error)

	// Delete removes a list, reporting whether it existed. Returns
	// ErrListNotEmpty while the cached task count is above zero.
	Delete(id string) (bool, error)

	// Exists reports whether a list with the given ID exists.
	Exists(id string) (bool, error)

	// NameExists reports whether a list other than excludeID holds the
	// name. An empty excludeID checks all lists.
	NameExists(name, excludeID string) (bool, error)

	// TaskCount reads the cached per-list task count.
	TaskCount(id string) (int, error)

	// SetTaskCount writes the cached count, clamping negatives to zero.
	SetTaskCount(id string, n int) error

	// Count returns the total number of lists.
	Count() (int, error)
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
