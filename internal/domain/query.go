package domain

import "time"

// SortField enumerates the task attributes a query may sort on.
type SortField string

// Supported sort fields.
const (
	SortByTitle     SortField = "title"
	SortByCreatedAt SortField = "createdAt"
	SortByUpdatedAt SortField = "updatedAt"
	SortByDeadline  SortField = "deadline"
	SortByCompleted SortField = "completed"
)

// ValidSortField reports whether s names a supported sort field.
func ValidSortField(s SortField) bool {
	switch s {
	case SortByTitle, SortByCreatedAt, SortByUpdatedAt, SortByDeadline, SortByCompleted:
		return true
	}
	return false
}

// SortOrder is the direction of a sort.
type SortOrder string

// Sort directions. The empty value means ascending.
const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ValidSortOrder reports whether s is a supported sort order.
func ValidSortOrder(s SortOrder) bool {
	return s == SortAsc || s == SortDesc || s == ""
}

// TimeRange is an inclusive time interval.
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls within the range, bounds included.
func (r TimeRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// TaskQuery combines filtering, sorting and pagination over the task
// collection. Filters are conjunctive; nil pointer fields are inactive.
//
// A task without a deadline never matches an active Deadline range, so a
// "due this week" query cannot return undated tasks.
type TaskQuery struct {
	ListID           string     // exact match when non-empty
	Completed        *bool      // exact match on completion state
	IncludeCompleted *bool      // false excludes completed tasks even without a Completed filter
	Deadline         *TimeRange // inclusive; excludes tasks with no deadline
	Created          *TimeRange // inclusive filter on CreatedAt
	SortBy           SortField
	SortOrder        SortOrder
	Limit            int // <= 0 means unbounded
	Offset           int // applied after filtering and sorting
}
