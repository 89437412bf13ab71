package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/hmizuno/taskdeck/internal/domain"
)

// DueTasksInput carries the generic filters accepted by the date-driven
// queries, layered on top of the window each query computes itself.
type DueTasksInput struct {
	ListID           string
	IncludeCompleted *bool
	Limit            int
	Offset           int
}

// DueThisWeek is the use case for "due this week" queries. The week
// window itself is computed inside the task store, which delegates to the
// date-range calculator.
type DueThisWeek struct {
	tasks domain.TaskRepository
}

// NewDueThisWeek creates a new DueThisWeek use case.
func NewDueThisWeek(tasks domain.TaskRepository) *DueThisWeek {
	return &DueThisWeek{tasks: tasks}
}

// Execute returns the tasks due in the current Monday-Sunday window,
// earliest deadline first.
func (uc *DueThisWeek) Execute(_ context.Context, in DueTasksInput) (*ListTasksOutput, error) {
	q, err := dueQuery(in)
	if err != nil {
		return nil, err
	}
	tasks, err := uc.tasks.DueThisWeek(q)
	if err != nil {
		return nil, fmt.Errorf("query due this week: %w", err)
	}
	return &ListTasksOutput{Tasks: tasks}, nil
}

// Overdue is the use case for overdue queries (deadline strictly past,
// not completed).
type Overdue struct {
	tasks domain.TaskRepository
}

// NewOverdue creates a new Overdue use case.
func NewOverdue(tasks domain.TaskRepository) *Overdue {
	return &Overdue{tasks: tasks}
}

// Execute returns overdue tasks, earliest deadline first.
func (uc *Overdue) Execute(_ context.Context, in DueTasksInput) (*ListTasksOutput, error) {
	q, err := dueQuery(in)
	if err != nil {
		return nil, err
	}
	tasks, err := uc.tasks.Overdue(q)
	if err != nil {
		return nil, fmt.Errorf("query overdue: %w", err)
	}
	return &ListTasksOutput{Tasks: tasks}, nil
}

// dueQuery builds the shared store query for the date-driven use cases:
// deadline-ascending sort so the most urgent tasks come first.
func dueQuery(in DueTasksInput) (domain.TaskQuery, error) {
	if in.ListID != "" {
		if err := validateID("listId", in.ListID); err != nil {
			return domain.TaskQuery{}, err
		}
	}
	return domain.TaskQuery{
		ListID:           in.ListID,
		IncludeCompleted: in.IncludeCompleted,
		SortBy:           domain.SortByDeadline,
		SortOrder:        domain.SortAsc,
		Limit:            in.Limit,
		Offset:           in.Offset,
	}, nil
}

// TasksByRangeInput contains an explicit deadline window plus the generic
// filters.
type TasksByRangeInput struct {
	Start time.Time
	End   time.Time
	DueTasksInput
}

// TasksByRange is the use case for querying tasks by an arbitrary
// deadline range.
type TasksByRange struct {
	tasks domain.TaskRepository
}

// NewTasksByRange creates a new TasksByRange use case.
func NewTasksByRange(tasks domain.TaskRepository) *TasksByRange {
	return &TasksByRange{tasks: tasks}
}

// Execute validates that start does not come after end, then queries.
func (uc *TasksByRange) Execute(_ context.Context, in TasksByRangeInput) (*ListTasksOutput, error) {
	if in.Start.IsZero() || in.End.IsZero() {
		return nil, fmt.Errorf("%w: start and end are required", domain.ErrInvalidInput)
	}
	if in.Start.After(in.End) {
		return nil, fmt.Errorf("%w: start must not be after end", domain.ErrInvalidInput)
	}
	q, err := dueQuery(in.DueTasksInput)
	if err != nil {
		return nil, err
	}
	q.Deadline = &domain.TimeRange{Start: in.Start, End: in.End}

	tasks, err := uc.tasks.Query(q)
	if err != nil {
		return nil, fmt.Errorf("query tasks by range: %w", err)
	}
	return &ListTasksOutput{Tasks: tasks}, nil
}
