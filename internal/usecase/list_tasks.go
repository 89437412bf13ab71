package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/hmizuno/taskdeck/internal/domain"
)

// Range defaults used when the caller supplies only one bound: supplying
// either bound still activates the filter (and with it the exclusion of
// undated tasks for deadline ranges).
var (
	rangeEpoch     = time.Unix(0, 0).UTC()
	rangeFarFuture = time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC)
)

// ListTasksInput contains the filter, sort and pagination parameters for
// listing tasks. An empty ListID lists across all lists.
type ListTasksInput struct {
	ListID           string
	Completed        *bool
	IncludeCompleted *bool
	DeadlineFrom     *time.Time
	DeadlineTo       *time.Time
	CreatedFrom      *time.Time
	CreatedTo        *time.Time
	SortBy           domain.SortField
	SortOrder        domain.SortOrder
	Limit            int
	Offset           int
}

// ListTasksOutput contains the matching tasks.
type ListTasksOutput struct {
	Tasks []*domain.Task
}

// ListTasks is the use case for the general task listing queries.
type ListTasks struct {
	tasks domain.TaskRepository
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(tasks domain.TaskRepository) *ListTasks {
	return &ListTasks{tasks: tasks}
}

// Execute validates the query vocabulary, translates it into store
// options and delegates. General listing defaults to newest first.
func (uc *ListTasks) Execute(_ context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	q, err := translateQuery(in)
	if err != nil {
		return nil, err
	}
	if q.SortBy == "" {
		q.SortBy = domain.SortByCreatedAt
		if in.SortOrder == "" {
			q.SortOrder = domain.SortDesc
		}
	}

	tasks, err := uc.tasks.Query(q)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	return &ListTasksOutput{Tasks: tasks}, nil
}

// translateQuery maps external query parameters onto a store query,
// validating identifiers and the sort vocabulary on the way.
func translateQuery(in ListTasksInput) (domain.TaskQuery, error) {
	if in.ListID != "" {
		if err := validateID("listId", in.ListID); err != nil {
			return domain.TaskQuery{}, err
		}
	}
	if err := validateSort(in.SortBy, in.SortOrder); err != nil {
		return domain.TaskQuery{}, err
	}

	q := domain.TaskQuery{
		ListID:           in.ListID,
		Completed:        in.Completed,
		IncludeCompleted: in.IncludeCompleted,
		SortBy:           in.SortBy,
		SortOrder:        in.SortOrder,
		Limit:            in.Limit,
		Offset:           in.Offset,
	}
	q.Deadline = buildRange(in.DeadlineFrom, in.DeadlineTo)
	q.Created = buildRange(in.CreatedFrom, in.CreatedTo)
	return q, nil
}

// buildRange folds an optional from/to pair into a single inclusive
// range. One present bound is enough to activate filtering; the missing
// side defaults to epoch or far future.
func buildRange(from, to *time.Time) *domain.TimeRange {
	if from == nil && to == nil {
		return nil
	}
	r := domain.TimeRange{Start: rangeEpoch, End: rangeFarFuture}
	if from != nil {
		r.Start = *from
	}
	if to != nil {
		r.End = *to
	}
	return &r
}
