package api

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/hmizuno/taskdeck/internal/domain"
	"github.com/hmizuno/taskdeck/internal/usecase"
)

type createListIn struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type patchListIn struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type createTaskIn struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Deadline    *time.Time `json:"deadline"`
}

type patchTaskIn struct {
	Title         *string    `json:"title"`
	Description   *string    `json:"description"`
	Deadline      *time.Time `json:"deadline"`
	ClearDeadline bool       `json:"clearDeadline"`
	Completed     *bool      `json:"completed"`
}

func parseTimeParam(q url.Values, key string) (*time.Time, error) {
	v := q.Get(key)
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return nil, fmt.Errorf("%s must be RFC 3339", key)
	}
	return &t, nil
}

func parseBoolParam(q url.Values, key string) (*bool, error) {
	v := q.Get(key)
	if v == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil, fmt.Errorf("%s must be a boolean", key)
	}
	return &b, nil
}

func parseIntParam(q url.Values, key string) (int, error) {
	v := q.Get(key)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%s must be a non-negative integer", key)
	}
	return n, nil
}

// parseTaskQuery translates the shared task query string vocabulary.
func parseTaskQuery(q url.Values) (usecase.ListTasksInput, error) {
	var in usecase.ListTasksInput
	var err error

	in.ListID = q.Get("listId")
	if in.Completed, err = parseBoolParam(q, "completed"); err != nil {
		return in, err
	}
	if in.IncludeCompleted, err = parseBoolParam(q, "includeCompleted"); err != nil {
		return in, err
	}
	if in.DeadlineFrom, err = parseTimeParam(q, "deadlineFrom"); err != nil {
		return in, err
	}
	if in.DeadlineTo, err = parseTimeParam(q, "deadlineTo"); err != nil {
		return in, err
	}
	if in.CreatedFrom, err = parseTimeParam(q, "createdFrom"); err != nil {
		return in, err
	}
	if in.CreatedTo, err = parseTimeParam(q, "createdTo"); err != nil {
		return in, err
	}
	in.SortBy = domain.SortField(q.Get("sortBy"))
	in.SortOrder = domain.SortOrder(q.Get("sortOrder"))
	if in.Limit, err = parseIntParam(q, "limit"); err != nil {
		return in, err
	}
	if in.Offset, err = parseIntParam(q, "offset"); err != nil {
		return in, err
	}
	return in, nil
}

// parseDueQuery covers the narrower vocabulary of the due/overdue views.
func parseDueQuery(q url.Values) (usecase.DueTasksInput, error) {
	var in usecase.DueTasksInput
	var err error

	in.ListID = q.Get("listId")
	if in.IncludeCompleted, err = parseBoolParam(q, "includeCompleted"); err != nil {
		return in, err
	}
	if in.Limit, err = parseIntParam(q, "limit"); err != nil {
		return in, err
	}
	if in.Offset, err = parseIntParam(q, "offset"); err != nil {
		return in, err
	}
	return in, nil
}
