package usecase

import (
	"context"
	"fmt"

	"github.com/hmizuno/taskdeck/internal/domain"
)

// ListStats is the per-list slice of the stats report.
type ListStats struct {
	ListID    string `json:"listId"`
	Name      string `json:"name"`
	Completed int    `json:"completed"`
	Pending   int    `json:"pending"`
}

// StatsOutput aggregates the store count helpers into one report.
type StatsOutput struct {
	Lists       int         `json:"lists"`
	Tasks       int         `json:"tasks"`
	Overdue     int         `json:"overdue"`
	DueThisWeek int         `json:"dueThisWeek"`
	PerList     []ListStats `json:"perList"`
}

// Stats is the use case for the aggregate counts report.
type Stats struct {
	lists domain.ListRepository
	tasks domain.TaskRepository
}

// NewStats creates a new Stats use case.
func NewStats(lists domain.ListRepository, tasks domain.TaskRepository) *Stats {
	return &Stats{lists: lists, tasks: tasks}
}

// Execute gathers totals plus a completed/pending breakdown per list.
func (uc *Stats) Execute(ctx context.Context) (*StatsOutput, error) {
	out := &StatsOutput{}

	var err error
	if out.Lists, err = uc.lists.Count(); err != nil {
		return nil, fmt.Errorf("count lists: %w", err)
	}
	if out.Tasks, err = uc.tasks.Count(); err != nil {
		return nil, fmt.Errorf("count tasks: %w", err)
	}
	if out.Overdue, err = uc.tasks.CountOverdue(); err != nil {
		return nil, fmt.Errorf("count overdue: %w", err)
	}
	if out.DueThisWeek, err = uc.tasks.CountDueThisWeek(); err != nil {
		return nil, fmt.Errorf("count due this week: %w", err)
	}

	lister := NewListLists(uc.lists, uc.tasks)
	listsOut, err := lister.Execute(ctx)
	if err != nil {
		return nil, err
	}
	for _, l := range listsOut.Lists {
		completed, err := uc.tasks.CountCompleted(l.ID)
		if err != nil {
			return nil, fmt.Errorf("count completed of list %s: %w", l.ID, err)
		}
		pending, err := uc.tasks.CountPending(l.ID)
		if err != nil {
			return nil, fmt.Errorf("count pending of list %s: %w", l.ID, err)
		}
		out.PerList = append(out.PerList, ListStats{
			ListID:    l.ID,
			Name:      l.Name,
			Completed: completed,
			Pending:   pending,
		})
	}

	return out, nil
}
