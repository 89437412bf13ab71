package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hmizuno/taskdeck/internal/domain"
)

func TestListTasks_Execute_DefaultSort(t *testing.T) {
	tasks, lists, clock := newStores()
	list := mustCreateList(t, lists, "Groceries")
	create := NewCreateTask(tasks, lists, clock)

	first, err := create.Execute(context.Background(), CreateTaskInput{ListID: list.ID, Title: "first"})
	require.NoError(t, err)
	clock.Advance(time.Minute)
	second, err := create.Execute(context.Background(), CreateTaskInput{ListID: list.ID, Title: "second"})
	require.NoError(t, err)

	uc := NewListTasks(tasks)
	out, err := uc.Execute(context.Background(), ListTasksInput{})

	// General listing defaults to newest first.
	require.NoError(t, err)
	require.Len(t, out.Tasks, 2)
	assert.Equal(t, second.Task.ID, out.Tasks[0].ID)
	assert.Equal(t, first.Task.ID, out.Tasks[1].ID)
}

func TestListTasks_Execute_SingleDeadlineBoundActivatesRange(t *testing.T) {
	tasks, lists, clock := newStores()
	list := mustCreateList(t, lists, "Groceries")
	create := NewCreateTask(tasks, lists, clock)

	dated, err := create.Execute(context.Background(), CreateTaskInput{
		ListID:   list.ID,
		Title:    "dated",
		Deadline: timePtr(testNow.Add(48 * time.Hour)),
	})
	require.NoError(t, err)
	_, err = create.Execute(context.Background(), CreateTaskInput{ListID: list.ID, Title: "undated"})
	require.NoError(t, err)

	uc := NewListTasks(tasks)

	// Only a lower bound: the range still activates and undated tasks
	// drop out.
	out, err := uc.Execute(context.Background(), ListTasksInput{DeadlineFrom: timePtr(testNow)})
	require.NoError(t, err)
	require.Len(t, out.Tasks, 1)
	assert.Equal(t, dated.Task.ID, out.Tasks[0].ID)

	// Only an upper bound behaves the same way.
	out, err = uc.Execute(context.Background(), ListTasksInput{DeadlineTo: timePtr(testNow.AddDate(1, 0, 0))})
	require.NoError(t, err)
	require.Len(t, out.Tasks, 1)
	assert.Equal(t, dated.Task.ID, out.Tasks[0].ID)
}

func TestListTasks_Execute_InvalidVocabulary(t *testing.T) {
	tasks, _, _ := newStores()
	uc := NewListTasks(tasks)

	_, err := uc.Execute(context.Background(), ListTasksInput{SortBy: "priority"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Execute(context.Background(), ListTasksInput{SortOrder: "sideways"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Execute(context.Background(), ListTasksInput{ListID: "not-a-uuid"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListTasks_Execute_ExplicitSortOrderKept(t *testing.T) {
	tasks, lists, clock := newStores()
	list := mustCreateList(t, lists, "Groceries")
	create := NewCreateTask(tasks, lists, clock)

	first, err := create.Execute(context.Background(), CreateTaskInput{ListID: list.ID, Title: "first"})
	require.NoError(t, err)
	clock.Advance(time.Minute)
	_, err = create.Execute(context.Background(), CreateTaskInput{ListID: list.ID, Title: "second"})
	require.NoError(t, err)

	uc := NewListTasks(tasks)
	out, err := uc.Execute(context.Background(), ListTasksInput{SortOrder: domain.SortAsc})

	require.NoError(t, err)
	assert.Equal(t, first.Task.ID, out.Tasks[0].ID)
}
