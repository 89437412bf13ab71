package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/hmizuno/taskdeck/internal/domain"
	"github.com/hmizuno/taskdeck/internal/infra/memstore"
	"github.com/hmizuno/taskdeck/internal/testutil"
)

var testNow = time.Date(2023, 7, 5, 12, 0, 0, 0, time.UTC) // a Wednesday

// newStores builds a matched pair of in-memory stores on a shared mock
// clock.
func newStores() (*memstore.TaskStore, *memstore.ListStore, *testutil.MockClock) {
	clock := &testutil.MockClock{NowTime: testNow}
	return memstore.NewTaskStore(clock, language.English), memstore.NewListStore(clock), clock
}

func mustCreateList(t *testing.T, lists domain.ListRepository, name string) *domain.List {
	t.Helper()
	list, err := lists.Create(domain.ListDraft{Name: name})
	require.NoError(t, err)
	return list
}

func timePtr(t time.Time) *time.Time { return &t }

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func TestCreateTask_Execute(t *testing.T) {
	tasks, lists, clock := newStores()
	list := mustCreateList(t, lists, "Groceries")

	uc := NewCreateTask(tasks, lists, clock)
	out, err := uc.Execute(context.Background(), CreateTaskInput{
		ListID:   list.ID,
		Title:    "Buy milk",
		Deadline: timePtr(testNow.Add(24 * time.Hour)),
	})

	require.NoError(t, err)
	assert.Equal(t, list.ID, out.Task.ListID)
	assert.False(t, out.Task.Completed)
	assert.Nil(t, out.Task.CompletedAt)
	assert.Equal(t, out.Task.CreatedAt, out.Task.UpdatedAt)
}

func TestCreateTask_Execute_ListMissing(t *testing.T) {
	tasks, lists, clock := newStores()

	uc := NewCreateTask(tasks, lists, clock)
	_, err := uc.Execute(context.Background(), CreateTaskInput{
		ListID: uuid.NewString(),
		Title:  "orphan",
	})

	require.ErrorIs(t, err, domain.ErrListNotFound)
}

func TestCreateTask_Execute_Validation(t *testing.T) {
	tasks, lists, clock := newStores()
	list := mustCreateList(t, lists, "Groceries")
	uc := NewCreateTask(tasks, lists, clock)

	tests := []struct {
		name string
		in   CreateTaskInput
	}{
		{"malformed list id", CreateTaskInput{ListID: "not-a-uuid", Title: "x"}},
		{"empty title", CreateTaskInput{ListID: list.ID, Title: "   "}},
		{"title too long", CreateTaskInput{ListID: list.ID, Title: strings.Repeat("x", domain.MaxTitleLen+1)}},
		{"past deadline", CreateTaskInput{ListID: list.ID, Title: "x", Deadline: timePtr(testNow.Add(-time.Minute))}},
		{"deadline exactly now", CreateTaskInput{ListID: list.ID, Title: "x", Deadline: timePtr(testNow)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}

	// Nothing was stored by the rejected inputs.
	n, err := tasks.Count()
	require.NoError(t, err)
	assert.Zero(t, n)
}
