package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hmizuno/taskdeck/internal/domain"
)

func TestCreateList_Execute(t *testing.T) {
	_, lists, _ := newStores()

	uc := NewCreateList(lists)
	out, err := uc.Execute(context.Background(), CreateListInput{Name: "Groceries", Description: "weekly"})

	require.NoError(t, err)
	assert.NotEmpty(t, out.List.ID)
	assert.Equal(t, "Groceries", out.List.Name)
	assert.Zero(t, out.List.TaskCount)
}

func TestCreateList_Execute_DuplicateName(t *testing.T) {
	_, lists, _ := newStores()
	uc := NewCreateList(lists)

	_, err := uc.Execute(context.Background(), CreateListInput{Name: "Groceries"})
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), CreateListInput{Name: "Groceries"})
	require.ErrorIs(t, err, domain.ErrDuplicateListName)
}

func TestCreateList_Execute_Validation(t *testing.T) {
	_, lists, _ := newStores()
	uc := NewCreateList(lists)

	_, err := uc.Execute(context.Background(), CreateListInput{Name: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Execute(context.Background(), CreateListInput{Name: strings.Repeat("n", domain.MaxListNameLen+1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Execute(context.Background(), CreateListInput{
		Name:        "ok",
		Description: strings.Repeat("d", domain.MaxListDescriptionLen+1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateList_Execute_Rename(t *testing.T) {
	_, lists, _ := newStores()
	a := mustCreateList(t, lists, "Groceries")
	mustCreateList(t, lists, "Work")

	uc := NewUpdateList(lists)

	// Renaming onto another list's name carries the same error category
	// as a duplicate create.
	_, err := uc.Execute(context.Background(), UpdateListInput{ID: a.ID, Name: strPtr("Work")})
	require.ErrorIs(t, err, domain.ErrDuplicateListName)

	// Renaming to the current name succeeds.
	out, err := uc.Execute(context.Background(), UpdateListInput{ID: a.ID, Name: strPtr("Groceries")})
	require.NoError(t, err)
	assert.Equal(t, "Groceries", out.List.Name)
}

func TestUpdateList_Execute_Missing(t *testing.T) {
	_, lists, _ := newStores()

	uc := NewUpdateList(lists)
	out, err := uc.Execute(context.Background(), UpdateListInput{ID: uuid.NewString(), Name: strPtr("x")})

	require.NoError(t, err)
	assert.Nil(t, out.List)
}

func TestGetList_Execute_LiveTaskCount(t *testing.T) {
	tasks, lists, clock := newStores()
	list := mustCreateList(t, lists, "Groceries")

	create := NewCreateTask(tasks, lists, clock)
	_, err := create.Execute(context.Background(), CreateTaskInput{ListID: list.ID, Title: "a"})
	require.NoError(t, err)
	_, err = create.Execute(context.Background(), CreateTaskInput{ListID: list.ID, Title: "b"})
	require.NoError(t, err)

	// The cached counter was never touched; the count is live anyway.
	uc := NewGetList(lists, tasks)
	got, err := uc.Execute(context.Background(), list.ID)

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 2, got.TaskCount)
}

func TestListLists_Execute(t *testing.T) {
	tasks, lists, clock := newStores()
	b := mustCreateList(t, lists, "Work")
	a := mustCreateList(t, lists, "Groceries")

	create := NewCreateTask(tasks, lists, clock)
	_, err := create.Execute(context.Background(), CreateTaskInput{ListID: a.ID, Title: "milk"})
	require.NoError(t, err)

	uc := NewListLists(lists, tasks)
	out, err := uc.Execute(context.Background())

	require.NoError(t, err)
	require.Len(t, out.Lists, 2)
	assert.Equal(t, "Groceries", out.Lists[0].Name)
	assert.Equal(t, 1, out.Lists[0].TaskCount)
	assert.Equal(t, "Work", out.Lists[1].Name)
	assert.Zero(t, out.Lists[1].TaskCount)
	_ = b
}
