package memstore

import (
	"errors"
	"testing"
	"time"

	"github.com/hmizuno/taskdeck/internal/domain"
	"github.com/hmizuno/taskdeck/internal/testutil"
)

func newTestListStore() (*ListStore, *testutil.MockClock) {
	clock := &testutil.MockClock{NowTime: baseTime}
	return NewListStore(clock), clock
}

func TestListStore_Create(t *testing.T) {
	store, _ := newTestListStore()

	list, err := store.Create(domain.ListDraft{Name: "Groceries", Description: "weekly shopping"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if list.ID == "" {
		t.Error("Create() did not assign an ID")
	}
	if list.TaskCount != 0 {
		t.Errorf("TaskCount = %d, want 0", list.TaskCount)
	}
	if !list.CreatedAt.Equal(baseTime) || !list.UpdatedAt.Equal(baseTime) {
		t.Error("CreatedAt/UpdatedAt should both be set to now")
	}
}

func TestListStore_Create_DuplicateName(t *testing.T) {
	store, _ := newTestListStore()

	_, err := store.Create(domain.ListDraft{Name: "Groceries"})
	if err != nil {
		t.Fatalf("first Create() error = %v", err)
	}

	_, err = store.Create(domain.ListDraft{Name: "Groceries"})
	if !errors.Is(err, domain.ErrDuplicateListName) {
		t.Errorf("Create() error = %v, want ErrDuplicateListName", err)
	}

	// Names are case-sensitive: a different casing is a different name.
	if _, err := store.Create(domain.ListDraft{Name: "groceries"}); err != nil {
		t.Errorf("Create() with different casing error = %v", err)
	}
}

func TestListStore_FindAll_TaskCountOmission(t *testing.T) {
	store, _ := newTestListStore()

	list, _ := store.Create(domain.ListDraft{Name: "Groceries"})
	_ = store.SetTaskCount(list.ID, 5)

	with, _ := store.FindAll(true)
	if len(with) != 1 || with[0].TaskCount != 5 {
		t.Error("FindAll(true) should attach the cached count")
	}

	without, _ := store.FindAll(false)
	if without[0].TaskCount != 0 {
		t.Error("FindAll(false) should leave the count at zero")
	}
}

func TestListStore_FindByName(t *testing.T) {
	store, _ := newTestListStore()

	created, _ := store.Create(domain.ListDraft{Name: "Work"})

	got, _ := store.FindByName("Work", true)
	if got == nil || got.ID != created.ID {
		t.Error("FindByName() should return the matching list")
	}
	if missing, _ := store.FindByName("work", true); missing != nil {
		t.Error("FindByName() is case-sensitive")
	}
}

func TestListStore_Update(t *testing.T) {
	store, clock := newTestListStore()

	list, _ := store.Create(domain.ListDraft{Name: "Work"})
	_, _ = store.Create(domain.ListDraft{Name: "Home"})

	clock.Advance(time.Hour)
	got, err := store.Update(list.ID, domain.ListPatch{Name: strPtr("Office")})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if got.Name != "Office" {
		t.Errorf("Name = %q, want Office", got.Name)
	}
	if !got.UpdatedAt.Equal(clock.NowTime) {
		t.Error("UpdatedAt should be refreshed")
	}

	// Renaming onto another list's name is a conflict.
	_, err = store.Update(list.ID, domain.ListPatch{Name: strPtr("Home")})
	if !errors.Is(err, domain.ErrDuplicateListName) {
		t.Errorf("Update() error = %v, want ErrDuplicateListName", err)
	}

	// Renaming to the current name is allowed.
	if _, err := store.Update(list.ID, domain.ListPatch{Name: strPtr("Office")}); err != nil {
		t.Errorf("rename to own name error = %v", err)
	}
}

func TestListStore_Update_NotFound(t *testing.T) {
	store, _ := newTestListStore()

	got, err := store.Update("missing", domain.ListPatch{Name: strPtr("x")})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if got != nil {
		t.Error("Update() of missing id should return nil")
	}
}

func TestListStore_Delete(t *testing.T) {
	store, _ := newTestListStore()

	list, _ := store.Create(domain.ListDraft{Name: "Work"})

	ok, err := store.Delete(list.ID)
	if err != nil || !ok {
		t.Fatalf("Delete() = %v, %v; want true, nil", ok, err)
	}

	ok, err = store.Delete(list.ID)
	if err != nil || ok {
		t.Errorf("Delete() of missing id = %v, %v; want false, nil", ok, err)
	}
}

func TestListStore_Delete_NotEmpty(t *testing.T) {
	store, _ := newTestListStore()

	list, _ := store.Create(domain.ListDraft{Name: "Work"})
	_ = store.SetTaskCount(list.ID, 2)

	_, err := store.Delete(list.ID)
	if !errors.Is(err, domain.ErrListNotEmpty) {
		t.Errorf("Delete() error = %v, want ErrListNotEmpty", err)
	}

	// Syncing the cache to zero unblocks deletion.
	_ = store.SetTaskCount(list.ID, 0)
	if ok, err := store.Delete(list.ID); err != nil || !ok {
		t.Errorf("Delete() after count sync = %v, %v; want true, nil", ok, err)
	}
}

func TestListStore_NameExists(t *testing.T) {
	store, _ := newTestListStore()

	list, _ := store.Create(domain.ListDraft{Name: "Work"})

	if ok, _ := store.NameExists("Work", ""); !ok {
		t.Error("NameExists() = false, want true")
	}
	// Excluding the holder itself lets rename-to-same-name pass.
	if ok, _ := store.NameExists("Work", list.ID); ok {
		t.Error("NameExists() with excludeID = true, want false")
	}
	if ok, _ := store.NameExists("Missing", ""); ok {
		t.Error("NameExists() for unknown name = true, want false")
	}
}

func TestListStore_SetTaskCount_ClampsNegative(t *testing.T) {
	store, _ := newTestListStore()

	list, _ := store.Create(domain.ListDraft{Name: "Work"})
	_ = store.SetTaskCount(list.ID, -3)

	if n, _ := store.TaskCount(list.ID); n != 0 {
		t.Errorf("TaskCount() = %d, want 0 after negative write", n)
	}
}

func TestListStore_Count(t *testing.T) {
	store, _ := newTestListStore()

	_, _ = store.Create(domain.ListDraft{Name: "A"})
	_, _ = store.Create(domain.ListDraft{Name: "B"})

	if n, _ := store.Count(); n != 2 {
		t.Errorf("Count() = %d, want 2", n)
	}
}
