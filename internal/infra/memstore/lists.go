package memstore

import (
	"sync"

	"github.com/google/uuid"

	"github.com/hmizuno/taskdeck/internal/domain"
)

// ListStore implements domain.ListRepository with a mutex-guarded map.
//
// The per-list TaskCount is a cache, not authoritative storage: the
// service layer treats it as advisory and reads live counts from the task
// store when correctness matters.
type ListStore struct {
	mu    sync.Mutex
	lists map[string]*domain.List
	clock domain.Clock
}

// NewListStore creates an empty ListStore.
func NewListStore(clock domain.Clock) *ListStore {
	return &ListStore{
		lists: make(map[string]*domain.List),
		clock: clock,
	}
}

// Create stores a new list with TaskCount=0. Returns ErrDuplicateListName
// if another list already holds the name (case-sensitive exact match).
func (s *ListStore) Create(draft domain.ListDraft) (*domain.List, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.nameTaken(draft.Name, "") {
		return nil, domain.ErrDuplicateListName
	}

	now := s.clock.Now()
	list := &domain.List{
		ID:          uuid.NewString(),
		Name:        draft.Name,
		Description: draft.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.lists[list.ID] = list

	return list.Clone(), nil
}

// FindAll returns every list. With includeTaskCount=false the cached count
// is left at zero in results; callers must not read meaning into that.
func (s *ListStore) FindAll(includeTaskCount bool) ([]*domain.List, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*domain.List, 0, len(s.lists))
	for _, l := range s.lists {
		out = append(out, cloneFor(l, includeTaskCount))
	}
	return out, nil
}

// Find retrieves a list by ID. Returns nil if not found.
func (s *ListStore) Find(id string, includeTaskCount bool) (*domain.List, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.lists[id]
	if !ok {
		return nil, nil
	}
	return cloneFor(l, includeTaskCount), nil
}

// FindByName retrieves a list by exact name. Returns nil if not found.
func (s *ListStore) FindByName(name string, includeTaskCount bool) (*domain.List, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, l := range s.lists {
		if l.Name == name {
			return cloneFor(l, includeTaskCount), nil
		}
	}
	return nil, nil
}

// Update merges patch into the list and refreshes UpdatedAt. Renaming to a
// name held by a different list returns ErrDuplicateListName; renaming to
// the list's own current name is allowed. Returns nil if not found.
func (s *ListStore) Update(id string, patch domain.ListPatch) (*domain.List, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.lists[id]
	if !ok {
		return nil, nil
	}

	if patch.Name != nil && s.nameTaken(*patch.Name, id) {
		return nil, domain.ErrDuplicateListName
	}

	if patch.Name != nil {
		l.Name = *patch.Name
	}
	if patch.Description != nil {
		l.Description = *patch.Description
	}
	l.UpdatedAt = s.clock.Now()

	return l.Clone(), nil
}

// Delete removes a list, reporting whether it existed. A list whose cached
// task count is above zero is rejected with ErrListNotEmpty; callers must
// cascade-delete its tasks and sync the count to zero first.
func (s *ListStore) Delete(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.lists[id]
	if !ok {
		return false, nil
	}
	if l.TaskCount > 0 {
		return false, domain.ErrListNotEmpty
	}
	delete(s.lists, id)
	return true, nil
}

// Exists reports whether a list with the given ID exists.
func (s *ListStore) Exists(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.lists[id]
	return ok, nil
}

// NameExists reports whether a list other than excludeID holds the name.
func (s *ListStore) NameExists(name, excludeID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nameTaken(name, excludeID), nil
}

// nameTaken checks name uniqueness, ignoring excludeID. Callers must hold
// s.mu.
func (s *ListStore) nameTaken(name, excludeID string) bool {
	for id, l := range s.lists {
		if id != excludeID && l.Name == name {
			return true
		}
	}
	return false
}

// TaskCount reads the cached count. Returns 0 for unknown lists.
func (s *ListStore) TaskCount(id string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.lists[id]
	if !ok {
		return 0, nil
	}
	return l.TaskCount, nil
}

// SetTaskCount writes the cached count, clamping negatives to zero.
// Unknown IDs are a no-op.
func (s *ListStore) SetTaskCount(id string, n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.lists[id]
	if !ok {
		return nil
	}
	if n < 0 {
		n = 0
	}
	l.TaskCount = n
	return nil
}

// Count returns the total number of lists.
func (s *ListStore) Count() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lists), nil
}

// Clear removes every list. Test teardown helper.
func (s *ListStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lists = make(map[string]*domain.List)
}

// cloneFor copies l, zeroing the cached count when it was not requested.
func cloneFor(l *domain.List, includeTaskCount bool) *domain.List {
	c := l.Clone()
	if !includeTaskCount {
		c.TaskCount = 0
	}
	return c
}

// Ensure ListStore implements the repository port.
var _ domain.ListRepository = (*ListStore)(nil)
