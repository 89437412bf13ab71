// Package memstore provides in-memory implementations of the task and
// list repositories. Each store owns a private map guarded by a mutex;
// records cross the boundary as clones in both directions, so callers can
// never reach the store's internal state through a returned pointer.
package memstore

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/hmizuno/taskdeck/internal/domain"
)

// TaskStore implements domain.TaskRepository with a mutex-guarded map.
//
// A plain Mutex (not RWMutex) keeps a single-writer discipline: the title
// collator is stateful and must not be shared between concurrent sorts.
type TaskStore struct {
	mu       sync.Mutex
	tasks    map[string]*domain.Task
	clock    domain.Clock
	collator *collate.Collator
}

// NewTaskStore creates an empty TaskStore. Titles are sorted with a
// collator for the given locale tag.
func NewTaskStore(clock domain.Clock, locale language.Tag) *TaskStore {
	return &TaskStore{
		tasks:    make(map[string]*domain.Task),
		clock:    clock,
		collator: collate.New(locale),
	}
}

// Create stores a new task. Completed defaults to false; when the draft
// carries Completed=true no CompletedAt is invented, the caller supplies
// one (Update is where completion transitions assign timestamps).
func (s *TaskStore) Create(draft domain.TaskDraft) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	task := &domain.Task{
		ID:          uuid.NewString(),
		ListID:      draft.ListID,
		Title:       draft.Title,
		Description: draft.Description,
		Completed:   draft.Completed,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if draft.Deadline != nil {
		d := *draft.Deadline
		task.Deadline = &d
	}
	if draft.CompletedAt != nil {
		ca := *draft.CompletedAt
		task.CompletedAt = &ca
	}

	s.tasks[task.ID] = task
	return task.Clone(), nil
}

// Get retrieves a task by ID. Returns nil if not found.
func (s *TaskStore) Get(id string) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tasks[id].Clone(), nil
}

// Query returns tasks matching q. Filtering happens first, then sorting,
// then offset/limit slicing on the ordered result.
func (s *TaskStore) Query(q domain.TaskQuery) ([]*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	matched := make([]*domain.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if matches(t, q) {
			matched = append(matched, t.Clone())
		}
	}

	s.sort(matched, q.SortBy, q.SortOrder)

	return paginate(matched, q.Offset, q.Limit), nil
}

// matches reports whether t passes every active filter in q.
func matches(t *domain.Task, q domain.TaskQuery) bool {
	if q.ListID != "" && t.ListID != q.ListID {
		return false
	}
	if q.Completed != nil && t.Completed != *q.Completed {
		return false
	}
	if q.IncludeCompleted != nil && !*q.IncludeCompleted && t.Completed {
		return false
	}
	if q.Deadline != nil {
		// An active deadline range never matches an undated task.
		if t.Deadline == nil || !q.Deadline.Contains(*t.Deadline) {
			return false
		}
	}
	if q.Created != nil && !q.Created.Contains(t.CreatedAt) {
		return false
	}
	return true
}

// sort orders tasks in place. Tasks without a deadline sort after all
// dated tasks regardless of direction; for the completed field, false
// sorts before true in ascending order.
func (s *TaskStore) sort(tasks []*domain.Task, field domain.SortField, order domain.SortOrder) {
	desc := order == domain.SortDesc

	cmp := func(a, b *domain.Task) int {
		var c int
		switch field {
		case domain.SortByTitle:
			c = s.collator.CompareString(a.Title, b.Title)
		case domain.SortByUpdatedAt:
			c = a.UpdatedAt.Compare(b.UpdatedAt)
		case domain.SortByDeadline:
			// Undated tasks stay last in both directions, so the nil
			// checks return before the direction flip below.
			switch {
			case a.Deadline == nil && b.Deadline == nil:
				return 0
			case a.Deadline == nil:
				return 1
			case b.Deadline == nil:
				return -1
			}
			c = a.Deadline.Compare(*b.Deadline)
		case domain.SortByCompleted:
			c = boolCompare(a.Completed, b.Completed)
		default:
			c = a.CreatedAt.Compare(b.CreatedAt)
		}
		if desc {
			c = -c
		}
		return c
	}

	slices.SortStableFunc(tasks, cmp)
}

func boolCompare(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

// paginate slices the already filtered and sorted tasks. Offset past the
// end yields an empty slice; limit <= 0 means unbounded.
func paginate(tasks []*domain.Task, offset, limit int) []*domain.Task {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(tasks) {
		return []*domain.Task{}
	}
	tasks = tasks[offset:]
	if limit > 0 && limit < len(tasks) {
		tasks = tasks[:limit]
	}
	return tasks
}

// DueThisWeek runs q against the Monday-Sunday window containing the
// store clock's current instant. The week window replaces any Deadline
// range already present in q.
func (s *TaskStore) DueThisWeek(q domain.TaskQuery) ([]*domain.Task, error) {
	week := domain.WeekRange(s.clock.Now())
	q.Deadline = &week
	return s.Query(q)
}

// Overdue runs q restricted to incomplete tasks whose deadline is strictly
// before now.
func (s *TaskStore) Overdue(q domain.TaskQuery) ([]*domain.Task, error) {
	incomplete := false
	q.Completed = &incomplete
	q.Deadline = &domain.TimeRange{
		Start: time.Unix(0, 0).UTC(),
		End:   s.clock.Now().Add(-time.Nanosecond),
	}
	return s.Query(q)
}

// Update merges patch into the task and refreshes UpdatedAt. A completion
// transition assigns or clears CompletedAt. ID and CreatedAt are
// immutable. Returns nil if the task does not exist.
func (s *TaskStore) Update(id string, patch domain.TaskPatch) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.applyPatch(id, patch), nil
}

// applyPatch is the unlocked core of Update, shared with the completion
// wrappers and bulk updates. Callers must hold s.mu.
func (s *TaskStore) applyPatch(id string, patch domain.TaskPatch) *domain.Task {
	t, ok := s.tasks[id]
	if !ok {
		return nil
	}

	now := s.clock.Now()
	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.ClearDeadline {
		t.Deadline = nil
	} else if patch.Deadline != nil {
		d := *patch.Deadline
		t.Deadline = &d
	}
	if patch.Completed != nil && *patch.Completed != t.Completed {
		t.Completed = *patch.Completed
		if t.Completed {
			ca := now
			t.CompletedAt = &ca
		} else {
			t.CompletedAt = nil
		}
	}
	t.UpdatedAt = now

	return t.Clone()
}

// Toggle flips the completion state. Returns nil if not found.
func (s *TaskStore) Toggle(id string) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok {
		return nil, nil
	}
	next := !t.Completed
	return s.applyPatch(id, domain.TaskPatch{Completed: &next}), nil
}

// MarkCompleted sets Completed=true. Returns nil if not found.
func (s *TaskStore) MarkCompleted(id string) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	done := true
	return s.applyPatch(id, domain.TaskPatch{Completed: &done}), nil
}

// MarkIncomplete sets Completed=false. Returns nil if not found.
func (s *TaskStore) MarkIncomplete(id string) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	done := false
	return s.applyPatch(id, domain.TaskPatch{Completed: &done}), nil
}

// Delete removes a task, reporting whether it existed.
func (s *TaskStore) Delete(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return false, nil
	}
	delete(s.tasks, id)
	return true, nil
}

// DeleteByList removes every task of a list, returning the count removed.
func (s *TaskStore) DeleteByList(listID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for id, t := range s.tasks {
		if t.ListID == listID {
			delete(s.tasks, id)
			n++
		}
	}
	return n, nil
}

// Count returns the total number of tasks.
func (s *TaskStore) Count() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks), nil
}

// CountByList counts a list's tasks, optionally excluding completed ones.
func (s *TaskStore) CountByList(listID string, includeCompleted bool) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, t := range s.tasks {
		if t.ListID != listID {
			continue
		}
		if !includeCompleted && t.Completed {
			continue
		}
		n++
	}
	return n, nil
}

// CountCompleted counts a list's completed tasks.
func (s *TaskStore) CountCompleted(listID string) (int, error) {
	return s.countWhere(func(t *domain.Task) bool {
		return t.ListID == listID && t.Completed
	}), nil
}

// CountPending counts a list's incomplete tasks.
func (s *TaskStore) CountPending(listID string) (int, error) {
	return s.countWhere(func(t *domain.Task) bool {
		return t.ListID == listID && !t.Completed
	}), nil
}

// CountOverdue counts incomplete tasks whose deadline is strictly in the
// past.
func (s *TaskStore) CountOverdue() (int, error) {
	now := s.clock.Now()
	return s.countWhere(func(t *domain.Task) bool {
		return t.IsOverdue(now)
	}), nil
}

// CountDueThisWeek counts tasks whose deadline falls inside the current
// Monday-Sunday window.
func (s *TaskStore) CountDueThisWeek() (int, error) {
	week := domain.WeekRange(s.clock.Now())
	return s.countWhere(func(t *domain.Task) bool {
		return t.Deadline != nil && week.Contains(*t.Deadline)
	}), nil
}

func (s *TaskStore) countWhere(pred func(*domain.Task) bool) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, t := range s.tasks {
		if pred(t) {
			n++
		}
	}
	return n
}

// BulkUpdate applies each patch independently, skipping unknown IDs, and
// returns the tasks that were actually updated.
func (s *TaskStore) BulkUpdate(items []domain.BulkTaskUpdate) ([]*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := make([]*domain.Task, 0, len(items))
	for _, item := range items {
		if t := s.applyPatch(item.ID, item.Patch); t != nil {
			updated = append(updated, t)
		}
	}
	return updated, nil
}

// BulkDelete removes the given IDs, returning the count actually removed.
func (s *TaskStore) BulkDelete(ids []string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, id := range ids {
		if _, ok := s.tasks[id]; ok {
			delete(s.tasks, id)
			n++
		}
	}
	return n, nil
}

// Clear removes every task. Test teardown helper.
func (s *TaskStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = make(map[string]*domain.Task)
}

// Ensure TaskStore implements the repository port.
var _ domain.TaskRepository = (*TaskStore)(nil)
