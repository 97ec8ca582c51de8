package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"child-immunization-tracker/internal/domain/children"
	"child-immunization-tracker/internal/domain/schedule"
)

// ImmunizationStore guarda niños y sus dosis bajo el mismo lock, así el alta
// con calendario es atómica. Implementa children.Repository y schedule.Repository.
type ImmunizationStore struct {
	mu       sync.RWMutex
	children map[string]children.Child
	events   map[string][]schedule.Event // childID -> orden de catálogo
}

func NewImmunizationStore() *ImmunizationStore {
	return &ImmunizationStore{
		children: make(map[string]children.Child),
		events:   make(map[string][]schedule.Event),
	}
}

func (s *ImmunizationStore) CreateWithSchedule(ctx context.Context, c children.Child, events []schedule.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(c.ID) == "" {
		return errors.New("child id required")
	}
	if _, exists := s.children[c.ID]; exists {
		return errors.New("child already exists")
	}

	seen := make(map[string]struct{}, len(events))
	stored := make([]schedule.Event, 0, len(events))
	for _, e := range events {
		if e.ChildID != c.ID {
			return errors.New("vaccination belongs to another child")
		}
		if _, dup := seen[e.Name]; dup {
			return errors.New("duplicate vaccination " + e.Name)
		}
		seen[e.Name] = struct{}{}
		stored = append(stored, copyEvent(e))
	}

	s.children[c.ID] = c
	s.events[c.ID] = stored
	return nil
}

func (s *ImmunizationStore) GetByID(ctx context.Context, id string) (children.Child, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.children[id]
	if !ok {
		return children.Child{}, children.ErrNotFound
	}
	return c, nil
}

func (s *ImmunizationStore) ListByParent(ctx context.Context, parentID string) ([]children.Child, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]children.Child, 0)
	for _, c := range s.children {
		if c.ParentID == parentID {
			out = append(out, c)
		}
	}
	sortChildren(out)
	return out, nil
}

func (s *ImmunizationStore) ListAll(ctx context.Context, filter children.ListFilter) ([]children.Child, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]children.Child, 0, len(s.children))
	for _, c := range s.children {
		if children.MatchesQuery(c, filter.Query) {
			out = append(out, c)
		}
	}
	sortChildren(out)
	return out, nil
}

func (s *ImmunizationStore) ListByChild(ctx context.Context, childID string) ([]schedule.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	src := s.events[childID]
	out := make([]schedule.Event, 0, len(src))
	for _, e := range src {
		out = append(out, copyEvent(e))
	}
	return out, nil
}

func (s *ImmunizationStore) Get(ctx context.Context, childID, name string) (schedule.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.events[childID] {
		if e.Name == name {
			return copyEvent(e), nil
		}
	}
	return schedule.Event{}, schedule.ErrNotFound
}

func (s *ImmunizationStore) UpdateStatus(ctx context.Context, childID, name string, status schedule.Status, givenDate *time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.events[childID]
	for i := range list {
		if list[i].Name != name {
			continue
		}
		list[i].Status = status
		list[i].GivenDate = copyTime(givenDate)
		return nil
	}
	return schedule.ErrNotFound
}

// Orden estable: alta más antigua primero.
func sortChildren(items []children.Child) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].ID < items[j].ID
		}
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
}

func copyEvent(e schedule.Event) schedule.Event {
	e.GivenDate = copyTime(e.GivenDate)
	return e
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
