package schedule

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"child-immunization-tracker/internal/ports/realtime"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("vaccination not found")
	ErrAlreadyDone  = errors.New("vaccination already marked as done")
)

type Service struct {
	repo Repository
	now  func() time.Time
	loc  *time.Location
	pub  realtime.Publisher
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
		loc:  time.UTC,
		pub:  realtime.Nop{},
	}
}

// WithLocation fija la zona usada para calcular "hoy".
func (s *Service) WithLocation(loc *time.Location) *Service {
	if loc != nil {
		s.loc = loc
	}
	return s
}

func (s *Service) WithPublisher(p realtime.Publisher) *Service {
	if p != nil {
		s.pub = p
	}
	return s
}

// Today es la fecha civil actual según la zona configurada.
func (s *Service) Today() time.Time {
	return Today(s.now(), s.loc)
}

// ListByChild devuelve los eventos persistidos ordenados por fecha de vencimiento.
// Empates conservan el orden que entregó el repo (orden de catálogo).
func (s *Service) ListByChild(ctx context.Context, childID string) ([]Event, error) {
	childID = strings.TrimSpace(childID)
	if childID == "" {
		return nil, ErrInvalidInput
	}

	items, err := s.repo.ListByChild(ctx, childID)
	if err != nil {
		return nil, fmt.Errorf("list vaccinations: %w", err)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].DueDate.Before(items[j].DueDate)
	})
	return items, nil
}

// View es la vista por niño: eventos clasificados contra hoy, opcionalmente filtrados.
func (s *Service) View(ctx context.Context, childID string, filter ListFilter) ([]ClassifiedEvent, error) {
	items, err := s.ListByChild(ctx, childID)
	if err != nil {
		return nil, err
	}

	classified := ClassifyAll(items, s.Today())
	if len(filter.Statuses) == 0 {
		return classified, nil
	}

	out := make([]ClassifiedEvent, 0, len(classified))
	for _, ce := range classified {
		for _, st := range filter.Statuses {
			if ce.Display == st {
				out = append(out, ce)
				break
			}
		}
	}
	return out, nil
}

// MarkDone registra la dosis como aplicada hoy. La transición es irreversible.
func (s *Service) MarkDone(ctx context.Context, childID, name string) (Event, error) {
	childID = strings.TrimSpace(childID)
	name = strings.TrimSpace(name)
	if childID == "" || name == "" {
		return Event{}, ErrInvalidInput
	}

	current, err := s.repo.Get(ctx, childID, name)
	if err != nil {
		return Event{}, err
	}
	if current.Status == StatusDone {
		return Event{}, ErrAlreadyDone
	}

	given := s.Today()
	if err := s.repo.UpdateStatus(ctx, childID, name, StatusDone, &given); err != nil {
		return Event{}, fmt.Errorf("update vaccination status: %w", err)
	}

	current.Status = StatusDone
	current.GivenDate = &given

	s.pub.Publish(ctx, realtime.TopicSchedule(childID), realtime.KindUpdated, map[string]any{
		"child_id":   childID,
		"name":       name,
		"status":     current.Status,
		"given_date": FormatDate(given),
	})

	return current, nil
}
