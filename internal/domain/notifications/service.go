package notifications

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"child-immunization-tracker/internal/domain/schedule"
	"child-immunization-tracker/internal/ports/realtime"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("notification not found")
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

// ChildSchedule es la foto de un niño con sus dosis, tal como la entrega el store.
type ChildSchedule struct {
	Child  ChildRef
	Events []schedule.Event
}

// Sync evalúa las reglas para los hijos de userID y crea los avisos que falten.
// Chequea existencia por ID antes de crear; si dos cargas concurrentes compiten,
// el store rechaza el duplicado (ErrConflict) y se toma como ya creado.
// No reintenta: cualquier otro error del store se devuelve al caller.
func (s *Service) Sync(ctx context.Context, userID string, items []ChildSchedule) ([]Record, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidInput
	}

	today := schedule.Today(s.now(), s.loc)
	created := make([]Record, 0)

	for _, it := range items {
		for _, rec := range Evaluate(today, it.Child, it.Events) {
			exists, err := s.repo.Exists(ctx, userID, rec.ID)
			if err != nil {
				return created, fmt.Errorf("check notification %s: %w", rec.ID, err)
			}
			if exists {
				continue
			}

			rec.UserID = userID
			rec.CreatedAt = s.now()

			if err := s.repo.Create(ctx, rec); err != nil {
				if errors.Is(err, ErrConflict) {
					continue
				}
				return created, fmt.Errorf("create notification %s: %w", rec.ID, err)
			}

			created = append(created, rec)
			s.pub.Publish(ctx, realtime.TopicNotifications(userID), realtime.KindCreated, map[string]any{
				"id":      rec.ID,
				"message": rec.Message,
			})
		}
	}

	return created, nil
}

// List devuelve la bandeja (más reciente primero) y cuántos avisos no se leyeron.
func (s *Service) List(ctx context.Context, userID string) ([]Record, int, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, 0, ErrInvalidInput
	}

	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, 0, fmt.Errorf("list notifications: %w", err)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})

	unread := 0
	for _, n := range items {
		if !n.Read {
			unread++
		}
	}
	return items, unread, nil
}

func (s *Service) MarkRead(ctx context.Context, userID, id string) error {
	userID = strings.TrimSpace(userID)
	id = strings.TrimSpace(id)
	if userID == "" || id == "" {
		return ErrInvalidInput
	}

	if err := s.repo.MarkRead(ctx, userID, id); err != nil {
		return err
	}

	s.pub.Publish(ctx, realtime.TopicNotifications(userID), realtime.KindUpdated, map[string]any{
		"id":   id,
		"read": true,
	})
	return nil
}
