package dashboard

import (
	"context"
	"fmt"
	"time"

	"child-immunization-tracker/internal/domain/children"
	"child-immunization-tracker/internal/domain/notifications"
	"child-immunization-tracker/internal/domain/schedule"
	"child-immunization-tracker/internal/platform/logger"
)

type ChildLister interface {
	ListByParent(ctx context.Context, parentID string) ([]children.Child, error)
	ListAll(ctx context.Context, filter children.ListFilter) ([]children.Child, error)
}

type EventLister interface {
	ListByChild(ctx context.Context, childID string) ([]schedule.Event, error)
}

type NotificationSyncer interface {
	Sync(ctx context.Context, userID string, items []notifications.ChildSchedule) ([]notifications.Record, error)
}

// Service arma los tableros. No guarda estado: cada carga lee el store,
// pasa la foto a las funciones puras y devuelve el resultado.
type Service struct {
	children ChildLister
	events   EventLister
	notifier NotificationSyncer
	log      logger.Logger
	now      func() time.Time
	loc      *time.Location
}

func NewService(c ChildLister, e EventLister, n NotificationSyncer, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		children: c,
		events:   e,
		notifier: n,
		log:      log.With(map[string]any{"component": "dashboard"}),
		now:      time.Now,
		loc:      time.UTC,
	}
}

func (s *Service) WithLocation(loc *time.Location) *Service {
	if loc != nil {
		s.loc = loc
	}
	return s
}

// snapshot es la foto de un niño con sus dosis en esta carga.
type snapshot struct {
	child  children.Child
	events []schedule.Event
}

// SchedulesFor carga los hijos del padre con sus dosis.
func (s *Service) SchedulesFor(ctx context.Context, parentID string) ([]notifications.ChildSchedule, error) {
	snaps, err := s.parentSnapshots(ctx, parentID)
	if err != nil {
		return nil, err
	}
	return toSchedules(snaps), nil
}

// ForParent: tablero del padre. Si tiene hijos, dispara la evaluación de avisos.
// Un fallo de la evaluación se loguea y no rompe la carga.
func (s *Service) ForParent(ctx context.Context, parentID string) (View, error) {
	snaps, err := s.parentSnapshots(ctx, parentID)
	if err != nil {
		return View{}, err
	}

	view := View{Children: s.summaries(snaps)}

	if len(snaps) > 0 && s.notifier != nil {
		created, err := s.notifier.Sync(ctx, parentID, toSchedules(snaps))
		if err != nil {
			s.log.Warn("notification sync failed", map[string]any{
				"parent_id": parentID,
				"created":   len(created),
				"error":     err,
			})
		}
		view.NewNotifications = created
	}

	return view, nil
}

// ForHealthcareWorker: todos los niños, con búsqueda opcional por nombre.
func (s *Service) ForHealthcareWorker(ctx context.Context, query string) (View, error) {
	list, err := s.children.ListAll(ctx, children.ListFilter{Query: query})
	if err != nil {
		return View{}, fmt.Errorf("list children: %w", err)
	}

	snaps, err := s.load(ctx, list)
	if err != nil {
		return View{}, err
	}

	return View{Query: query, Children: s.summaries(snaps)}, nil
}

func (s *Service) parentSnapshots(ctx context.Context, parentID string) ([]snapshot, error) {
	list, err := s.children.ListByParent(ctx, parentID)
	if err != nil {
		return nil, fmt.Errorf("list children: %w", err)
	}
	return s.load(ctx, list)
}

func (s *Service) load(ctx context.Context, list []children.Child) ([]snapshot, error) {
	out := make([]snapshot, 0, len(list))
	for _, c := range list {
		events, err := s.events.ListByChild(ctx, c.ID)
		if err != nil {
			return nil, fmt.Errorf("list vaccinations for %s: %w", c.ID, err)
		}
		out = append(out, snapshot{child: c, events: events})
	}
	return out, nil
}

func toSchedules(snaps []snapshot) []notifications.ChildSchedule {
	out := make([]notifications.ChildSchedule, 0, len(snaps))
	for _, sn := range snaps {
		out = append(out, notifications.ChildSchedule{
			Child:  notifications.ChildRef{ID: sn.child.ID, Name: sn.child.Name},
			Events: sn.events,
		})
	}
	return out
}

func (s *Service) summaries(snaps []snapshot) []ChildSummary {
	today := schedule.Today(s.now(), s.loc)
	out := make([]ChildSummary, 0, len(snaps))
	for _, sn := range snaps {
		sum := Summarize(sn.events, today)
		sum.Child = sn.child
		out = append(out, sum)
	}
	return out
}

// Summarize cuenta dosis por estado visible y elige la próxima pendiente.
func Summarize(events []schedule.Event, today time.Time) ChildSummary {
	var sum ChildSummary
	for _, ce := range schedule.ClassifyAll(events, today) {
		switch ce.Display {
		case schedule.DisplayDone:
			sum.Done++
			continue
		case schedule.DisplayMissed:
			sum.Missed++
		default:
			sum.Due++
		}

		if sum.NextDue == nil || ce.DueDate.Before(sum.NextDue.DueDate) {
			next := ce
			sum.NextDue = &next
		}
	}
	return sum
}
