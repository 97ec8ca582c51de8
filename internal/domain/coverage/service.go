package coverage

import (
	"context"
	"fmt"
	"time"

	"child-immunization-tracker/internal/domain/catalog"
	"child-immunization-tracker/internal/domain/children"
	"child-immunization-tracker/internal/domain/schedule"
)

type ChildSource interface {
	ListAll(ctx context.Context, filter children.ListFilter) ([]children.Child, error)
}

type EventSource interface {
	ListByChild(ctx context.Context, childID string) ([]schedule.Event, error)
}

type Service struct {
	catalog  catalog.Catalog
	children ChildSource
	events   EventSource
	now      func() time.Time
	loc      *time.Location
}

func NewService(c catalog.Catalog, children ChildSource, events EventSource) *Service {
	return &Service{
		catalog:  c,
		children: children,
		events:   events,
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

// Build arma el reporte de cobertura de todos los niños dentro de la banda.
// Solo se leen las dosis de los niños que pasan el filtro.
func (s *Service) Build(ctx context.Context, band AgeBand) (Report, error) {
	today := schedule.Today(s.now(), s.loc)

	all, err := s.children.ListAll(ctx, children.ListFilter{})
	if err != nil {
		return Report{}, fmt.Errorf("list children: %w", err)
	}

	cohort := make([]ChildEvents, 0, len(all))
	for _, ch := range all {
		if !band.Contains(AgeInMonths(ch.DOB, today)) {
			continue
		}
		events, err := s.events.ListByChild(ctx, ch.ID)
		if err != nil {
			return Report{}, fmt.Errorf("list vaccinations for %s: %w", ch.ID, err)
		}
		cohort = append(cohort, ChildEvents{ChildID: ch.ID, DOB: ch.DOB, Events: events})
	}

	return Aggregate(s.catalog, cohort, band, today), nil
}
