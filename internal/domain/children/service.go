package children

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"child-immunization-tracker/internal/domain/catalog"
	"child-immunization-tracker/internal/domain/schedule"
	"child-immunization-tracker/internal/ports/realtime"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("please fill in all fields")
	ErrNotFound     = errors.New("child not found")
)

type Service struct {
	repo    Repository
	catalog catalog.Catalog
	now     func() time.Time
	newID   func() string
	pub     realtime.Publisher
}

func NewService(repo Repository, c catalog.Catalog) *Service {
	return &Service{
		repo:    repo,
		catalog: c,
		now:     time.Now,
		newID:   uuid.NewString,
		pub:     realtime.Nop{},
	}
}

func (s *Service) WithPublisher(p realtime.Publisher) *Service {
	if p != nil {
		s.pub = p
	}
	return s
}

type RegisterInput struct {
	Name       string
	DOB        string // YYYY-MM-DD
	ParentName string
	Contact    string
}

// Register crea el niño y genera su calendario completo desde el catálogo vigente.
func (s *Service) Register(ctx context.Context, parentID string, in RegisterInput) (Child, []schedule.Event, error) {
	parentID = strings.TrimSpace(parentID)
	name := strings.TrimSpace(in.Name)
	parentName := strings.TrimSpace(in.ParentName)
	contact := strings.TrimSpace(in.Contact)

	if parentID == "" || name == "" || strings.TrimSpace(in.DOB) == "" || parentName == "" || contact == "" {
		return Child{}, nil, ErrInvalidInput
	}

	dob, err := schedule.ParseDate(in.DOB)
	if err != nil {
		return Child{}, nil, fmt.Errorf("%w: dob", err)
	}

	c := Child{
		ID:         s.newID(),
		Name:       name,
		DOB:        dob,
		ParentID:   parentID,
		ParentName: parentName,
		Contact:    contact,
		CreatedAt:  s.now(),
	}

	events := schedule.Generate(s.catalog, dob)
	for i := range events {
		events[i].ChildID = c.ID
	}

	if err := s.repo.CreateWithSchedule(ctx, c, events); err != nil {
		return Child{}, nil, fmt.Errorf("register child: %w", err)
	}

	s.pub.Publish(ctx, realtime.TopicChildren, realtime.KindCreated, map[string]any{
		"id":        c.ID,
		"name":      c.Name,
		"parent_id": c.ParentID,
	})

	return c, events, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Child, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Child{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByParent(ctx context.Context, parentID string) ([]Child, error) {
	parentID = strings.TrimSpace(parentID)
	if parentID == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByParent(ctx, parentID)
}

func (s *Service) ListAll(ctx context.Context, filter ListFilter) ([]Child, error) {
	filter.Query = strings.TrimSpace(filter.Query)
	return s.repo.ListAll(ctx, filter)
}

// MatchesQuery aplica la búsqueda por nombre del panel de salud.
// Lo usan los repos que filtran en memoria.
func MatchesQuery(c Child, query string) bool {
	query = strings.TrimSpace(query)
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(c.Name), strings.ToLower(query))
}
