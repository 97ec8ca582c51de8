package children

import (
	"context"

	"child-immunization-tracker/internal/domain/schedule"
)

type Repository interface {
	// CreateWithSchedule guarda el niño y todas sus dosis en una sola operación:
	// o queda todo, o nada.
	CreateWithSchedule(ctx context.Context, c Child, events []schedule.Event) error
	GetByID(ctx context.Context, id string) (Child, error)
	ListByParent(ctx context.Context, parentID string) ([]Child, error)
	ListAll(ctx context.Context, filter ListFilter) ([]Child, error)
}

type ListFilter struct {
	// Query: búsqueda por nombre, sin distinguir mayúsculas.
	Query string
}
