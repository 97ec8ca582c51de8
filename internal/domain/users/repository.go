package users

import (
	"context"
	"time"

	"child-immunization-tracker/internal/ports/auth"
)

type Repository interface {
	Create(ctx context.Context, u User) error
	GetByID(ctx context.Context, id string) (User, error)
	// SetRole crea el usuario si no existía (tokens emitidos afuera o modo dev).
	SetRole(ctx context.Context, id string, role auth.Role, at time.Time) error
}
