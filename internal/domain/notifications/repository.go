package notifications

import (
	"context"
	"errors"
)

// ErrConflict: ya existe un aviso con ese ID para el usuario.
// Todo store debe rechazar IDs duplicados en Create; nunca sobrescribir.
var ErrConflict = errors.New("notification already exists")

type Repository interface {
	Exists(ctx context.Context, userID, id string) (bool, error)
	Create(ctx context.Context, rec Record) error
	MarkRead(ctx context.Context, userID, id string) error
	ListByUser(ctx context.Context, userID string) ([]Record, error)
}
