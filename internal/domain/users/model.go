package users

import (
	"time"

	"child-immunization-tracker/internal/ports/auth"
)

// User es la cuenta detrás de un token. Role vacío = todavía no eligió rol.
type User struct {
	ID        string
	Anonymous bool
	Role      auth.Role

	CreatedAt time.Time
	UpdatedAt time.Time
}
