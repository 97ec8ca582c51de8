package notifications

import "time"

type Kind string

const (
	KindMissed   Kind = "missed"
	KindUpcoming Kind = "upcoming"
)

// Record es un aviso en la bandeja de un usuario.
// El ID es determinístico ({kind}-{childID}-{vaccine}) y funciona como clave de idempotencia.
type Record struct {
	ID     string
	UserID string

	Kind        Kind
	ChildID     string
	ChildName   string
	VaccineName string
	DueDate     time.Time

	Message string
	Read    bool

	CreatedAt time.Time
}
