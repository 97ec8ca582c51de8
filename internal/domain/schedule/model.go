package schedule

import "time"

// Status es el estado persistido de una dosis. Solo existe Due -> Done.
type Status string

const (
	StatusDue  Status = "Due"
	StatusDone Status = "Done"
)

// DisplayStatus es el estado derivado que ven los usuarios.
// Missed nunca se persiste: sale de Classify.
type DisplayStatus string

const (
	DisplayDue    DisplayStatus = "Due"
	DisplayMissed DisplayStatus = "Missed"
	DisplayDone   DisplayStatus = "Done"
)

// Event es una dosis programada para un niño, clave (ChildID, Name).
type Event struct {
	ChildID string
	Name    string

	DueDate time.Time // fecha civil (medianoche UTC)
	Status  Status

	// GivenDate solo existe cuando Status == Done.
	GivenDate *time.Time
}

// ClassifiedEvent acompaña un evento con su estado derivado para un "hoy" dado.
type ClassifiedEvent struct {
	Event
	Display DisplayStatus
}
