package dashboard

import (
	"child-immunization-tracker/internal/domain/children"
	"child-immunization-tracker/internal/domain/notifications"
	"child-immunization-tracker/internal/domain/schedule"
	"child-immunization-tracker/internal/ports/auth"
)

// ChildSummary resume el calendario de un niño según el clasificador.
type ChildSummary struct {
	Child children.Child

	Done   int
	Due    int
	Missed int

	// NextDue: la próxima dosis pendiente (Due o Missed) por fecha; nil si completó todo.
	NextDue *schedule.ClassifiedEvent
}

type View struct {
	Role     auth.Role
	Query    string
	Children []ChildSummary

	// NewNotifications: avisos creados en esta carga (solo padres).
	NewNotifications []notifications.Record
}
