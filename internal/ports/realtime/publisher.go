package realtime

import "context"

// Publisher notifica cambios del store a quien esté escuchando.
// Los servicios publican después de escribir; nunca mantienen suscripciones.
type Publisher interface {
	Publish(ctx context.Context, topic, kind string, data any)
}

// Nop descarta todo. Es el default de los servicios.
type Nop struct{}

func (Nop) Publish(context.Context, string, string, any) {}

const (
	KindCreated = "created"
	KindUpdated = "updated"
)

// TopicChildren recibe altas de niños.
const TopicChildren = "children"

func TopicSchedule(childID string) string {
	return "children/" + childID + "/schedule"
}

func TopicNotifications(userID string) string {
	return "users/" + userID + "/notifications"
}
