package notifications

import (
	"fmt"
	"time"

	"child-immunization-tracker/internal/domain/schedule"
)

// UpcomingWindowDays: una dosis vence "pronto" si cae entre hoy y hoy+7, inclusive.
const UpcomingWindowDays = 7

// ChildRef es lo mínimo del niño que necesitan las reglas.
type ChildRef struct {
	ID   string
	Name string
}

func RecordID(kind Kind, childID, vaccineName string) string {
	return fmt.Sprintf("%s-%s-%s", kind, childID, vaccineName)
}

// Evaluate aplica las reglas de aviso a las dosis de un niño. No toca el store:
// devuelve intenciones de creación, sin CreatedAt ni UserID.
// Las dos reglas se evalúan por separado para cada dosis.
func Evaluate(today time.Time, child ChildRef, events []schedule.Event) []Record {
	today = schedule.Day(today)
	horizon := schedule.AddDays(today, UpcomingWindowDays)

	out := make([]Record, 0)
	for _, e := range events {
		due := schedule.Day(e.DueDate)

		switch schedule.Classify(e, today) {
		case schedule.DisplayMissed:
			out = append(out, newRecord(KindMissed, child, e,
				fmt.Sprintf("ACTION REQUIRED: %s's %s vaccine was due on %s.", child.Name, e.Name, schedule.FormatDate(due))))
		case schedule.DisplayDue:
			if due.After(horizon) {
				continue
			}
			out = append(out, newRecord(KindUpcoming, child, e,
				fmt.Sprintf("REMINDER: %s's %s vaccine is due on %s.", child.Name, e.Name, schedule.FormatDate(due))))
		}
	}
	return out
}

func newRecord(kind Kind, child ChildRef, e schedule.Event, msg string) Record {
	return Record{
		ID:          RecordID(kind, child.ID, e.Name),
		Kind:        kind,
		ChildID:     child.ID,
		ChildName:   child.Name,
		VaccineName: e.Name,
		DueDate:     schedule.Day(e.DueDate),
		Message:     msg,
		Read:        false,
	}
}
