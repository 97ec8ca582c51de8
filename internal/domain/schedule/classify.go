package schedule

import "time"

// Classify es la única fuente de verdad del estado mostrado:
//  1. Done persistido -> Done
//  2. vencida antes de hoy (solo fecha) -> Missed
//  3. resto -> Due
func Classify(e Event, today time.Time) DisplayStatus {
	if e.Status == StatusDone {
		return DisplayDone
	}
	if Day(e.DueDate).Before(Day(today)) {
		return DisplayMissed
	}
	return DisplayDue
}

// ClassifyAll aplica Classify a cada evento manteniendo el orden.
func ClassifyAll(events []Event, today time.Time) []ClassifiedEvent {
	out := make([]ClassifiedEvent, 0, len(events))
	for _, e := range events {
		out = append(out, ClassifiedEvent{Event: e, Display: Classify(e, today)})
	}
	return out
}
