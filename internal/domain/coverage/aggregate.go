package coverage

import (
	"math"
	"time"

	"child-immunization-tracker/internal/domain/catalog"
	"child-immunization-tracker/internal/domain/schedule"
)

// AgeInMonths cuenta meses calendario entre nacimiento y hoy, sin mirar el día.
// Nunca devuelve negativo.
func AgeInMonths(dob, today time.Time) int {
	months := (today.Year()-dob.Year())*12 + int(today.Month()) - int(dob.Month())
	if months < 0 {
		return 0
	}
	return months
}

// Aggregate cuenta dosis por vacuna del catálogo sobre la cohorte filtrada por banda.
// Las filas salen en orden de catálogo; eventos con nombres fuera del catálogo se ignoran.
func Aggregate(c catalog.Catalog, cohort []ChildEvents, band AgeBand, today time.Time) Report {
	entries := make([]Entry, len(c))
	index := make(map[string]int, len(c))
	for i, v := range c {
		entries[i] = Entry{Name: v.Name}
		index[v.Name] = i
	}

	included := 0
	for _, ch := range cohort {
		if !band.Contains(AgeInMonths(ch.DOB, today)) {
			continue
		}
		included++

		for _, e := range ch.Events {
			i, ok := index[e.Name]
			if !ok {
				continue
			}
			entries[i].Total++
			if e.Status == schedule.StatusDone {
				entries[i].Done++
			} else {
				entries[i].Due++
			}
		}
	}

	for i := range entries {
		entries[i].Coverage = percent(entries[i].Done, entries[i].Total)
		entries[i].Level = levelFor(entries[i].Coverage)
	}

	return Report{
		AgeBand:  band,
		Today:    schedule.Day(today),
		Children: included,
		Entries:  entries,
	}
}

func percent(done, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(done)/float64(total)*1000) / 10
}

func levelFor(pct float64) Level {
	switch {
	case pct >= 80:
		return LevelHigh
	case pct >= 50:
		return LevelMedium
	default:
		return LevelLow
	}
}
