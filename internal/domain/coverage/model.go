package coverage

import (
	"errors"
	"strings"
	"time"

	"child-immunization-tracker/internal/domain/schedule"
)

// AgeBand filtra la cohorte por edad actual en meses.
type AgeBand string

const (
	BandAll    AgeBand = "all"
	Band0to6   AgeBand = "0-6"
	Band7to12  AgeBand = "7-12"
	Band13to60 AgeBand = "13-60"
)

var ErrInvalidAgeBand = errors.New("age_band must be all, 0-6, 7-12 or 13-60")

// ParseAgeBand acepta vacío como "all".
func ParseAgeBand(s string) (AgeBand, error) {
	switch b := AgeBand(strings.TrimSpace(s)); b {
	case "":
		return BandAll, nil
	case BandAll, Band0to6, Band7to12, Band13to60:
		return b, nil
	default:
		return "", ErrInvalidAgeBand
	}
}

// Contains indica si una edad en meses cae dentro de la banda.
// Bordes: 0-6 incluye 6; 7-12 es (6,12]; 13-60 es (12,60].
// Una banda desconocida no filtra.
func (b AgeBand) Contains(months int) bool {
	switch b {
	case Band0to6:
		return months <= 6
	case Band7to12:
		return months > 6 && months <= 12
	case Band13to60:
		return months > 12 && months <= 60
	default:
		return true
	}
}

// Level clasifica el porcentaje de cobertura para la UI.
type Level string

const (
	LevelHigh   Level = "high"   // >= 80
	LevelMedium Level = "medium" // >= 50
	LevelLow    Level = "low"
)

// ChildEvents es la foto de un niño que entra al reporte.
type ChildEvents struct {
	ChildID string
	DOB     time.Time
	Events  []schedule.Event
}

// Entry es la fila del reporte para una vacuna.
// Due incluye también las dosis vencidas (Missed): el reporte no las distingue.
type Entry struct {
	Name     string
	Done     int
	Due      int
	Total    int
	Coverage float64 // porcentaje, 1 decimal
	Level    Level
}

type Report struct {
	AgeBand  AgeBand
	Today    time.Time
	Children int
	Entries  []Entry
}
