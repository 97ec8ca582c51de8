package schedule

import (
	"time"

	"child-immunization-tracker/internal/domain/catalog"
)

// Generate construye una dosis por entrada del catálogo, en orden de catálogo.
// El resultado es una foto del catálogo: cambios posteriores no afectan a
// niños ya registrados.
func Generate(c catalog.Catalog, dob time.Time) []Event {
	birth := Day(dob)

	out := make([]Event, 0, len(c))
	for _, v := range c {
		out = append(out, Event{
			Name:    v.Name,
			DueDate: AddDays(birth, v.OffsetDays),
			Status:  StatusDue,
		})
	}
	return out
}

// GenerateFromString es Generate con la fecha de nacimiento como texto YYYY-MM-DD.
func GenerateFromString(c catalog.Catalog, dob string) ([]Event, error) {
	birth, err := ParseDate(dob)
	if err != nil {
		return nil, err
	}
	return Generate(c, birth), nil
}
