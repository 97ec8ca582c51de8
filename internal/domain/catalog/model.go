package catalog

// VaccineDefinition describe una dosis del calendario de vacunación.
type VaccineDefinition struct {
	Name string

	// OffsetDays: días desde el nacimiento en que la dosis vence.
	OffsetDays int
	// MinGapDays: días mínimos antes de repetir la misma dosis (0 = no se repite).
	MinGapDays int

	Info string
}

// Catalog es la lista ordenada de definiciones que se aplica a todos los niños.
// El orden importa para listados y reportes, no para el cálculo de fechas.
type Catalog []VaccineDefinition

// Names devuelve los nombres en orden de catálogo.
func (c Catalog) Names() []string {
	out := make([]string, 0, len(c))
	for _, v := range c {
		out = append(out, v.Name)
	}
	return out
}

// Lookup busca una definición por nombre.
func (c Catalog) Lookup(name string) (VaccineDefinition, bool) {
	for _, v := range c {
		if v.Name == name {
			return v, true
		}
	}
	return VaccineDefinition{}, false
}

// Index devuelve la posición de name en el catálogo, o -1 si no existe.
func (c Catalog) Index(name string) int {
	for i, v := range c {
		if v.Name == name {
			return i
		}
	}
	return -1
}
