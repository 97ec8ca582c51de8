package catalog

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, c Catalog) {
	// Catálogo educativo, público
	r.Get("/vaccines", listVaccinesHandler(c))
}

// vaccineResponse representa una dosis del calendario devuelta por la API.
type vaccineResponse struct {
	Name       string `json:"name"`
	OffsetDays int    `json:"offset_days"`
	MinGapDays int    `json:"min_gap_days"`
	Info       string `json:"info"`
}

// listVaccinesHandler godoc
// @Summary Listar el calendario de vacunación
// @Description Devuelve el catálogo completo en orden de calendario, con texto informativo por dosis.
// @Tags vaccines
// @Produce json
// @Success 200 {array} vaccineResponse
// @Router /vaccines [get]
func listVaccinesHandler(c Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		out := make([]vaccineResponse, 0, len(c))
		for _, v := range c {
			out = append(out, vaccineResponse{
				Name:       v.Name,
				OffsetDays: v.OffsetDays,
				MinGapDays: v.MinGapDays,
				Info:       v.Info,
			})
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(out)
	}
}
