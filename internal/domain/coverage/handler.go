package coverage

import (
	"encoding/json"
	"net/http"
	"strings"

	"child-immunization-tracker/internal/domain/schedule"
	"child-immunization-tracker/internal/middleware"
	"child-immunization-tracker/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/reports/coverage", coverageReportHandler(svc))
}

type entryResponse struct {
	Name     string  `json:"name"`
	Done     int     `json:"done"`
	Due      int     `json:"due"`
	Total    int     `json:"total"`
	Coverage float64 `json:"coverage"`
	Level    Level   `json:"level" enums:"high,medium,low"`
}

type reportResponse struct {
	AgeBand  AgeBand         `json:"age_band"`
	Today    string          `json:"today"`
	Children int             `json:"children"`
	Entries  []entryResponse `json:"entries"`
}

// coverageReportHandler godoc
// @Summary Reporte de cobertura por vacuna
// @Description Cuenta dosis aplicadas / pendientes / totales por vacuna, en orden de catálogo. Las dosis vencidas se cuentan como pendientes (due). Solo personal de salud.
// @Tags reports
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token"
// @Param age_band query string false "all | 0-6 | 7-12 | 13-60 (meses). Por defecto all"
// @Success 200 {object} reportResponse
// @Failure 400 {string} string "age_band inválido"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 500 {string} string "internal error"
// @Router /reports/coverage [get]
func coverageReportHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if claims.Role != auth.RoleHealthcareWorker {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		band, err := ParseAgeBand(r.URL.Query().Get("age_band"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		rep, err := svc.Build(r.Context(), band)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := reportResponse{
			AgeBand:  rep.AgeBand,
			Today:    schedule.FormatDate(rep.Today),
			Children: rep.Children,
			Entries:  make([]entryResponse, 0, len(rep.Entries)),
		}
		for _, e := range rep.Entries {
			out.Entries = append(out.Entries, entryResponse(e))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(out)
	}
}
