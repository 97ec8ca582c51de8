package schedule

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"child-immunization-tracker/internal/middleware"
	"child-immunization-tracker/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

// ChildLookup evita importar el paquete children (rompe ciclos).
type ChildLookup interface {
	ParentOf(ctx context.Context, childID string) (string, error)
}

func RegisterRoutes(r chi.Router, svc *Service, children ChildLookup) {
	r.Route("/children/{childID}/schedule", func(sr chi.Router) {
		sr.Get("/", viewScheduleHandler(svc, children))

		// Solo personal de salud marca dosis aplicadas
		sr.Post("/{vaccine}/done", markDoneHandler(svc, children))
	})
}

// vaccinationResponse representa una dosis programada de un niño.
type vaccinationResponse struct {
	ChildID       string        `json:"child_id"`
	Name          string        `json:"name"`
	DueDate       string        `json:"due_date"`
	Status        Status        `json:"status" enums:"Due,Done"`
	DisplayStatus DisplayStatus `json:"display_status" enums:"Due,Missed,Done"`
	GivenDate     *string       `json:"given_date"`
}

// viewScheduleHandler godoc
// @Summary Ver calendario de un niño
// @Description Devuelve las dosis del niño ordenadas por fecha, cada una con su estado derivado (Due/Missed/Done). El padre dueño o cualquier personal de salud pueden verlo.
// @Tags schedule
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token"
// @Param childID path string true "ID del niño"
// @Param status query string false "Lista CSV de estados a incluir (Due,Missed,Done)"
// @Success 200 {array} vaccinationResponse
// @Failure 400 {string} string "status inválido"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "child not found"
// @Router /children/{childID}/schedule [get]
func viewScheduleHandler(svc *Service, children ChildLookup) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		childID := chi.URLParam(r, "childID")
		parentID, err := children.ParentOf(r.Context(), childID)
		if err != nil {
			http.Error(w, "child not found", http.StatusNotFound)
			return
		}

		// Personal de salud ve todo; un padre solo a sus hijos
		if claims.Role != auth.RoleHealthcareWorker && parentID != claims.UserID {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		filter, err := parseListFilter(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		items, err := svc.View(r.Context(), childID, filter)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]vaccinationResponse, 0, len(items))
		for _, ce := range items {
			out = append(out, toVaccinationResponse(ce.Event, ce.Display))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// markDoneHandler godoc
// @Summary Marcar dosis como aplicada
// @Description Cambia la dosis de Due a Done con fecha de aplicación = hoy. Solo personal de salud. La transición es irreversible.
// @Tags schedule
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token"
// @Param childID path string true "ID del niño"
// @Param vaccine path string true "Nombre de la vacuna (URL-encoded)"
// @Success 200 {object} vaccinationResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "child not found / vaccination not found"
// @Failure 409 {string} string "vaccination already marked as done"
// @Router /children/{childID}/schedule/{vaccine}/done [post]
func markDoneHandler(svc *Service, children ChildLookup) http.HandlerFunc {
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

		childID := chi.URLParam(r, "childID")
		if _, err := children.ParentOf(r.Context(), childID); err != nil {
			http.Error(w, "child not found", http.StatusNotFound)
			return
		}

		name, err := url.PathUnescape(chi.URLParam(r, "vaccine"))
		if err != nil {
			http.Error(w, "invalid vaccine name", http.StatusBadRequest)
			return
		}

		e, err := svc.MarkDone(r.Context(), childID, name)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrNotFound):
				http.Error(w, err.Error(), http.StatusNotFound)
			case errors.Is(err, ErrAlreadyDone):
				http.Error(w, err.Error(), http.StatusConflict)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toVaccinationResponse(e, DisplayDone))
	}
}

func parseListFilter(r *http.Request) (ListFilter, error) {
	var filter ListFilter

	// status=Missed,Due
	v := strings.TrimSpace(r.URL.Query().Get("status"))
	if v == "" {
		return filter, nil
	}
	for _, p := range strings.Split(v, ",") {
		st := DisplayStatus(strings.TrimSpace(p))
		switch st {
		case "":
			continue
		case DisplayDue, DisplayMissed, DisplayDone:
			filter.Statuses = append(filter.Statuses, st)
		default:
			return ListFilter{}, errors.New("status must be Due, Missed or Done")
		}
	}
	return filter, nil
}

func toVaccinationResponse(e Event, display DisplayStatus) vaccinationResponse {
	var given *string
	if e.GivenDate != nil {
		s := FormatDate(*e.GivenDate)
		given = &s
	}
	return vaccinationResponse{
		ChildID:       e.ChildID,
		Name:          e.Name,
		DueDate:       FormatDate(e.DueDate),
		Status:        e.Status,
		DisplayStatus: display,
		GivenDate:     given,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
