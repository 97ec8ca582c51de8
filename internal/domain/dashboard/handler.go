package dashboard

import (
	"encoding/json"
	"net/http"
	"strings"

	"child-immunization-tracker/internal/domain/children"
	"child-immunization-tracker/internal/domain/notifications"
	"child-immunization-tracker/internal/domain/schedule"
	"child-immunization-tracker/internal/middleware"
	"child-immunization-tracker/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/dashboard", dashboardHandler(svc))
}

type nextDueResponse struct {
	Name          string                 `json:"name"`
	DueDate       string                 `json:"due_date"`
	DisplayStatus schedule.DisplayStatus `json:"display_status" enums:"Due,Missed"`
}

type childSummaryResponse struct {
	children.ChildResponse
	Done    int              `json:"done"`
	Due     int              `json:"due"`
	Missed  int              `json:"missed"`
	NextDue *nextDueResponse `json:"next_due"`
}

type dashboardResponse struct {
	Role             auth.Role                            `json:"role" enums:"parent,healthcare_worker"`
	Query            string                               `json:"query,omitempty"`
	Children         []childSummaryResponse               `json:"children"`
	NewNotifications []notifications.NotificationResponse `json:"new_notifications,omitempty"`
}

// dashboardHandler godoc
// @Summary Tablero según rol
// @Description Padre: sus hijos con resumen de dosis; además evalúa y crea avisos nuevos. Personal de salud: todos los niños, con búsqueda ?q= por nombre.
// @Tags dashboard
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token"
// @Param q query string false "Búsqueda por nombre (solo personal de salud)"
// @Success 200 {object} dashboardResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "role not selected"
// @Failure 500 {string} string "internal error"
// @Router /dashboard [get]
func dashboardHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var (
			view View
			err  error
		)
		switch claims.Role {
		case auth.RoleParent:
			view, err = svc.ForParent(r.Context(), claims.UserID)
		case auth.RoleHealthcareWorker:
			view, err = svc.ForHealthcareWorker(r.Context(), r.URL.Query().Get("q"))
		default:
			http.Error(w, "role not selected", http.StatusForbidden)
			return
		}
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		view.Role = claims.Role

		writeJSON(w, http.StatusOK, toDashboardResponse(view))
	}
}

func toDashboardResponse(v View) dashboardResponse {
	out := dashboardResponse{
		Role:     v.Role,
		Query:    strings.TrimSpace(v.Query),
		Children: make([]childSummaryResponse, 0, len(v.Children)),
	}
	for _, s := range v.Children {
		item := childSummaryResponse{
			ChildResponse: children.ToChildResponse(s.Child),
			Done:          s.Done,
			Due:           s.Due,
			Missed:        s.Missed,
		}
		if s.NextDue != nil {
			item.NextDue = &nextDueResponse{
				Name:          s.NextDue.Name,
				DueDate:       schedule.FormatDate(s.NextDue.DueDate),
				DisplayStatus: s.NextDue.Display,
			}
		}
		out.Children = append(out.Children, item)
	}
	if len(v.NewNotifications) > 0 {
		out.NewNotifications = notifications.ToNotificationResponses(v.NewNotifications)
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
