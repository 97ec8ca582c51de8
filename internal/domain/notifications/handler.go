package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"child-immunization-tracker/internal/domain/schedule"
	"child-immunization-tracker/internal/middleware"
	"child-immunization-tracker/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

// ScheduleSource entrega la foto actual de los hijos de un padre.
// Evita importar children/schedule desde acá.
type ScheduleSource interface {
	SchedulesFor(ctx context.Context, parentID string) ([]ChildSchedule, error)
}

func RegisterRoutes(r chi.Router, svc *Service, schedules ScheduleSource) {
	r.Route("/me/notifications", func(nr chi.Router) {
		nr.Get("/", listNotificationsHandler(svc))
		nr.Post("/sync", syncNotificationsHandler(svc, schedules))
		nr.Post("/{notificationID}/read", markReadHandler(svc))
	})
}

// NotificationResponse representa un aviso de la bandeja. Lo reutiliza el sync del dashboard.
type NotificationResponse struct {
	ID          string    `json:"id"`
	Kind        Kind      `json:"kind" enums:"missed,upcoming"`
	ChildID     string    `json:"child_id"`
	ChildName   string    `json:"child_name"`
	VaccineName string    `json:"vaccine_name"`
	DueDate     string    `json:"due_date"`
	Message     string    `json:"message"`
	Read        bool      `json:"read"`
	CreatedAt   time.Time `json:"created_at"`
}

type inboxResponse struct {
	Items       []NotificationResponse `json:"items"`
	UnreadCount int                    `json:"unread_count"`
}

// listNotificationsHandler godoc
// @Summary Bandeja de avisos
// @Description Lista los avisos del usuario autenticado, más recientes primero, con el conteo de no leídos.
// @Tags notifications
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token"
// @Success 200 {object} inboxResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 500 {string} string "internal error"
// @Router /me/notifications [get]
func listNotificationsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, unread, err := svc.List(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, inboxResponse{
			Items:       ToNotificationResponses(items),
			UnreadCount: unread,
		})
	}
}

type syncResponse struct {
	Created []NotificationResponse `json:"created"`
}

// syncNotificationsHandler godoc
// @Summary Evaluar avisos
// @Description Corre las reglas de aviso sobre los hijos del padre y crea solo los que no existían.
// @Tags notifications
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token"
// @Success 200 {object} syncResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 500 {string} string "internal error"
// @Router /me/notifications/sync [post]
func syncNotificationsHandler(svc *Service, schedules ScheduleSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if claims.Role != auth.RoleParent {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		items, err := schedules.SchedulesFor(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		created, err := svc.Sync(r.Context(), claims.UserID, items)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, syncResponse{Created: ToNotificationResponses(created)})
	}
}

// markReadHandler godoc
// @Summary Marcar aviso como leído
// @Tags notifications
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token"
// @Param notificationID path string true "ID del aviso (URL-encoded)"
// @Success 204
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "notification not found"
// @Failure 500 {string} string "internal error"
// @Router /me/notifications/{notificationID}/read [post]
func markReadHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		id, err := url.PathUnescape(chi.URLParam(r, "notificationID"))
		if err != nil {
			http.Error(w, "invalid notification id", http.StatusBadRequest)
			return
		}

		if err := svc.MarkRead(r.Context(), claims.UserID, id); err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrNotFound):
				http.Error(w, err.Error(), http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func ToNotificationResponses(items []Record) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(items))
	for _, n := range items {
		out = append(out, NotificationResponse{
			ID:          n.ID,
			Kind:        n.Kind,
			ChildID:     n.ChildID,
			ChildName:   n.ChildName,
			VaccineName: n.VaccineName,
			DueDate:     schedule.FormatDate(n.DueDate),
			Message:     n.Message,
			Read:        n.Read,
			CreatedAt:   n.CreatedAt,
		})
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
