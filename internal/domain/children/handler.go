package children

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"child-immunization-tracker/internal/domain/schedule"
	"child-immunization-tracker/internal/middleware"
	"child-immunization-tracker/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/children", func(cr chi.Router) {
		// Alta (solo padres)
		cr.Post("/", registerChildHandler(svc))

		// Perfil (padre dueño o personal de salud)
		cr.Get("/{childID}", getChildHandler(svc))
	})
}

// registerChildRequest es el cuerpo del alta de un niño. Todos los campos son obligatorios.
type registerChildRequest struct {
	Name       string `json:"name"`
	DOB        string `json:"dob"` // YYYY-MM-DD
	ParentName string `json:"parent_name"`
	Contact    string `json:"contact"`
}

// ChildResponse representa un niño devuelto por la API. Lo reutiliza el dashboard.
type ChildResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	DOB        string    `json:"dob"`
	ParentID   string    `json:"parent_id"`
	ParentName string    `json:"parent_name"`
	Contact    string    `json:"contact"`
	CreatedAt  time.Time `json:"created_at"`
}

type registerChildResponse struct {
	ChildResponse
	ScheduledVaccines int `json:"scheduled_vaccines"`
}

// registerChildHandler godoc
// @Summary Registrar un niño
// @Description Crea el niño y genera su calendario completo de vacunación desde el catálogo. Solo usuarios con rol parent.
// @Tags children
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token"
// @Param payload body registerChildRequest true "Datos del niño; dob en formato YYYY-MM-DD"
// @Success 201 {object} registerChildResponse
// @Failure 400 {string} string "invalid json / please fill in all fields / dob inválido"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 500 {string} string "internal error"
// @Router /children [post]
func registerChildHandler(svc *Service) http.HandlerFunc {
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

		var req registerChildRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		c, events, err := svc.Register(r.Context(), claims.UserID, RegisterInput{
			Name:       req.Name,
			DOB:        req.DOB,
			ParentName: req.ParentName,
			Contact:    req.Contact,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, schedule.ErrInvalidDate):
				http.Error(w, "dob must be YYYY-MM-DD", http.StatusBadRequest)
			default:
				http.Error(w, "failed to add child", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, registerChildResponse{
			ChildResponse:     ToChildResponse(c),
			ScheduledVaccines: len(events),
		})
	}
}

// getChildHandler godoc
// @Summary Obtener un niño
// @Description Perfil del niño. El padre dueño o cualquier personal de salud pueden verlo.
// @Tags children
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token"
// @Param childID path string true "ID del niño"
// @Success 200 {object} ChildResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "child not found"
// @Router /children/{childID} [get]
func getChildHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		c, err := svc.GetByID(r.Context(), chi.URLParam(r, "childID"))
		if err != nil {
			http.Error(w, "child not found", http.StatusNotFound)
			return
		}

		if claims.Role != auth.RoleHealthcareWorker && c.ParentID != claims.UserID {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		writeJSON(w, http.StatusOK, ToChildResponse(c))
	}
}

func ToChildResponse(c Child) ChildResponse {
	return ChildResponse{
		ID:         c.ID,
		Name:       c.Name,
		DOB:        schedule.FormatDate(c.DOB),
		ParentID:   c.ParentID,
		ParentName: c.ParentName,
		Contact:    c.Contact,
		CreatedAt:  c.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
