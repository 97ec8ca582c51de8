package users

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"child-immunization-tracker/internal/middleware"
	"child-immunization-tracker/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/auth/anonymous", anonymousSignInHandler(svc))

	// Sin Route("/me"): /me/notifications lo monta otro módulo.
	r.Get("/me", meHandler(svc))
	r.Put("/me/role", setRoleHandler(svc))
}

type userResponse struct {
	ID        string     `json:"id"`
	Anonymous bool       `json:"anonymous"`
	Role      *auth.Role `json:"role" enums:"parent,healthcare_worker"`
}

type sessionResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      userResponse `json:"user"`
}

type setRoleRequest struct {
	Role auth.Role `json:"role"`
}

// anonymousSignInHandler godoc
// @Summary Ingreso anónimo
// @Description Crea un usuario sin rol y devuelve un bearer token.
// @Tags users
// @Produce json
// @Success 201 {object} sessionResponse
// @Failure 503 {string} string "token issuer not configured"
// @Failure 500 {string} string "internal error"
// @Router /auth/anonymous [post]
func anonymousSignInHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := svc.SignInAnonymous(r.Context())
		if err != nil {
			if errors.Is(err, ErrIssuerNotEnabled) {
				http.Error(w, err.Error(), http.StatusServiceUnavailable)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, sessionResponse{
			Token:     sess.Token,
			ExpiresAt: sess.ExpiresAt,
			User:      toUserResponse(sess.User),
		})
	}
}

// meHandler godoc
// @Summary Usuario actual
// @Description Devuelve id y rol. role=null indica que el usuario todavía debe elegir rol.
// @Tags users
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token"
// @Success 200 {object} userResponse
// @Failure 401 {string} string "unauthorized"
// @Router /me [get]
func meHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		u, err := svc.Get(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if claims.Anonymous {
			u.Anonymous = true
		}

		writeJSON(w, http.StatusOK, toUserResponse(u))
	}
}

// setRoleHandler godoc
// @Summary Elegir rol
// @Tags users
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token"
// @Param body body setRoleRequest true "parent | healthcare_worker"
// @Success 200 {object} userResponse
// @Failure 400 {string} string "invalid json / role must be parent or healthcare_worker"
// @Failure 401 {string} string "unauthorized"
// @Router /me/role [put]
func setRoleHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req setRoleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		u, err := svc.SetRole(r.Context(), claims.UserID, req.Role)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidRole), errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toUserResponse(u))
	}
}

func toUserResponse(u User) userResponse {
	out := userResponse{ID: u.ID, Anonymous: u.Anonymous}
	if u.Role != "" {
		role := u.Role
		out.Role = &role
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
