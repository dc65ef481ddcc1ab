package adminusers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pochita-clinic/internal/adapters/backend/clinicapi"
	"pochita-clinic/internal/middleware"
	"pochita-clinic/internal/ports/auth"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/admin/users", func(ar chi.Router) {
		ar.Get("/", listUsersHandler(svc))
		ar.Post("/", createUserHandler(svc))
		ar.Post("/{userID}/activate", activateUserHandler(svc))
	})
}

type createUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
	Role     string `json:"role"`
}

type userResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone,omitempty"`
	Role   string `json:"role"`
	Active bool   `json:"active"`
}

// @Summary Listar cuentas del servicio remoto
// @Tags admin
// @Produce json
// @Success 200 {array} userResponse
// @Router /admin/users [get]
func listUsersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _ := middleware.GetSession(r.Context())

		users, err := svc.List(r.Context(), sess.Token)
		if err != nil {
			writeAdminError(w, err)
			return
		}

		out := make([]userResponse, 0, len(users))
		for _, u := range users {
			out = append(out, toUserResponse(u))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// @Summary Crear cuenta con rol explícito
// @Tags admin
// @Accept json
// @Produce json
// @Success 201 {object} userResponse
// @Router /admin/users [post]
func createUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		role, ok := auth.ParseRole(req.Role)
		if !ok {
			http.Error(w, "unknown role", http.StatusBadRequest)
			return
		}

		sess, _ := middleware.GetSession(r.Context())
		u, err := svc.Create(r.Context(), sess.Token, CreateInput{
			Name:     req.Name,
			Email:    req.Email,
			Password: req.Password,
			Phone:    req.Phone,
			Role:     role,
		})
		if err != nil {
			writeAdminError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toUserResponse(u))
	}
}

func activateUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _ := middleware.GetSession(r.Context())

		if err := svc.Activate(r.Context(), sess.Token, chi.URLParam(r, "userID")); err != nil {
			writeAdminError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeAdminError(w http.ResponseWriter, err error) {
	var apiErr *clinicapi.APIError
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.As(err, &apiErr):
		http.Error(w, apiErr.Error(), apiErr.StatusCode)
	default:
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
	}
}

func toUserResponse(u User) userResponse {
	return userResponse{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Phone:  u.Phone,
		Role:   string(u.Role),
		Active: u.Active,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
