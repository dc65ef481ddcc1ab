package authn

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
	r.Route("/auth", func(ar chi.Router) {
		ar.Post("/login", loginHandler(svc))
		ar.Post("/register", registerHandler(svc))
		ar.Post("/logout", logoutHandler(svc))
		ar.Get("/me", meHandler())
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
}

type sessionResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

type userResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
	Role  string `json:"role"`
}

// @Summary Login contra el servicio clínico remoto
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} sessionResponse
// @Failure 401 {string} string "credenciales inválidas (mensaje upstream)"
// @Router /auth/login [post]
func loginHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		sess, err := svc.Login(r.Context(), Credentials{Email: req.Email, Password: req.Password})
		if err != nil {
			writeAuthError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toSessionResponse(sess))
	}
}

// @Summary Registrar una cuenta de cliente
// @Tags auth
// @Accept json
// @Produce json
// @Success 201 {object} sessionResponse
// @Router /auth/register [post]
func registerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		sess, err := svc.Register(r.Context(), RegisterInput{
			Name:     req.Name,
			Email:    req.Email,
			Password: req.Password,
			Phone:    req.Phone,
		})
		if err != nil {
			writeAuthError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toSessionResponse(sess))
	}
}

func logoutHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _ := middleware.GetSession(r.Context())
		if err := svc.Logout(r.Context(), sess.Token); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// @Summary Identidad resuelta desde la sesión
// @Tags auth
// @Produce json
// @Success 200 {object} userResponse
// @Failure 401 {string} string
// @Router /auth/me [get]
func meHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		writeJSON(w, http.StatusOK, toUserResponse(claims))
	}
}

// writeAuthError propaga el status y el body crudo del upstream, para
// que el caller vea el mismo mensaje que daba el servicio remoto.
func writeAuthError(w http.ResponseWriter, err error) {
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

func toSessionResponse(sess auth.Session) sessionResponse {
	return sessionResponse{
		Token: sess.Token,
		User:  toUserResponse(sess.User),
	}
}

func toUserResponse(c auth.Claims) userResponse {
	return userResponse{
		ID:    c.UserID,
		Name:  c.Name,
		Email: c.Email,
		Phone: c.Phone,
		Role:  string(c.Role),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
