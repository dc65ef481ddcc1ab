// Package authn maneja login/registro contra el servicio remoto y el
// ciclo de vida de la sesión local. El token remoto se usa tal cual
// como clave de sesión; el rol se confía desde la sesión cacheada, no
// se revalida upstream en cada request.
package authn

import (
	"context"
	"errors"
	"strings"
	"time"

	"pochita-clinic/internal/adapters/backend/clinicapi"
	"pochita-clinic/internal/ports/auth"
)

var ErrInvalidInput = errors.New("authn: invalid input")

type Service struct {
	api      *clinicapi.Client
	sessions auth.Store
	now      func() time.Time
}

func NewService(api *clinicapi.Client, sessions auth.Store) *Service {
	return &Service{
		api:      api,
		sessions: sessions,
		now:      time.Now,
	}
}

type Credentials struct {
	Email    string
	Password string
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
}

// Login autentica upstream y cachea la sesión. Un login fallido no toca
// el store: la sesión anterior (si la hubiera) sigue viva.
func (s *Service) Login(ctx context.Context, in Credentials) (auth.Session, error) {
	if strings.TrimSpace(in.Email) == "" || in.Password == "" {
		return auth.Session{}, ErrInvalidInput
	}

	resp, err := s.api.Login(ctx, clinicapi.LoginInput{
		Email:    strings.TrimSpace(in.Email),
		Password: in.Password,
	})
	if err != nil {
		return auth.Session{}, err
	}
	return s.storeSession(ctx, resp)
}

// Register crea la cuenta upstream (siempre nace como cliente) y deja
// al usuario logueado de una vez.
func (s *Service) Register(ctx context.Context, in RegisterInput) (auth.Session, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" || in.Password == "" {
		return auth.Session{}, ErrInvalidInput
	}

	resp, err := s.api.Register(ctx, clinicapi.RegisterInput{
		Name:     strings.TrimSpace(in.Name),
		Email:    strings.TrimSpace(in.Email),
		Password: in.Password,
		Phone:    strings.TrimSpace(in.Phone),
	})
	if err != nil {
		return auth.Session{}, err
	}
	return s.storeSession(ctx, resp)
}

func (s *Service) Logout(ctx context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return nil
	}
	return s.sessions.Delete(ctx, token)
}

func (s *Service) storeSession(ctx context.Context, resp clinicapi.AuthResponse) (auth.Session, error) {
	role, ok := auth.ParseRole(resp.User.Role)
	if !ok {
		// rol desconocido upstream: lo tratamos como cliente, que es el
		// rol de menor privilegio
		role = auth.RoleCliente
	}

	sess := auth.Session{
		Token: resp.Token,
		User: auth.Claims{
			UserID: resp.User.ID,
			Name:   resp.User.Name,
			Email:  resp.User.Email,
			Phone:  resp.User.Phone,
			Role:   role,
		},
		CreatedAt: s.now(),
	}

	if err := s.sessions.Put(ctx, sess); err != nil {
		return auth.Session{}, err
	}
	return sess, nil
}
