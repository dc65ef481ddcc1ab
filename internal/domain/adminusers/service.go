// Package adminusers cubre la gestión de cuentas del servicio remoto
// (listar, crear staff, reactivar). Solo lo consume el rol admin.
package adminusers

import (
	"context"
	"errors"
	"strings"

	"pochita-clinic/internal/adapters/backend/clinicapi"
	"pochita-clinic/internal/ports/auth"
)

var ErrInvalidInput = errors.New("adminusers: invalid input")

type User struct {
	ID     string
	Name   string
	Email  string
	Phone  string
	Role   auth.Role
	Active bool
}

type Service struct {
	api *clinicapi.Client
}

func NewService(api *clinicapi.Client) *Service {
	return &Service{api: api}
}

func (s *Service) List(ctx context.Context, token string) ([]User, error) {
	raw, err := s.api.AdminUsers(ctx, token)
	if err != nil {
		return nil, err
	}

	out := make([]User, 0, len(raw))
	for _, u := range raw {
		out = append(out, toUser(u))
	}
	return out, nil
}

type CreateInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Role     auth.Role
}

// Create da de alta una cuenta con rol explícito. El remoto espera el
// rol en mayúsculas.
func (s *Service) Create(ctx context.Context, token string, in CreateInput) (User, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" || in.Password == "" {
		return User{}, ErrInvalidInput
	}
	if in.Role == "" {
		return User{}, ErrInvalidInput
	}

	raw, err := s.api.AdminCreateUser(ctx, token, clinicapi.CreateUserInput{
		Name:     strings.TrimSpace(in.Name),
		Email:    strings.TrimSpace(in.Email),
		Password: in.Password,
		Phone:    strings.TrimSpace(in.Phone),
		Role:     strings.ToUpper(string(in.Role)),
	})
	if err != nil {
		return User{}, err
	}
	return toUser(raw), nil
}

func (s *Service) Activate(ctx context.Context, token, userID string) error {
	if strings.TrimSpace(userID) == "" {
		return ErrInvalidInput
	}
	return s.api.AdminActivateUser(ctx, token, userID)
}

func toUser(u clinicapi.User) User {
	role, _ := auth.ParseRole(u.Role)

	// sin flag explícito asumimos cuenta activa
	active := true
	if u.Active != nil {
		active = *u.Active
	}

	return User{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Phone:  u.Phone,
		Role:   role,
		Active: active,
	}
}
