package clients

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("client not found")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type UpsertInput struct {
	ID    string // vacío => crear
	Name  string
	Phone string
}

// Upsert crea o edita un cliente (el formulario manda todos los campos).
func (s *Service) Upsert(ctx context.Context, in UpsertInput) (Client, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Client{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Phone) == "" {
		return Client{}, ErrInvalidInput
	}

	c := Client{
		ID:    strings.TrimSpace(in.ID),
		Name:  strings.TrimSpace(in.Name),
		Phone: strings.TrimSpace(in.Phone),
	}

	if c.ID == "" {
		c.ID = uuid.NewString()
		if err := s.repo.Create(ctx, c); err != nil {
			return Client{}, err
		}
		return c, nil
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return Client{}, err
	}
	return c, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Client, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Client, error) {
	return s.repo.List(ctx)
}
