package pets

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("pet not found")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type UpsertInput struct {
	ID       string // vacío => crear
	Name     string
	Species  string
	Breed    string
	AgeYears *int
	OwnerID  string
}

func (s *Service) Upsert(ctx context.Context, in UpsertInput) (Pet, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Pet{}, ErrInvalidInput
	}
	species, ok := ParseSpecies(strings.TrimSpace(in.Species))
	if !ok {
		return Pet{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.OwnerID) == "" {
		return Pet{}, ErrInvalidInput
	}
	if in.AgeYears != nil && *in.AgeYears < 0 {
		return Pet{}, ErrInvalidInput
	}

	p := Pet{
		ID:       strings.TrimSpace(in.ID),
		Name:     strings.TrimSpace(in.Name),
		Species:  species,
		Breed:    strings.TrimSpace(in.Breed),
		AgeYears: in.AgeYears,
		OwnerID:  strings.TrimSpace(in.OwnerID),
	}

	if p.ID == "" {
		p.ID = uuid.NewString()
		if err := s.repo.Create(ctx, p); err != nil {
			return Pet{}, err
		}
		return p, nil
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Pet, error) {
	return s.repo.List(ctx)
}
