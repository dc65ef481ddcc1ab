package appointments

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("appointment not found")
)

type Service struct {
	repo Repository
	loc  *time.Location
	now  func() time.Time
}

func NewService(repo Repository, loc *time.Location) *Service {
	if loc == nil {
		loc = time.Local
	}
	return &Service{
		repo: repo,
		loc:  loc,
		now:  time.Now,
	}
}

type CreateInput struct {
	ClientID string
	PetID    string
	VetID    string
	Reason   string
	Date     time.Time
}

// Create registra la cita siempre en estado "programada".
func (s *Service) Create(ctx context.Context, in CreateInput) (Appointment, error) {
	if strings.TrimSpace(in.ClientID) == "" ||
		strings.TrimSpace(in.PetID) == "" ||
		strings.TrimSpace(in.VetID) == "" {
		return Appointment{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Reason) == "" {
		return Appointment{}, ErrInvalidInput
	}
	if in.Date.IsZero() {
		return Appointment{}, ErrInvalidInput
	}

	a := Appointment{
		ID:        uuid.NewString(),
		ClientID:  strings.TrimSpace(in.ClientID),
		PetID:     strings.TrimSpace(in.PetID),
		VetID:     strings.TrimSpace(in.VetID),
		Reason:    strings.TrimSpace(in.Reason),
		Date:      in.Date,
		Status:    StatusProgramada,
		CreatedAt: s.now(),
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return Appointment{}, err
	}
	return a, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Appointment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Appointment{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

// List devuelve todas las citas ordenadas por fecha ascendente.
func (s *Service) List(ctx context.Context) ([]Appointment, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].Date.Before(items[j].Date)
	})
	return items, nil
}

// Reschedule sobreescribe fecha y vet; el status queda como estaba.
func (s *Service) Reschedule(ctx context.Context, id string, date time.Time, vetID string) (Appointment, error) {
	if date.IsZero() || strings.TrimSpace(vetID) == "" {
		return Appointment{}, ErrInvalidInput
	}

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Appointment{}, err
	}

	a.Date = date
	a.VetID = strings.TrimSpace(vetID)

	if err := s.repo.Update(ctx, a); err != nil {
		return Appointment{}, err
	}
	return a, nil
}

func (s *Service) Confirm(ctx context.Context, id string) (Appointment, error) {
	return s.setStatus(ctx, id, StatusConfirmada)
}

func (s *Service) Cancel(ctx context.Context, id string) (Appointment, error) {
	return s.setStatus(ctx, id, StatusCancelada)
}

func (s *Service) Complete(ctx context.Context, id string) (Appointment, error) {
	return s.setStatus(ctx, id, StatusCompletada)
}

// setStatus es una sobreescritura directa, sin guard de transición.
func (s *Service) setStatus(ctx context.Context, id string, status Status) (Appointment, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Appointment{}, err
	}

	a.Status = status
	if err := s.repo.Update(ctx, a); err != nil {
		return Appointment{}, err
	}
	return a, nil
}
