package booking

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"pochita-clinic/internal/adapters/backend/clinicapi"
)

var ErrInvalidInput = errors.New("booking: invalid input")

// CanceledByVet / CanceledByClient son los valores que el contrato
// remoto acepta en DELETE /appointments/{id}?canceledBy=...
const (
	CanceledByVet    = "vet"
	CanceledByClient = "client"
)

type Service struct {
	api *clinicapi.Client
	loc *time.Location
}

func NewService(api *clinicapi.Client, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{api: api, loc: loc}
}

func (s *Service) Vets(ctx context.Context, token string) ([]Vet, error) {
	raw, err := s.api.Vets(ctx, token)
	if err != nil {
		return nil, err
	}

	out := make([]Vet, 0, len(raw))
	for _, v := range raw {
		out = append(out, Vet{ID: v.ID, Name: v.Name})
	}
	return out, nil
}

// Slots pide los horarios libres del vet para una fecha YYYY-MM-DD.
// El remoto devuelve instantes ISO; los devolvemos parseados y en orden
// ascendente sin filtrar nada más (la disponibilidad la decide él).
func (s *Service) Slots(ctx context.Context, token, vetID, date string) ([]time.Time, error) {
	if strings.TrimSpace(vetID) == "" {
		return nil, ErrInvalidInput
	}
	if _, err := time.ParseInLocation("2006-01-02", date, s.loc); err != nil {
		return nil, ErrInvalidInput
	}

	raw, err := s.api.Slots(ctx, token, vetID, date)
	if err != nil {
		return nil, err
	}

	out := make([]time.Time, 0, len(raw))
	for _, iso := range raw {
		t, err := time.Parse(time.RFC3339, iso)
		if err != nil {
			// slot con formato raro: se descarta en vez de romper la lista
			continue
		}
		out = append(out, t.In(s.loc))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out, nil
}

func (s *Service) Appointments(ctx context.Context, token string) ([]Appointment, error) {
	raw, err := s.api.Appointments(ctx, token)
	if err != nil {
		return nil, err
	}

	out := make([]Appointment, 0, len(raw))
	for _, a := range raw {
		out = append(out, s.toAppointment(a))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

type CreateInput struct {
	VetID  string
	Date   time.Time
	Reason string
}

func (s *Service) Create(ctx context.Context, token string, in CreateInput) (Appointment, error) {
	if strings.TrimSpace(in.VetID) == "" || strings.TrimSpace(in.Reason) == "" || in.Date.IsZero() {
		return Appointment{}, ErrInvalidInput
	}

	raw, err := s.api.CreateAppointment(ctx, token, clinicapi.CreateAppointmentInput{
		VetID:   in.VetID,
		DateISO: in.Date.Format(time.RFC3339),
		Reason:  in.Reason,
	})
	if err != nil {
		return Appointment{}, err
	}
	return s.toAppointment(raw), nil
}

func (s *Service) Reschedule(ctx context.Context, token, id, vetID string, date time.Time) (Appointment, error) {
	if strings.TrimSpace(id) == "" || strings.TrimSpace(vetID) == "" || date.IsZero() {
		return Appointment{}, ErrInvalidInput
	}

	raw, err := s.api.RescheduleAppointment(ctx, token, id, clinicapi.RescheduleInput{
		VetID:   vetID,
		DateISO: date.Format(time.RFC3339),
	})
	if err != nil {
		return Appointment{}, err
	}
	return s.toAppointment(raw), nil
}

func (s *Service) Cancel(ctx context.Context, token, id, canceledBy string) (Appointment, error) {
	if canceledBy != CanceledByVet && canceledBy != CanceledByClient {
		return Appointment{}, ErrInvalidInput
	}

	raw, err := s.api.CancelAppointment(ctx, token, id, canceledBy)
	if err != nil {
		return Appointment{}, err
	}
	return s.toAppointment(raw), nil
}

type ManageCreateInput struct {
	UserEmail string
	VetID     string
	Date      time.Time
	Reason    string
}

// ManageCreate agenda una cita a nombre de un cliente identificado por
// email (mostrador de recepción).
func (s *Service) ManageCreate(ctx context.Context, token string, in ManageCreateInput) (Appointment, error) {
	if strings.TrimSpace(in.UserEmail) == "" || strings.TrimSpace(in.VetID) == "" || in.Date.IsZero() {
		return Appointment{}, ErrInvalidInput
	}

	raw, err := s.api.ManageCreateAppointment(ctx, token, clinicapi.ManageAppointmentInput{
		UserEmail: strings.TrimSpace(in.UserEmail),
		VetID:     in.VetID,
		DateISO:   in.Date.Format(time.RFC3339),
		Reason:    in.Reason,
	})
	if err != nil {
		return Appointment{}, err
	}
	return s.toAppointment(raw), nil
}

func (s *Service) toAppointment(a clinicapi.Appointment) Appointment {
	out := Appointment{
		ID:     a.ID,
		UserID: a.UserID,
		VetID:  a.VetID,
		Reason: a.Reason,
		Status: parseStatus(a.Status),
	}

	if t, err := time.Parse(time.RFC3339, a.DateTime); err == nil {
		out.Date = t.In(s.loc)
	}
	if a.Vet != nil {
		out.VetName = a.Vet.Name
	}
	if a.User != nil {
		out.UserName = a.User.Name
		out.UserEmail = a.User.Email
	}
	return out
}
