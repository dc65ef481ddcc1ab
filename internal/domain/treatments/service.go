package treatments

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

// followUpOffsetsDays son los días de revisión post-cirugía,
// cada uno a las 10:00 hora local.
var followUpOffsetsDays = []int{1, 7, 14}

const followUpHour = 10

// AppointmentDates resuelve la fecha de la cita dueña del tratamiento.
// Lo implementa appointments.Service (ver appointments/dates.go).
type AppointmentDates interface {
	DateOf(ctx context.Context, appointmentID string) (time.Time, error)
}

type Service struct {
	repo         Repository
	appointments AppointmentDates
	loc          *time.Location
	now          func() time.Time
}

func NewService(repo Repository, appointments AppointmentDates, loc *time.Location) *Service {
	if loc == nil {
		loc = time.Local
	}
	return &Service{
		repo:         repo,
		appointments: appointments,
		loc:          loc,
		now:          time.Now,
	}
}

type CreateInput struct {
	AppointmentID   string
	Procedure       string
	ApprovedByOwner bool
	AdditionalCost  *float64
	Notes           string
}

// Create registra el tratamiento y, si el procedimiento es "Cirugía menor",
// genera exactamente tres follow-ups a +1, +7 y +14 días de la fecha de la
// cita, fijados a las 10:00 locales. La regla corre una sola vez por
// creación y nunca para otros procedimientos.
func (s *Service) Create(ctx context.Context, in CreateInput) (Treatment, []FollowUp, error) {
	appointmentID := strings.TrimSpace(in.AppointmentID)
	if appointmentID == "" {
		return Treatment{}, nil, ErrInvalidInput
	}
	procedure, ok := ParseProcedure(strings.TrimSpace(in.Procedure))
	if !ok {
		return Treatment{}, nil, ErrInvalidInput
	}
	if in.AdditionalCost != nil && *in.AdditionalCost < 0 {
		return Treatment{}, nil, ErrInvalidInput
	}

	aptDate, err := s.appointments.DateOf(ctx, appointmentID)
	if err != nil {
		return Treatment{}, nil, ErrNotFound
	}

	t := Treatment{
		ID:              uuid.NewString(),
		AppointmentID:   appointmentID,
		Procedure:       procedure,
		ApprovedByOwner: in.ApprovedByOwner,
		AdditionalCost:  in.AdditionalCost,
		Notes:           strings.TrimSpace(in.Notes),
		CreatedAt:       s.now(),
	}

	if err := s.repo.CreateTreatment(ctx, t); err != nil {
		return Treatment{}, nil, err
	}

	if procedure != ProcedureCirugiaMenor {
		return t, nil, nil
	}

	followUps := s.scheduleFollowUps(t.ID, aptDate)
	if err := s.repo.CreateFollowUps(ctx, followUps); err != nil {
		return Treatment{}, nil, err
	}
	return t, followUps, nil
}

func (s *Service) scheduleFollowUps(treatmentID string, aptDate time.Time) []FollowUp {
	base := aptDate.In(s.loc)

	out := make([]FollowUp, 0, len(followUpOffsetsDays))
	for _, days := range followUpOffsetsDays {
		d := base.AddDate(0, 0, days)
		out = append(out, FollowUp{
			ID:          uuid.NewString(),
			TreatmentID: treatmentID,
			Date:        time.Date(d.Year(), d.Month(), d.Day(), followUpHour, 0, 0, 0, s.loc),
			Notes:       "",
			Completed:   false,
		})
	}
	return out
}

func (s *Service) ListByAppointment(ctx context.Context, appointmentID string) ([]Treatment, error) {
	return s.repo.ListByAppointment(ctx, appointmentID)
}

func (s *Service) ListFollowUps(ctx context.Context, treatmentID string) ([]FollowUp, error) {
	return s.repo.ListFollowUps(ctx, treatmentID)
}

// CompleteFollowUp marca la revisión como completada.
func (s *Service) CompleteFollowUp(ctx context.Context, id string) (FollowUp, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return FollowUp{}, ErrInvalidInput
	}

	f, err := s.repo.GetFollowUp(ctx, id)
	if err != nil {
		return FollowUp{}, err
	}

	f.Completed = true
	if err := s.repo.UpdateFollowUp(ctx, f); err != nil {
		return FollowUp{}, err
	}
	return f, nil
}
