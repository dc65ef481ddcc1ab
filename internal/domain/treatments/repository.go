package treatments

import "context"

type Repository interface {
	CreateTreatment(ctx context.Context, t Treatment) error
	ListByAppointment(ctx context.Context, appointmentID string) ([]Treatment, error)

	CreateFollowUps(ctx context.Context, items []FollowUp) error
	ListFollowUps(ctx context.Context, treatmentID string) ([]FollowUp, error)
	GetFollowUp(ctx context.Context, id string) (FollowUp, error)
	UpdateFollowUp(ctx context.Context, f FollowUp) error
}
