package appointments

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, a Appointment) error
	Update(ctx context.Context, a Appointment) error
	GetByID(ctx context.Context, id string) (Appointment, error)
	List(ctx context.Context) ([]Appointment, error)

	// ListByVetBetween devuelve las citas del vet con from <= fecha < to.
	// No filtra por status: una cita cancelada sigue bloqueando su slot.
	ListByVetBetween(ctx context.Context, vetID string, from, to time.Time) ([]Appointment, error)
}
