package aggregate

import (
	"context"
	"errors"
	"time"

	"pochita-clinic/internal/domain/appointments"
)

type appointmentsRepo struct {
	store *Store
}

func NewAppointmentsRepo(store *Store) appointments.Repository {
	return &appointmentsRepo{store: store}
}

func (r *appointmentsRepo) Create(ctx context.Context, a appointments.Appointment) error {
	return r.store.mutate(ctx, func(doc *document) error {
		for _, existing := range doc.Appointments {
			if existing.ID == a.ID {
				return errors.New("appointment already exists")
			}
		}
		doc.Appointments = append(doc.Appointments, toAppointmentRecord(a))
		return nil
	})
}

func (r *appointmentsRepo) Update(ctx context.Context, a appointments.Appointment) error {
	return r.store.mutate(ctx, func(doc *document) error {
		for i, existing := range doc.Appointments {
			if existing.ID == a.ID {
				doc.Appointments[i] = toAppointmentRecord(a)
				return nil
			}
		}
		return appointments.ErrNotFound
	})
}

func (r *appointmentsRepo) GetByID(ctx context.Context, id string) (appointments.Appointment, error) {
	doc, _, err := r.store.load(ctx)
	if err != nil {
		return appointments.Appointment{}, err
	}
	for _, rec := range doc.Appointments {
		if rec.ID == id {
			return rec.toDomain(), nil
		}
	}
	return appointments.Appointment{}, appointments.ErrNotFound
}

func (r *appointmentsRepo) List(ctx context.Context) ([]appointments.Appointment, error) {
	doc, _, err := r.store.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]appointments.Appointment, 0, len(doc.Appointments))
	for _, rec := range doc.Appointments {
		out = append(out, rec.toDomain())
	}
	return out, nil
}

func (r *appointmentsRepo) ListByVetBetween(ctx context.Context, vetID string, from, to time.Time) ([]appointments.Appointment, error) {
	doc, _, err := r.store.load(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]appointments.Appointment, 0)
	for _, rec := range doc.Appointments {
		if rec.VetID != vetID {
			continue
		}
		if rec.Date.Before(from) || !rec.Date.Before(to) {
			continue
		}
		out = append(out, rec.toDomain())
	}
	return out, nil
}
