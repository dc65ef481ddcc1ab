package aggregate

import (
	"context"
	"errors"

	"pochita-clinic/internal/domain/treatments"
)

type treatmentsRepo struct {
	store *Store
}

func NewTreatmentsRepo(store *Store) treatments.Repository {
	return &treatmentsRepo{store: store}
}

func (r *treatmentsRepo) CreateTreatment(ctx context.Context, t treatments.Treatment) error {
	return r.store.mutate(ctx, func(doc *document) error {
		for _, existing := range doc.Treatments {
			if existing.ID == t.ID {
				return errors.New("treatment already exists")
			}
		}
		doc.Treatments = append(doc.Treatments, toTreatmentRecord(t))
		return nil
	})
}

func (r *treatmentsRepo) ListByAppointment(ctx context.Context, appointmentID string) ([]treatments.Treatment, error) {
	doc, _, err := r.store.load(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]treatments.Treatment, 0)
	for _, rec := range doc.Treatments {
		if rec.AppointmentID == appointmentID {
			out = append(out, rec.toDomain())
		}
	}
	return out, nil
}

func (r *treatmentsRepo) CreateFollowUps(ctx context.Context, items []treatments.FollowUp) error {
	if len(items) == 0 {
		return nil
	}
	return r.store.mutate(ctx, func(doc *document) error {
		for _, f := range items {
			doc.FollowUps = append(doc.FollowUps, toFollowUpRecord(f))
		}
		return nil
	})
}

func (r *treatmentsRepo) ListFollowUps(ctx context.Context, treatmentID string) ([]treatments.FollowUp, error) {
	doc, _, err := r.store.load(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]treatments.FollowUp, 0)
	for _, rec := range doc.FollowUps {
		if rec.TreatmentID == treatmentID {
			out = append(out, rec.toDomain())
		}
	}
	return out, nil
}

func (r *treatmentsRepo) GetFollowUp(ctx context.Context, id string) (treatments.FollowUp, error) {
	doc, _, err := r.store.load(ctx)
	if err != nil {
		return treatments.FollowUp{}, err
	}
	for _, rec := range doc.FollowUps {
		if rec.ID == id {
			return rec.toDomain(), nil
		}
	}
	return treatments.FollowUp{}, treatments.ErrNotFound
}

func (r *treatmentsRepo) UpdateFollowUp(ctx context.Context, f treatments.FollowUp) error {
	return r.store.mutate(ctx, func(doc *document) error {
		for i, rec := range doc.FollowUps {
			if rec.ID == f.ID {
				doc.FollowUps[i] = toFollowUpRecord(f)
				return nil
			}
		}
		return treatments.ErrNotFound
	})
}
