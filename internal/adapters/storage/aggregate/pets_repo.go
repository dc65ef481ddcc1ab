package aggregate

import (
	"context"
	"errors"

	"pochita-clinic/internal/domain/pets"
)

type petsRepo struct {
	store *Store
}

func NewPetsRepo(store *Store) pets.Repository {
	return &petsRepo{store: store}
}

func (r *petsRepo) Create(ctx context.Context, p pets.Pet) error {
	return r.store.mutate(ctx, func(doc *document) error {
		for _, existing := range doc.Pets {
			if existing.ID == p.ID {
				return errors.New("pet already exists")
			}
		}
		doc.Pets = append(doc.Pets, toPetRecord(p))
		return nil
	})
}

func (r *petsRepo) Update(ctx context.Context, p pets.Pet) error {
	return r.store.mutate(ctx, func(doc *document) error {
		for i, existing := range doc.Pets {
			if existing.ID == p.ID {
				doc.Pets[i] = toPetRecord(p)
				return nil
			}
		}
		return pets.ErrNotFound
	})
}

func (r *petsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	doc, _, err := r.store.load(ctx)
	if err != nil {
		return pets.Pet{}, err
	}
	for _, rec := range doc.Pets {
		if rec.ID == id {
			return rec.toDomain(), nil
		}
	}
	return pets.Pet{}, pets.ErrNotFound
}

func (r *petsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	doc, _, err := r.store.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]pets.Pet, 0, len(doc.Pets))
	for _, rec := range doc.Pets {
		out = append(out, rec.toDomain())
	}
	return out, nil
}
