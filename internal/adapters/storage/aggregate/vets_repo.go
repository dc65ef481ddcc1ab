package aggregate

import (
	"context"
	"errors"

	"pochita-clinic/internal/domain/vets"
)

var errVetNotFound = errors.New("vet not found")

type vetsRepo struct {
	store *Store
}

func NewVetsRepo(store *Store) vets.Repository {
	return &vetsRepo{store: store}
}

func (r *vetsRepo) List(ctx context.Context) ([]vets.Vet, error) {
	doc, _, err := r.store.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]vets.Vet, 0, len(doc.Vets))
	for _, rec := range doc.Vets {
		out = append(out, rec.toDomain())
	}
	return out, nil
}

func (r *vetsRepo) GetByID(ctx context.Context, id string) (vets.Vet, error) {
	doc, _, err := r.store.load(ctx)
	if err != nil {
		return vets.Vet{}, err
	}
	for _, rec := range doc.Vets {
		if rec.ID == id {
			return rec.toDomain(), nil
		}
	}
	return vets.Vet{}, errVetNotFound
}
