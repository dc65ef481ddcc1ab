package aggregate

import (
	"context"
	"errors"

	"pochita-clinic/internal/domain/clients"
)

type clientsRepo struct {
	store *Store
}

func NewClientsRepo(store *Store) clients.Repository {
	return &clientsRepo{store: store}
}

func (r *clientsRepo) Create(ctx context.Context, c clients.Client) error {
	return r.store.mutate(ctx, func(doc *document) error {
		for _, existing := range doc.Clients {
			if existing.ID == c.ID {
				return errors.New("client already exists")
			}
		}
		doc.Clients = append(doc.Clients, toClientRecord(c))
		return nil
	})
}

func (r *clientsRepo) Update(ctx context.Context, c clients.Client) error {
	return r.store.mutate(ctx, func(doc *document) error {
		for i, existing := range doc.Clients {
			if existing.ID == c.ID {
				doc.Clients[i] = toClientRecord(c)
				return nil
			}
		}
		return clients.ErrNotFound
	})
}

func (r *clientsRepo) GetByID(ctx context.Context, id string) (clients.Client, error) {
	doc, _, err := r.store.load(ctx)
	if err != nil {
		return clients.Client{}, err
	}
	for _, rec := range doc.Clients {
		if rec.ID == id {
			return rec.toDomain(), nil
		}
	}
	return clients.Client{}, clients.ErrNotFound
}

func (r *clientsRepo) List(ctx context.Context) ([]clients.Client, error) {
	doc, _, err := r.store.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]clients.Client, 0, len(doc.Clients))
	for _, rec := range doc.Clients {
		out = append(out, rec.toDomain())
	}
	return out, nil
}
