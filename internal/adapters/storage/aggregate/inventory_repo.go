package aggregate

import (
	"context"
	"errors"

	"pochita-clinic/internal/domain/inventory"
)

type inventoryRepo struct {
	store *Store
}

func NewInventoryRepo(store *Store) inventory.Repository {
	return &inventoryRepo{store: store}
}

func (r *inventoryRepo) ListProducts(ctx context.Context) ([]inventory.Product, error) {
	doc, _, err := r.store.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]inventory.Product, 0, len(doc.Products))
	for _, rec := range doc.Products {
		out = append(out, rec.toDomain())
	}
	return out, nil
}

func (r *inventoryRepo) GetProduct(ctx context.Context, id string) (inventory.Product, error) {
	doc, _, err := r.store.load(ctx)
	if err != nil {
		return inventory.Product{}, err
	}
	for _, rec := range doc.Products {
		if rec.ID == id {
			return rec.toDomain(), nil
		}
	}
	return inventory.Product{}, inventory.ErrNotFound
}

func (r *inventoryRepo) UpdateProduct(ctx context.Context, p inventory.Product) error {
	return r.UpdateProducts(ctx, []inventory.Product{p})
}

// UpdateProducts reescribe varias filas de stock en una sola escritura
// del blob (el checkout entero es un write).
func (r *inventoryRepo) UpdateProducts(ctx context.Context, items []inventory.Product) error {
	if len(items) == 0 {
		return nil
	}
	return r.store.mutate(ctx, func(doc *document) error {
		for _, p := range items {
			found := false
			for i, rec := range doc.Products {
				if rec.ID == p.ID {
					doc.Products[i] = toProductRecord(p)
					found = true
					break
				}
			}
			if !found {
				return inventory.ErrNotFound
			}
		}
		return nil
	})
}

func (r *inventoryRepo) CreateReservation(ctx context.Context, res inventory.Reservation) error {
	return r.store.mutate(ctx, func(doc *document) error {
		for _, existing := range doc.Reservations {
			if existing.ID == res.ID {
				return errors.New("reservation already exists")
			}
		}
		doc.Reservations = append(doc.Reservations, toReservationRecord(res))
		return nil
	})
}

func (r *inventoryRepo) GetReservation(ctx context.Context, id string) (inventory.Reservation, error) {
	doc, _, err := r.store.load(ctx)
	if err != nil {
		return inventory.Reservation{}, err
	}
	for _, rec := range doc.Reservations {
		if rec.ID == id {
			return rec.toDomain(), nil
		}
	}
	return inventory.Reservation{}, inventory.ErrNotFound
}

func (r *inventoryRepo) UpdateReservation(ctx context.Context, res inventory.Reservation) error {
	return r.store.mutate(ctx, func(doc *document) error {
		for i, rec := range doc.Reservations {
			if rec.ID == res.ID {
				doc.Reservations[i] = toReservationRecord(res)
				return nil
			}
		}
		return inventory.ErrNotFound
	})
}

func (r *inventoryRepo) ListReservationsByProduct(ctx context.Context, productID string) ([]inventory.Reservation, error) {
	doc, _, err := r.store.load(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]inventory.Reservation, 0)
	for _, rec := range doc.Reservations {
		if rec.ProductID == productID {
			out = append(out, rec.toDomain())
		}
	}
	return out, nil
}
