package inventory

import "context"

type Repository interface {
	ListProducts(ctx context.Context) ([]Product, error)
	GetProduct(ctx context.Context, id string) (Product, error)
	UpdateProduct(ctx context.Context, p Product) error

	// UpdateProducts aplica varios cambios de stock en una sola escritura
	// del agregado (el checkout es una sola transacción de blob).
	UpdateProducts(ctx context.Context, items []Product) error

	CreateReservation(ctx context.Context, r Reservation) error
	GetReservation(ctx context.Context, id string) (Reservation, error)
	UpdateReservation(ctx context.Context, r Reservation) error
	ListReservationsByProduct(ctx context.Context, productID string) ([]Reservation, error)
}
