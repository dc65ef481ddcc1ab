package vets

import "context"

type Repository interface {
	List(ctx context.Context) ([]Vet, error)
	GetByID(ctx context.Context, id string) (Vet, error)
}
