package inventory

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

func (s *Service) ListProducts(ctx context.Context) ([]Product, error) {
	return s.repo.ListProducts(ctx)
}

// Restock ajusta el stock con un delta (positivo o negativo),
// recortando en cero. Nunca falla por stock insuficiente.
func (s *Service) Restock(ctx context.Context, productID string, delta int) (Product, error) {
	p, err := s.repo.GetProduct(ctx, productID)
	if err != nil {
		return Product{}, err
	}

	p.Stock = clampStock(p.Stock + delta)
	if err := s.repo.UpdateProduct(ctx, p); err != nil {
		return Product{}, err
	}
	return p, nil
}

// Checkout descuenta el stock de cada línea del carrito, recortando en
// cero (el faltante se absorbe en silencio, sin rechazo). El caller debe
// vaciar el carrito solo si Checkout retorna nil.
func (s *Service) Checkout(ctx context.Context, cart []CartItem) error {
	if len(cart) == 0 {
		return ErrInvalidInput
	}

	updated := make([]Product, 0, len(cart))
	for _, item := range cart {
		if item.Quantity <= 0 {
			return ErrInvalidInput
		}
		p, err := s.repo.GetProduct(ctx, item.ProductID)
		if err != nil {
			return err
		}
		p.Stock = clampStock(p.Stock - item.Quantity)
		updated = append(updated, p)
	}

	return s.repo.UpdateProducts(ctx, updated)
}

type ReserveInput struct {
	ProductID  string
	ClientName string
	Phone      string
}

// CreateReservation aparta un producto. Siempre nace "pendiente";
// no se valida que el stock esté realmente en cero.
func (s *Service) CreateReservation(ctx context.Context, in ReserveInput) (Reservation, error) {
	if strings.TrimSpace(in.ClientName) == "" || strings.TrimSpace(in.Phone) == "" {
		return Reservation{}, ErrInvalidInput
	}

	if _, err := s.repo.GetProduct(ctx, strings.TrimSpace(in.ProductID)); err != nil {
		return Reservation{}, err
	}

	res := Reservation{
		ID:         uuid.NewString(),
		ProductID:  strings.TrimSpace(in.ProductID),
		ClientName: strings.TrimSpace(in.ClientName),
		Phone:      strings.TrimSpace(in.Phone),
		Status:     ReservationPendiente,
		CreatedAt:  s.now(),
	}

	if err := s.repo.CreateReservation(ctx, res); err != nil {
		return Reservation{}, err
	}
	return res, nil
}

func (s *Service) ListReservationsByProduct(ctx context.Context, productID string) ([]Reservation, error) {
	return s.repo.ListReservationsByProduct(ctx, productID)
}

// SetReservationStatus sobreescribe el estado sin validar orden
// (notificado, aceptado, liberado o rechazado en cualquier momento).
func (s *Service) SetReservationStatus(ctx context.Context, id string, status ReservationStatus) (Reservation, error) {
	res, err := s.repo.GetReservation(ctx, id)
	if err != nil {
		return Reservation{}, err
	}

	res.Status = status
	if err := s.repo.UpdateReservation(ctx, res); err != nil {
		return Reservation{}, err
	}
	return res, nil
}

func clampStock(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
