package inventory

import "time"

// Product es un ítem del stock de la clínica.
// Stock nunca baja de cero: cualquier decremento se recorta en cero.
type Product struct {
	ID    string
	Name  string
	Price float64
	Stock int
}

// Reservation es un apartado por falta de stock. Nace siempre en
// "pendiente" (aunque el producto tenga stock; no se valida).
type Reservation struct {
	ID         string
	ProductID  string
	ClientName string
	Phone      string
	Status     ReservationStatus
	CreatedAt  time.Time
}

// CartItem es una línea del carrito de punto de venta.
type CartItem struct {
	ProductID string
	Quantity  int
}
