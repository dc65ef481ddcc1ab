package inventory

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta las rutas de catálogo/punto de venta. Las rutas de
// mostrador (restock, checkout, estados de apartado) se montan aparte con
// RegisterCounterRoutes para poder gatearlas por rol en el router.
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/products", listProductsHandler(svc))
	r.Post("/products/{productID}/reservations", createReservationHandler(svc))
}

func RegisterCounterRoutes(r chi.Router, svc *Service) {
	r.Post("/products/{productID}/restock", restockHandler(svc))
	r.Post("/checkout", checkoutHandler(svc))
	r.Get("/products/{productID}/reservations", listReservationsHandler(svc))
	r.Post("/reservations/{reservationID}/status", setReservationStatusHandler(svc))
}

type productResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
}

type restockRequest struct {
	Delta int `json:"delta"`
}

type checkoutRequest struct {
	Cart []struct {
		ProductID string `json:"product_id"`
		Quantity  int    `json:"quantity"`
	} `json:"cart"`
}

type reserveRequest struct {
	ClientName string `json:"client_name"`
	Phone      string `json:"phone"`
}

type reservationStatusRequest struct {
	Status string `json:"status"`
}

type reservationResponse struct {
	ID         string    `json:"id"`
	ProductID  string    `json:"product_id"`
	ClientName string    `json:"client_name"`
	Phone      string    `json:"phone"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

func listProductsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListProducts(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]productResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toProductResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func restockHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req restockRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.Restock(r.Context(), chi.URLParam(r, "productID"), req.Delta)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "product not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toProductResponse(p))
	}
}

// @Summary Checkout del carrito
// @Description Descuenta stock por línea, recortando en cero. No rechaza por stock insuficiente.
// @Tags inventory
// @Accept json
// @Success 204
// @Router /checkout [post]
func checkoutHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req checkoutRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		cart := make([]CartItem, 0, len(req.Cart))
		for _, line := range req.Cart {
			cart = append(cart, CartItem{ProductID: line.ProductID, Quantity: line.Quantity})
		}

		if err := svc.Checkout(r.Context(), cart); err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrNotFound):
				http.Error(w, "product not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func createReservationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req reserveRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		res, err := svc.CreateReservation(r.Context(), ReserveInput{
			ProductID:  chi.URLParam(r, "productID"),
			ClientName: req.ClientName,
			Phone:      req.Phone,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrNotFound):
				http.Error(w, "product not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, toReservationResponse(res))
	}
}

func listReservationsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListReservationsByProduct(r.Context(), chi.URLParam(r, "productID"))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]reservationResponse, 0, len(items))
		for _, res := range items {
			out = append(out, toReservationResponse(res))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func setReservationStatusHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req reservationStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		status, ok := ParseReservationStatus(req.Status)
		if !ok {
			http.Error(w, "invalid status", http.StatusBadRequest)
			return
		}

		res, err := svc.SetReservationStatus(r.Context(), chi.URLParam(r, "reservationID"), status)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "reservation not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toReservationResponse(res))
	}
}

func toProductResponse(p Product) productResponse {
	return productResponse{ID: p.ID, Name: p.Name, Price: p.Price, Stock: p.Stock}
}

func toReservationResponse(r Reservation) reservationResponse {
	return reservationResponse{
		ID:         r.ID,
		ProductID:  r.ProductID,
		ClientName: r.ClientName,
		Phone:      r.Phone,
		Status:     string(r.Status),
		CreatedAt:  r.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
