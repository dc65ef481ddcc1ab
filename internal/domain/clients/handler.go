package clients

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/clients", func(cr chi.Router) {
		cr.Get("/", listClientsHandler(svc))
		cr.Post("/", upsertClientHandler(svc, false))
		cr.Patch("/{clientID}", upsertClientHandler(svc, true))
	})
}

type upsertClientRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type clientResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

func listClientsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]clientResponse, 0, len(items))
		for _, c := range items {
			out = append(out, toClientResponse(c))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func upsertClientHandler(svc *Service, patch bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req upsertClientRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in := UpsertInput{Name: req.Name, Phone: req.Phone}
		status := http.StatusCreated
		if patch {
			in.ID = chi.URLParam(r, "clientID")
			status = http.StatusOK
		}

		c, err := svc.Upsert(r.Context(), in)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrNotFound):
				http.Error(w, "client not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, status, toClientResponse(c))
	}
}

func toClientResponse(c Client) clientResponse {
	return clientResponse{ID: c.ID, Name: c.Name, Phone: c.Phone}
}

// writeJSON se duplica a propósito en los handlers de cada módulo
// (mismo criterio que en el resto del proyecto: nada de helpers prematuros).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
