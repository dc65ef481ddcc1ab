package pets

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Get("/", listPetsHandler(svc))
		pr.Post("/", upsertPetHandler(svc, false))
		pr.Patch("/{petID}", upsertPetHandler(svc, true))
	})
}

type upsertPetRequest struct {
	Name     string `json:"name"`
	Species  string `json:"species"`
	Breed    string `json:"breed"`
	AgeYears *int   `json:"age_years"`
	OwnerID  string `json:"owner_id"`
}

type petResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Species  string `json:"species"`
	Breed    string `json:"breed,omitempty"`
	AgeYears *int   `json:"age_years,omitempty"`
	OwnerID  string `json:"owner_id"`
}

func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func upsertPetHandler(svc *Service, patch bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req upsertPetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in := UpsertInput{
			Name:     req.Name,
			Species:  req.Species,
			Breed:    req.Breed,
			AgeYears: req.AgeYears,
			OwnerID:  req.OwnerID,
		}
		status := http.StatusCreated
		if patch {
			in.ID = chi.URLParam(r, "petID")
			status = http.StatusOK
		}

		p, err := svc.Upsert(r.Context(), in)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrNotFound):
				http.Error(w, "pet not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, status, toPetResponse(p))
	}
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:       p.ID,
		Name:     p.Name,
		Species:  string(p.Species),
		Breed:    p.Breed,
		AgeYears: p.AgeYears,
		OwnerID:  p.OwnerID,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
