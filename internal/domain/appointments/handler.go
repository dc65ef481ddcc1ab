package appointments

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta el CRUD de agenda local (mostrador).
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/appointments", func(ar chi.Router) {
		ar.Get("/", listAppointmentsHandler(svc))
		ar.Post("/", createAppointmentHandler(svc))
		ar.Get("/slots", availableSlotsHandler(svc))

		ar.Get("/{appointmentID}", getAppointmentHandler(svc))
		ar.Patch("/{appointmentID}/reschedule", rescheduleHandler(svc))
	})
}

// RegisterStatusRoutes monta las transiciones de estado, que tienen un
// gate de rol distinto al CRUD (las maneja el veterinario).
func RegisterStatusRoutes(r chi.Router, svc *Service) {
	r.Post("/appointments/{appointmentID}/confirm", setStatusHandler(svc, StatusConfirmada))
	r.Post("/appointments/{appointmentID}/cancel", setStatusHandler(svc, StatusCancelada))
	r.Post("/appointments/{appointmentID}/complete", setStatusHandler(svc, StatusCompletada))
}

type createAppointmentRequest struct {
	ClientID string `json:"client_id"`
	PetID    string `json:"pet_id"`
	VetID    string `json:"vet_id"`
	Reason   string `json:"reason"`
	Date     string `json:"date"` // RFC3339
}

type rescheduleRequest struct {
	VetID string `json:"vet_id"`
	Date  string `json:"date"` // RFC3339
}

type appointmentResponse struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"client_id"`
	PetID     string    `json:"pet_id"`
	VetID     string    `json:"vet_id"`
	Reason    string    `json:"reason"`
	Date      time.Time `json:"date"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// @Summary Listar citas de la agenda local
// @Tags appointments
// @Produce json
// @Success 200 {array} appointmentResponse
// @Router /appointments [get]
func listAppointmentsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]appointmentResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAppointmentResponse(a))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// @Summary Crear cita (siempre nace programada)
// @Tags appointments
// @Accept json
// @Produce json
// @Success 201 {object} appointmentResponse
// @Router /appointments [post]
func createAppointmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createAppointmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		date, err := time.Parse(time.RFC3339, req.Date)
		if err != nil {
			http.Error(w, "date must be RFC3339", http.StatusBadRequest)
			return
		}

		a, err := svc.Create(r.Context(), CreateInput{
			ClientID: req.ClientID,
			PetID:    req.PetID,
			VetID:    req.VetID,
			Reason:   req.Reason,
			Date:     date,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, toAppointmentResponse(a))
	}
}

// @Summary Slots horarios disponibles para un vet en una fecha
// @Tags appointments
// @Produce json
// @Param vetId query string true "ID del veterinario"
// @Param date query string true "Fecha YYYY-MM-DD"
// @Success 200 {array} string
// @Router /appointments/slots [get]
func availableSlotsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vetID := r.URL.Query().Get("vetId")
		date, err := svc.ParseSlotDate(r.URL.Query().Get("date"))
		if err != nil {
			http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		slots, err := svc.AvailableSlots(r.Context(), vetID, date)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]string, 0, len(slots))
		for _, s := range slots {
			out = append(out, s.Format(time.RFC3339))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getAppointmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.GetByID(r.Context(), chi.URLParam(r, "appointmentID"))
		if err != nil {
			http.Error(w, "appointment not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toAppointmentResponse(a))
	}
}

func rescheduleHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req rescheduleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		date, err := time.Parse(time.RFC3339, req.Date)
		if err != nil {
			http.Error(w, "date must be RFC3339", http.StatusBadRequest)
			return
		}

		a, err := svc.Reschedule(r.Context(), chi.URLParam(r, "appointmentID"), date, req.VetID)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrNotFound):
				http.Error(w, "appointment not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toAppointmentResponse(a))
	}
}

func setStatusHandler(svc *Service, status Status) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "appointmentID")

		var (
			a   Appointment
			err error
		)
		switch status {
		case StatusConfirmada:
			a, err = svc.Confirm(r.Context(), id)
		case StatusCancelada:
			a, err = svc.Cancel(r.Context(), id)
		default:
			a, err = svc.Complete(r.Context(), id)
		}
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "appointment not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toAppointmentResponse(a))
	}
}

func toAppointmentResponse(a Appointment) appointmentResponse {
	return appointmentResponse{
		ID:        a.ID,
		ClientID:  a.ClientID,
		PetID:     a.PetID,
		VetID:     a.VetID,
		Reason:    a.Reason,
		Date:      a.Date,
		Status:    string(a.Status),
		CreatedAt: a.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
