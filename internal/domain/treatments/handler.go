package treatments

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/appointments/{appointmentID}/treatments", createTreatmentHandler(svc))
	r.Get("/appointments/{appointmentID}/treatments", listTreatmentsHandler(svc))

	r.Get("/treatments/{treatmentID}/followups", listFollowUpsHandler(svc))
	r.Post("/followups/{followUpID}/complete", completeFollowUpHandler(svc))
}

type createTreatmentRequest struct {
	Procedure       string   `json:"procedure"`
	ApprovedByOwner bool     `json:"approved_by_owner"`
	AdditionalCost  *float64 `json:"additional_cost"`
	Notes           string   `json:"notes"`
}

type treatmentResponse struct {
	ID              string    `json:"id"`
	AppointmentID   string    `json:"appointment_id"`
	Procedure       string    `json:"procedure"`
	ApprovedByOwner bool      `json:"approved_by_owner"`
	AdditionalCost  *float64  `json:"additional_cost,omitempty"`
	Notes           string    `json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
}

type followUpResponse struct {
	ID          string    `json:"id"`
	TreatmentID string    `json:"treatment_id"`
	Date        time.Time `json:"date"`
	Notes       string    `json:"notes"`
	Completed   bool      `json:"completed"`
}

type createTreatmentResponse struct {
	Treatment treatmentResponse  `json:"treatment"`
	FollowUps []followUpResponse `json:"follow_ups"`
}

// @Summary Registrar procedimiento de una cita
// @Description Si el procedimiento es "Cirugía menor" se agendan tres revisiones (+1, +7, +14 días, 10:00).
// @Tags treatments
// @Accept json
// @Produce json
// @Param appointmentID path string true "ID de la cita"
// @Success 201 {object} createTreatmentResponse
// @Router /appointments/{appointmentID}/treatments [post]
func createTreatmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createTreatmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		t, followUps, err := svc.Create(r.Context(), CreateInput{
			AppointmentID:   chi.URLParam(r, "appointmentID"),
			Procedure:       req.Procedure,
			ApprovedByOwner: req.ApprovedByOwner,
			AdditionalCost:  req.AdditionalCost,
			Notes:           req.Notes,
		})
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

		out := createTreatmentResponse{
			Treatment: toTreatmentResponse(t),
			FollowUps: make([]followUpResponse, 0, len(followUps)),
		}
		for _, f := range followUps {
			out.FollowUps = append(out.FollowUps, toFollowUpResponse(f))
		}

		writeJSON(w, http.StatusCreated, out)
	}
}

func listTreatmentsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListByAppointment(r.Context(), chi.URLParam(r, "appointmentID"))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]treatmentResponse, 0, len(items))
		for _, t := range items {
			out = append(out, toTreatmentResponse(t))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func listFollowUpsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListFollowUps(r.Context(), chi.URLParam(r, "treatmentID"))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]followUpResponse, 0, len(items))
		for _, f := range items {
			out = append(out, toFollowUpResponse(f))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func completeFollowUpHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, err := svc.CompleteFollowUp(r.Context(), chi.URLParam(r, "followUpID"))
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrNotFound):
				http.Error(w, "follow-up not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toFollowUpResponse(f))
	}
}

func toTreatmentResponse(t Treatment) treatmentResponse {
	return treatmentResponse{
		ID:              t.ID,
		AppointmentID:   t.AppointmentID,
		Procedure:       string(t.Procedure),
		ApprovedByOwner: t.ApprovedByOwner,
		AdditionalCost:  t.AdditionalCost,
		Notes:           t.Notes,
		CreatedAt:       t.CreatedAt,
	}
}

func toFollowUpResponse(f FollowUp) followUpResponse {
	return followUpResponse{
		ID:          f.ID,
		TreatmentID: f.TreatmentID,
		Date:        f.Date,
		Notes:       f.Notes,
		Completed:   f.Completed,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
