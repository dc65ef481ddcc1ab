package booking

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"pochita-clinic/internal/adapters/backend/clinicapi"
	"pochita-clinic/internal/middleware"
	"pochita-clinic/internal/ports/auth"
)

// RegisterPublicRoutes: catálogo de vets y slots no piden sesión; si el
// remoto exige token igual devuelve su error tal cual.
func RegisterPublicRoutes(r chi.Router, svc *Service) {
	r.Get("/booking/vets", listVetsHandler(svc))
	r.Get("/booking/slots", slotsHandler(svc))
}

// RegisterRoutes monta la consulta de citas (cualquier rol logueado).
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/booking/appointments", listAppointmentsHandler(svc))
}

// RegisterClientRoutes monta las mutaciones de agenda del cliente.
func RegisterClientRoutes(r chi.Router, svc *Service) {
	r.Post("/booking/appointments", createAppointmentHandler(svc))
	r.Patch("/booking/appointments/{appointmentID}/reschedule", rescheduleHandler(svc))
	r.Delete("/booking/appointments/{appointmentID}", cancelHandler(svc))
}

// RegisterManageRoutes monta el flujo de mostrador (agendar a nombre de
// un cliente por email). El gate de rol lo pone el router.
func RegisterManageRoutes(r chi.Router, svc *Service) {
	r.Post("/booking/manage/appointments", manageCreateHandler(svc))
}

type vetResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type appointmentResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name,omitempty"`
	UserEmail string    `json:"user_email,omitempty"`
	VetID     string    `json:"vet_id"`
	VetName   string    `json:"vet_name,omitempty"`
	Reason    string    `json:"reason"`
	Date      time.Time `json:"date"`
	Status    string    `json:"status"`
}

type createAppointmentRequest struct {
	VetID  string `json:"vet_id"`
	Date   string `json:"date"` // RFC3339
	Reason string `json:"reason"`
}

type rescheduleRequest struct {
	VetID string `json:"vet_id"`
	Date  string `json:"date"` // RFC3339
}

type manageCreateRequest struct {
	UserEmail string `json:"user_email"`
	VetID     string `json:"vet_id"`
	Date      string `json:"date"` // RFC3339
	Reason    string `json:"reason"`
}

// @Summary Veterinarios del servicio remoto
// @Tags booking
// @Produce json
// @Success 200 {array} vetResponse
// @Router /booking/vets [get]
func listVetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _ := middleware.GetSession(r.Context())

		vets, err := svc.Vets(r.Context(), sess.Token)
		if err != nil {
			writeBookingError(w, err)
			return
		}

		out := make([]vetResponse, 0, len(vets))
		for _, v := range vets {
			out = append(out, vetResponse{ID: v.ID, Name: v.Name})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// @Summary Slots libres de un vet remoto en una fecha
// @Tags booking
// @Produce json
// @Param vetId query string true "ID del veterinario"
// @Param date query string true "Fecha YYYY-MM-DD"
// @Success 200 {array} string
// @Router /booking/slots [get]
func slotsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _ := middleware.GetSession(r.Context())

		slots, err := svc.Slots(r.Context(), sess.Token,
			r.URL.Query().Get("vetId"), r.URL.Query().Get("date"))
		if err != nil {
			writeBookingError(w, err)
			return
		}

		out := make([]string, 0, len(slots))
		for _, s := range slots {
			out = append(out, s.Format(time.RFC3339))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func listAppointmentsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _ := middleware.GetSession(r.Context())

		items, err := svc.Appointments(r.Context(), sess.Token)
		if err != nil {
			writeBookingError(w, err)
			return
		}

		out := make([]appointmentResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAppointmentResponse(a))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// @Summary Agendar cita en el servicio remoto
// @Tags booking
// @Accept json
// @Produce json
// @Success 201 {object} appointmentResponse
// @Router /booking/appointments [post]
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

		sess, _ := middleware.GetSession(r.Context())
		a, err := svc.Create(r.Context(), sess.Token, CreateInput{
			VetID:  req.VetID,
			Date:   date,
			Reason: req.Reason,
		})
		if err != nil {
			writeBookingError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toAppointmentResponse(a))
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

		sess, _ := middleware.GetSession(r.Context())
		a, err := svc.Reschedule(r.Context(), sess.Token,
			chi.URLParam(r, "appointmentID"), req.VetID, date)
		if err != nil {
			writeBookingError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toAppointmentResponse(a))
	}
}

// cancelHandler deduce canceledBy del rol de la sesión: un veterinario
// cancela como vet, cualquier otro rol como client.
func cancelHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _ := middleware.GetSession(r.Context())

		canceledBy := CanceledByClient
		if sess.User.Role == auth.RoleVeterinario {
			canceledBy = CanceledByVet
		}

		a, err := svc.Cancel(r.Context(), sess.Token,
			chi.URLParam(r, "appointmentID"), canceledBy)
		if err != nil {
			writeBookingError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toAppointmentResponse(a))
	}
}

func manageCreateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req manageCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		date, err := time.Parse(time.RFC3339, req.Date)
		if err != nil {
			http.Error(w, "date must be RFC3339", http.StatusBadRequest)
			return
		}

		sess, _ := middleware.GetSession(r.Context())
		a, err := svc.ManageCreate(r.Context(), sess.Token, ManageCreateInput{
			UserEmail: req.UserEmail,
			VetID:     req.VetID,
			Date:      date,
			Reason:    req.Reason,
		})
		if err != nil {
			writeBookingError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toAppointmentResponse(a))
	}
}

func writeBookingError(w http.ResponseWriter, err error) {
	var apiErr *clinicapi.APIError
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.As(err, &apiErr):
		http.Error(w, apiErr.Error(), apiErr.StatusCode)
	default:
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
	}
}

func toAppointmentResponse(a Appointment) appointmentResponse {
	return appointmentResponse{
		ID:        a.ID,
		UserID:    a.UserID,
		UserName:  a.UserName,
		UserEmail: a.UserEmail,
		VetID:     a.VetID,
		VetName:   a.VetName,
		Reason:    a.Reason,
		Date:      a.Date,
		Status:    string(a.Status),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
