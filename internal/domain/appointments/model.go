package appointments

import "time"

// Appointment es la cita del dominio local (agenda de recepción / vet).
// La contraparte "live" del servicio remoto vive en internal/domain/booking.
type Appointment struct {
	ID       string
	ClientID string
	PetID    string
	VetID    string
	Reason   string
	Date     time.Time
	Status   Status
	CreatedAt time.Time
}
