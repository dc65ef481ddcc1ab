package treatments

import "time"

// Treatment documenta un procedimiento realizado durante una cita.
type Treatment struct {
	ID              string
	AppointmentID   string
	Procedure       Procedure
	ApprovedByOwner bool
	AdditionalCost  *float64 // opcional, en soles
	Notes           string
	CreatedAt       time.Time
}

// FollowUp es una revisión post-tratamiento. Solo se genera
// automáticamente para cirugías; Completed arranca en false y solo
// cambia por completación explícita.
type FollowUp struct {
	ID          string
	TreatmentID string
	Date        time.Time
	Notes       string
	Completed   bool
}
