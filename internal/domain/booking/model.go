// Package booking expone la agenda "live" que vive en el servicio
// clínico remoto: veterinarios, slots y citas. Acá no hay estado local,
// todo es passthrough tipado.
package booking

import (
	"strings"
	"time"
)

type Status string

const (
	StatusProgramada Status = "programada"
	StatusConfirmada Status = "confirmada"
	StatusCompletada Status = "completada"
	StatusCancelada  Status = "cancelada"
)

// parseStatus normaliza el status remoto (viene en mayúsculas). Un
// status desconocido se conserva en minúsculas en vez de perderse.
func parseStatus(s string) Status {
	return Status(strings.ToLower(strings.TrimSpace(s)))
}

type Vet struct {
	ID   string
	Name string
}

type Appointment struct {
	ID        string
	UserID    string
	UserName  string
	UserEmail string
	VetID     string
	VetName   string
	Reason    string
	Date      time.Time
	Status    Status
}
