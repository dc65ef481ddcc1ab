package appointments

// Status de una cita.
// Ojo: las transiciones son sobreescrituras directas, sin máquina de estados.
// Re-confirmar una cita cancelada "funciona"; es una simplificación conocida,
// no un invariante diseñado.
type Status string

const (
	StatusProgramada Status = "programada"
	StatusConfirmada Status = "confirmada"
	StatusCompletada Status = "completada"
	StatusCancelada  Status = "cancelada"
)

func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusProgramada, StatusConfirmada, StatusCompletada, StatusCancelada:
		return Status(s), true
	default:
		return "", false
	}
}
