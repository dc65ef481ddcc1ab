package inventory

// ReservationStatus define los estados de un apartado.
// No hay orden de transición forzado: el mostrador puede setear
// cualquier estado en cualquier momento.
type ReservationStatus string

const (
	ReservationPendiente  ReservationStatus = "pendiente"
	ReservationNotificado ReservationStatus = "notificado"
	ReservationAceptado   ReservationStatus = "aceptado"
	ReservationLiberado   ReservationStatus = "liberado"
	ReservationRechazado  ReservationStatus = "rechazado"
)

func ParseReservationStatus(s string) (ReservationStatus, bool) {
	switch ReservationStatus(s) {
	case ReservationPendiente, ReservationNotificado, ReservationAceptado,
		ReservationLiberado, ReservationRechazado:
		return ReservationStatus(s), true
	default:
		return "", false
	}
}
