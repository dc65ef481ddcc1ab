package appointments

import (
	"context"
	"time"
)

// DateOf expone la fecha de una cita.
// Se usa para que treatments no importe el paquete completo
// (evita ciclos de imports entre módulos).
func (s *Service) DateOf(ctx context.Context, appointmentID string) (time.Time, error) {
	a, err := s.GetByID(ctx, appointmentID)
	if err != nil {
		return time.Time{}, err
	}
	return a.Date, nil
}
