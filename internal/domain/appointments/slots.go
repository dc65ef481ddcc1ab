package appointments

import (
	"context"
	"strings"
	"time"
)

const (
	slotFirstHour = 9
	slotLastHour  = 17
)

// AvailableSlots devuelve los instantes horarios libres (09:00 a 17:00
// inclusive, 9 slots) para un vet en una fecha, en la zona horaria del
// servicio. Un slot se descarta solo si alguna cita del vet en ese día
// coincide exactamente con el instante: el modelo asume reservas alineadas
// a la hora, y una cita cancelada sigue ocupando su slot.
func (s *Service) AvailableSlots(ctx context.Context, vetID string, date time.Time) ([]time.Time, error) {
	if strings.TrimSpace(vetID) == "" {
		return nil, ErrInvalidInput
	}
	if date.IsZero() {
		return nil, ErrInvalidInput
	}

	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, s.loc)
	next := day.AddDate(0, 0, 1)

	booked, err := s.repo.ListByVetBetween(ctx, vetID, day, next)
	if err != nil {
		return nil, err
	}

	taken := make(map[int64]struct{}, len(booked))
	for _, a := range booked {
		taken[a.Date.Unix()] = struct{}{}
	}

	out := make([]time.Time, 0, slotLastHour-slotFirstHour+1)
	for h := slotFirstHour; h <= slotLastHour; h++ {
		slot := time.Date(day.Year(), day.Month(), day.Day(), h, 0, 0, 0, s.loc)
		if _, ok := taken[slot.Unix()]; ok {
			continue
		}
		out = append(out, slot)
	}
	return out, nil
}

// ParseSlotDate interpreta el parámetro de query "date" (YYYY-MM-DD)
// en la zona horaria del servicio.
func (s *Service) ParseSlotDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(value), s.loc)
	if err != nil {
		return time.Time{}, ErrInvalidInput
	}
	return t, nil
}
