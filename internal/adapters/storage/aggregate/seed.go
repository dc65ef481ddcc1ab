package aggregate

import (
	"time"

	"github.com/google/uuid"
)

// seedDocument arma el dataset de demo que aparece en la primera corrida:
// dos clientes con su mascota, dos vets, una cita para mañana a las 10:00
// y tres productos (uno sin stock, para probar apartados).
func seedDocument(now time.Time) document {
	juan := clientRecord{ID: uuid.NewString(), Name: "Juan Pérez", Phone: "999-111-222"}
	maria := clientRecord{ID: uuid.NewString(), Name: "María López", Phone: "999-333-444"}

	edad4, edad2 := 4, 2
	firulais := petRecord{ID: uuid.NewString(), Name: "Firulais", Species: "Perro", Breed: "Mestizo", AgeYears: &edad4, OwnerID: juan.ID}
	mishi := petRecord{ID: uuid.NewString(), Name: "Mishi", Species: "Gato", Breed: "Siames", AgeYears: &edad2, OwnerID: maria.ID}

	salazar := vetRecord{ID: uuid.NewString(), Name: "Dra. Salazar", Specialty: "General"}
	rojas := vetRecord{ID: uuid.NewString(), Name: "Dr. Rojas", Specialty: "Cirugía"}

	tomorrow := now.AddDate(0, 0, 1)
	cita := appointmentRecord{
		ID:        uuid.NewString(),
		ClientID:  juan.ID,
		PetID:     firulais.ID,
		VetID:     salazar.ID,
		Reason:    "Vacunación anual",
		Date:      time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 10, 0, 0, 0, now.Location()),
		Status:    "programada",
		CreatedAt: now,
	}

	return document{
		Clients:      []clientRecord{juan, maria},
		Pets:         []petRecord{firulais, mishi},
		Vets:         []vetRecord{salazar, rojas},
		Appointments: []appointmentRecord{cita},
		Treatments:   []treatmentRecord{},
		FollowUps:    []followUpRecord{},
		Products: []productRecord{
			{ID: uuid.NewString(), Name: "Alimento Premium 5kg", Price: 120.0, Stock: 8},
			{ID: uuid.NewString(), Name: "Antipulgas", Price: 35.5, Stock: 0},
			{ID: uuid.NewString(), Name: "Vitaminas", Price: 22.9, Stock: 14},
		},
		Reservations: []reservationRecord{},
	}
}
