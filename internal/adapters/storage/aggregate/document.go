package aggregate

import (
	"time"

	"pochita-clinic/internal/domain/appointments"
	"pochita-clinic/internal/domain/clients"
	"pochita-clinic/internal/domain/inventory"
	"pochita-clinic/internal/domain/pets"
	"pochita-clinic/internal/domain/treatments"
	"pochita-clinic/internal/domain/vets"
)

// document es el agregado completo serializado bajo una sola key.
// Cada escritura lee el blob entero, muta la lista que toca y lo
// reescribe con el check de versión del backend.
type document struct {
	Clients      []clientRecord      `json:"clients"`
	Pets         []petRecord         `json:"pets"`
	Vets         []vetRecord         `json:"vets"`
	Appointments []appointmentRecord `json:"appointments"`
	Treatments   []treatmentRecord   `json:"treatments"`
	FollowUps    []followUpRecord    `json:"follow_ups"`
	Products     []productRecord     `json:"products"`
	Reservations []reservationRecord `json:"reservations"`
}

type clientRecord struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type petRecord struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Species  string `json:"species"`
	Breed    string `json:"breed,omitempty"`
	AgeYears *int   `json:"age_years,omitempty"`
	OwnerID  string `json:"owner_id"`
}

type vetRecord struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty,omitempty"`
}

type appointmentRecord struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"client_id"`
	PetID     string    `json:"pet_id"`
	VetID     string    `json:"vet_id"`
	Reason    string    `json:"reason"`
	Date      time.Time `json:"date"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type treatmentRecord struct {
	ID              string    `json:"id"`
	AppointmentID   string    `json:"appointment_id"`
	Procedure       string    `json:"procedure"`
	ApprovedByOwner bool      `json:"approved_by_owner"`
	AdditionalCost  *float64  `json:"additional_cost,omitempty"`
	Notes           string    `json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
}

type followUpRecord struct {
	ID          string    `json:"id"`
	TreatmentID string    `json:"treatment_id"`
	Date        time.Time `json:"date"`
	Notes       string    `json:"notes"`
	Completed   bool      `json:"completed"`
}

type productRecord struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
}

type reservationRecord struct {
	ID         string    `json:"id"`
	ProductID  string    `json:"product_id"`
	ClientName string    `json:"client_name"`
	Phone      string    `json:"phone"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// Mapeos explícitos entre records serializados y entidades de dominio.

func toClientRecord(c clients.Client) clientRecord {
	return clientRecord{ID: c.ID, Name: c.Name, Phone: c.Phone}
}

func (r clientRecord) toDomain() clients.Client {
	return clients.Client{ID: r.ID, Name: r.Name, Phone: r.Phone}
}

func toPetRecord(p pets.Pet) petRecord {
	return petRecord{
		ID:       p.ID,
		Name:     p.Name,
		Species:  string(p.Species),
		Breed:    p.Breed,
		AgeYears: p.AgeYears,
		OwnerID:  p.OwnerID,
	}
}

func (r petRecord) toDomain() pets.Pet {
	return pets.Pet{
		ID:       r.ID,
		Name:     r.Name,
		Species:  pets.Species(r.Species),
		Breed:    r.Breed,
		AgeYears: r.AgeYears,
		OwnerID:  r.OwnerID,
	}
}

func (r vetRecord) toDomain() vets.Vet {
	return vets.Vet{ID: r.ID, Name: r.Name, Specialty: r.Specialty}
}

func toAppointmentRecord(a appointments.Appointment) appointmentRecord {
	return appointmentRecord{
		ID:        a.ID,
		ClientID:  a.ClientID,
		PetID:     a.PetID,
		VetID:     a.VetID,
		Reason:    a.Reason,
		Date:      a.Date,
		Status:    string(a.Status),
		CreatedAt: a.CreatedAt,
	}
}

func (r appointmentRecord) toDomain() appointments.Appointment {
	return appointments.Appointment{
		ID:        r.ID,
		ClientID:  r.ClientID,
		PetID:     r.PetID,
		VetID:     r.VetID,
		Reason:    r.Reason,
		Date:      r.Date,
		Status:    appointments.Status(r.Status),
		CreatedAt: r.CreatedAt,
	}
}

func toTreatmentRecord(t treatments.Treatment) treatmentRecord {
	return treatmentRecord{
		ID:              t.ID,
		AppointmentID:   t.AppointmentID,
		Procedure:       string(t.Procedure),
		ApprovedByOwner: t.ApprovedByOwner,
		AdditionalCost:  t.AdditionalCost,
		Notes:           t.Notes,
		CreatedAt:       t.CreatedAt,
	}
}

func (r treatmentRecord) toDomain() treatments.Treatment {
	return treatments.Treatment{
		ID:              r.ID,
		AppointmentID:   r.AppointmentID,
		Procedure:       treatments.Procedure(r.Procedure),
		ApprovedByOwner: r.ApprovedByOwner,
		AdditionalCost:  r.AdditionalCost,
		Notes:           r.Notes,
		CreatedAt:       r.CreatedAt,
	}
}

func toFollowUpRecord(f treatments.FollowUp) followUpRecord {
	return followUpRecord{
		ID:          f.ID,
		TreatmentID: f.TreatmentID,
		Date:        f.Date,
		Notes:       f.Notes,
		Completed:   f.Completed,
	}
}

func (r followUpRecord) toDomain() treatments.FollowUp {
	return treatments.FollowUp{
		ID:          r.ID,
		TreatmentID: r.TreatmentID,
		Date:        r.Date,
		Notes:       r.Notes,
		Completed:   r.Completed,
	}
}

func toProductRecord(p inventory.Product) productRecord {
	return productRecord{ID: p.ID, Name: p.Name, Price: p.Price, Stock: p.Stock}
}

func (r productRecord) toDomain() inventory.Product {
	return inventory.Product{ID: r.ID, Name: r.Name, Price: r.Price, Stock: r.Stock}
}

func toReservationRecord(res inventory.Reservation) reservationRecord {
	return reservationRecord{
		ID:         res.ID,
		ProductID:  res.ProductID,
		ClientName: res.ClientName,
		Phone:      res.Phone,
		Status:     string(res.Status),
		CreatedAt:  res.CreatedAt,
	}
}

func (r reservationRecord) toDomain() inventory.Reservation {
	return inventory.Reservation{
		ID:         r.ID,
		ProductID:  r.ProductID,
		ClientName: r.ClientName,
		Phone:      r.Phone,
		Status:     inventory.ReservationStatus(r.Status),
		CreatedAt:  r.CreatedAt,
	}
}
