package vets

// Vet es data de referencia, de solo lectura en la práctica.
type Vet struct {
	ID        string
	Name      string
	Specialty string // opcional
}
