package pets

// Species define las especies soportadas.
// @Enum Perro, Gato, Otro
type Species string

const (
	SpeciesPerro Species = "Perro"
	SpeciesGato  Species = "Gato"
	SpeciesOtro  Species = "Otro"
)

func ParseSpecies(s string) (Species, bool) {
	switch Species(s) {
	case SpeciesPerro, SpeciesGato, SpeciesOtro:
		return Species(s), true
	default:
		return "", false
	}
}

// Pet representa una mascota del registro local.
// OwnerID referencia al Client dueño (no se borra nunca, igual que el cliente).
type Pet struct {
	ID       string
	Name     string
	Species  Species
	Breed    string // opcional
	AgeYears *int   // opcional
	OwnerID  string
}
