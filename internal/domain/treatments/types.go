package treatments

// Procedure define los procedimientos soportados.
// @Enum Vacunación, Desparasitación, Cirugía menor
type Procedure string

const (
	ProcedureVacunacion      Procedure = "Vacunación"
	ProcedureDesparasitacion Procedure = "Desparasitación"
	ProcedureCirugiaMenor    Procedure = "Cirugía menor"
)

func ParseProcedure(s string) (Procedure, bool) {
	switch Procedure(s) {
	case ProcedureVacunacion, ProcedureDesparasitacion, ProcedureCirugiaMenor:
		return Procedure(s), true
	default:
		return "", false
	}
}
