package appointments

import (
	"vet-clinic/internal/domain/analyses"
	"vet-clinic/internal/domain/vaccines"
)

type ProcedureType string

const (
	ProcedureVaccination ProcedureType = "Vaccination"
	ProcedureAnalysis    ProcedureType = "Analysis"
)

// Procedure resume qué se hizo en la cita. No se guarda: se calcula al leer.
type Procedure struct {
	Type ProcedureType
	Name string
}

// DeriveProcedure: la primera vacunación (menor id) gana; si no hay, el
// primer análisis; si no hay ninguno, nil.
func DeriveProcedure(vs []vaccines.Vaccination, as []analyses.Analysis) *Procedure {
	if len(vs) > 0 {
		first := vs[0]
		for _, v := range vs[1:] {
			if v.ID < first.ID {
				first = v
			}
		}
		return &Procedure{Type: ProcedureVaccination, Name: first.Vaccine.Name}
	}

	if len(as) > 0 {
		first := as[0]
		for _, a := range as[1:] {
			if a.ID < first.ID {
				first = a
			}
		}
		return &Procedure{Type: ProcedureAnalysis, Name: first.Type.Name}
	}

	return nil
}

func (a Appointment) Procedure() *Procedure {
	return DeriveProcedure(a.Vaccinations, a.Analyses)
}
