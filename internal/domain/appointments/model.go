package appointments

import (
	"time"

	"vet-clinic/internal/domain/analyses"
	"vet-clinic/internal/domain/pets"
	"vet-clinic/internal/domain/vaccines"
)

const DefaultConclusionStatus = "pending"

type Appointment struct {
	ID       int64
	PetID    int64
	ClinicID int64

	ScheduledAt time.Time // UTC
	Status      string

	ConclusionStatus string
	Conclusion       *string

	// Se cargan en lecturas (List/GetByID).
	Pet          pets.Pet
	Vaccinations []vaccines.Vaccination
	Analyses     []analyses.Analysis
}
