// Package memory implementa los repositorios en proceso (modo dev y tests).
// Todas las tablas viven en un único Store con un solo mutex, así las FKs y
// los borrados en cascada son atómicos igual que en Postgres.
package memory

import (
	"slices"
	"sync"

	"vet-clinic/internal/domain/analyses"
	"vet-clinic/internal/domain/appointments"
	"vet-clinic/internal/domain/breeds"
	"vet-clinic/internal/domain/clinics"
	"vet-clinic/internal/domain/medicines"
	"vet-clinic/internal/domain/pets"
	"vet-clinic/internal/domain/users"
	"vet-clinic/internal/domain/vaccines"
)

type Store struct {
	mu  sync.RWMutex
	seq map[string]int64

	users         map[int64]users.User
	breeds        map[int64]breeds.Breed
	pets          map[int64]pets.Pet
	clinics       map[int64]clinics.Clinic
	appointments  map[int64]appointments.Appointment
	analysisTypes map[int64]analyses.Type
	analyses      map[int64]analyses.Analysis
	vaccines      map[int64]vaccines.Vaccine
	vaccinations  map[int64]vaccines.Vaccination
	medicines     map[int64]medicines.Medicine
	takes         map[int64]medicines.Take
}

func NewStore() *Store {
	return &Store{
		seq:           make(map[string]int64),
		users:         make(map[int64]users.User),
		breeds:        make(map[int64]breeds.Breed),
		pets:          make(map[int64]pets.Pet),
		clinics:       make(map[int64]clinics.Clinic),
		appointments:  make(map[int64]appointments.Appointment),
		analysisTypes: make(map[int64]analyses.Type),
		analyses:      make(map[int64]analyses.Analysis),
		vaccines:      make(map[int64]vaccines.Vaccine),
		vaccinations:  make(map[int64]vaccines.Vaccination),
		medicines:     make(map[int64]medicines.Medicine),
		takes:         make(map[int64]medicines.Take),
	}
}

// next emula BIGSERIAL: ids por tabla, empiezan en 1 y no se reutilizan.
func (s *Store) next(table string) int64 {
	s.seq[table]++
	return s.seq[table]
}

// sorted devuelve los valores ordenados por id.
func sorted[V any](m map[int64]V) []V {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	out := make([]V, 0, len(ids))
	for _, id := range ids {
		out = append(out, m[id])
	}
	return out
}

// ---- joins (con el lock tomado) ----

func (s *Store) loadPet(p pets.Pet) pets.Pet {
	p.Breed = s.breeds[p.BreedID]
	return p
}

func (s *Store) loadVaccination(v vaccines.Vaccination) vaccines.Vaccination {
	v.Vaccine = s.vaccines[v.VaccineID]
	return v
}

func (s *Store) loadAnalysis(a analyses.Analysis) analyses.Analysis {
	a.Type = s.analysisTypes[a.AnalysisTypeID]
	return a
}

func (s *Store) loadTake(t medicines.Take) medicines.Take {
	t.Medicine = s.medicines[t.MedicineID]
	return t
}

func (s *Store) loadAppointment(a appointments.Appointment) appointments.Appointment {
	a.Pet = s.loadPet(s.pets[a.PetID])

	a.Vaccinations = make([]vaccines.Vaccination, 0)
	for _, v := range sorted(s.vaccinations) {
		if v.AppointmentID == a.ID {
			a.Vaccinations = append(a.Vaccinations, s.loadVaccination(v))
		}
	}

	a.Analyses = make([]analyses.Analysis, 0)
	for _, an := range sorted(s.analyses) {
		if an.AppointmentID == a.ID {
			a.Analyses = append(a.Analyses, s.loadAnalysis(an))
		}
	}
	return a
}

// ---- cascadas (con el lock de escritura tomado): hijos primero ----

func (s *Store) deleteAppointment(id int64) {
	for vid, v := range s.vaccinations {
		if v.AppointmentID == id {
			delete(s.vaccinations, vid)
		}
	}
	for aid, a := range s.analyses {
		if a.AppointmentID == id {
			delete(s.analyses, aid)
		}
	}
	delete(s.appointments, id)
}

func (s *Store) deletePet(id int64) {
	for aid, a := range s.appointments {
		if a.PetID == id {
			s.deleteAppointment(aid)
		}
	}
	for vid, v := range s.vaccinations {
		if v.PetID == id {
			delete(s.vaccinations, vid)
		}
	}
	for tid, t := range s.takes {
		if t.PetID == id {
			delete(s.takes, tid)
		}
	}
	delete(s.pets, id)
}

func (s *Store) deleteBreed(id int64) {
	for pid, p := range s.pets {
		if p.BreedID == id {
			s.deletePet(pid)
		}
	}
	delete(s.breeds, id)
}
