package memory

import (
	"context"

	"vet-clinic/internal/domain/vaccines"
	"vet-clinic/internal/platform/apperr"
)

type vaccineRepo struct {
	s *Store
}

func NewVaccineRepo(s *Store) vaccines.VaccineRepository {
	return &vaccineRepo{s: s}
}

func (r *vaccineRepo) Create(_ context.Context, v vaccines.Vaccine) (vaccines.Vaccine, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	v.ID = r.s.next("vaccines")
	r.s.vaccines[v.ID] = v
	return v, nil
}

func (r *vaccineRepo) List(_ context.Context) ([]vaccines.Vaccine, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return sorted(r.s.vaccines), nil
}

func (r *vaccineRepo) GetByID(_ context.Context, id int64) (vaccines.Vaccine, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	v, ok := r.s.vaccines[id]
	if !ok {
		return vaccines.Vaccine{}, apperr.ErrNotFound
	}
	return v, nil
}

func (r *vaccineRepo) Update(_ context.Context, v vaccines.Vaccine) (vaccines.Vaccine, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.vaccines[v.ID]; !ok {
		return vaccines.Vaccine{}, apperr.ErrNotFound
	}
	r.s.vaccines[v.ID] = v
	return v, nil
}

func (r *vaccineRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.vaccines[id]; !ok {
		return apperr.ErrNotFound
	}
	for vid, v := range r.s.vaccinations {
		if v.VaccineID == id {
			delete(r.s.vaccinations, vid)
		}
	}
	delete(r.s.vaccines, id)
	return nil
}

type vaccinationRepo struct {
	s *Store
}

func NewVaccinationRepo(s *Store) vaccines.VaccinationRepository {
	return &vaccinationRepo{s: s}
}

func (r *vaccinationRepo) checkRefs(v vaccines.Vaccination) error {
	if _, ok := r.s.vaccines[v.VaccineID]; !ok {
		return apperr.MissingReference("vaccine_id")
	}
	if _, ok := r.s.pets[v.PetID]; !ok {
		return apperr.MissingReference("pet_id")
	}
	if _, ok := r.s.appointments[v.AppointmentID]; !ok {
		return apperr.MissingReference("appointment_id")
	}
	return nil
}

func (r *vaccinationRepo) Create(_ context.Context, v vaccines.Vaccination) (vaccines.Vaccination, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.checkRefs(v); err != nil {
		return vaccines.Vaccination{}, err
	}
	v.ID = r.s.next("vaccinations")
	v.Vaccine = vaccines.Vaccine{}
	r.s.vaccinations[v.ID] = v
	return r.s.loadVaccination(v), nil
}

func (r *vaccinationRepo) List(_ context.Context) ([]vaccines.Vaccination, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	all := sorted(r.s.vaccinations)
	out := make([]vaccines.Vaccination, 0, len(all))
	for _, v := range all {
		out = append(out, r.s.loadVaccination(v))
	}
	return out, nil
}

func (r *vaccinationRepo) GetByID(_ context.Context, id int64) (vaccines.Vaccination, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	v, ok := r.s.vaccinations[id]
	if !ok {
		return vaccines.Vaccination{}, apperr.ErrNotFound
	}
	return r.s.loadVaccination(v), nil
}

func (r *vaccinationRepo) Update(_ context.Context, v vaccines.Vaccination) (vaccines.Vaccination, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.vaccinations[v.ID]; !ok {
		return vaccines.Vaccination{}, apperr.ErrNotFound
	}
	if err := r.checkRefs(v); err != nil {
		return vaccines.Vaccination{}, err
	}
	v.Vaccine = vaccines.Vaccine{}
	r.s.vaccinations[v.ID] = v
	return r.s.loadVaccination(v), nil
}

func (r *vaccinationRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.vaccinations[id]; !ok {
		return apperr.ErrNotFound
	}
	delete(r.s.vaccinations, id)
	return nil
}
