package memory

import (
	"context"

	"vet-clinic/internal/domain/clinics"
	"vet-clinic/internal/platform/apperr"
)

type clinicRepo struct {
	s *Store
}

func NewClinicRepo(s *Store) clinics.Repository {
	return &clinicRepo{s: s}
}

func (r *clinicRepo) Create(_ context.Context, c clinics.Clinic) (clinics.Clinic, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c.ID = r.s.next("clinics")
	r.s.clinics[c.ID] = c
	return c, nil
}

func (r *clinicRepo) List(_ context.Context) ([]clinics.Clinic, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return sorted(r.s.clinics), nil
}

func (r *clinicRepo) GetByID(_ context.Context, id int64) (clinics.Clinic, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.clinics[id]
	if !ok {
		return clinics.Clinic{}, apperr.ErrNotFound
	}
	return c, nil
}

func (r *clinicRepo) Update(_ context.Context, c clinics.Clinic) (clinics.Clinic, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.clinics[c.ID]; !ok {
		return clinics.Clinic{}, apperr.ErrNotFound
	}
	r.s.clinics[c.ID] = c
	return c, nil
}

// Delete: RESTRICT, igual que la FK appointments.clinic_id.
func (r *clinicRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.clinics[id]; !ok {
		return apperr.ErrNotFound
	}
	for _, a := range r.s.appointments {
		if a.ClinicID == id {
			return clinics.ErrHasAppointments
		}
	}
	delete(r.s.clinics, id)
	return nil
}
