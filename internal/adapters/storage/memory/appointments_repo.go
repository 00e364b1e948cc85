package memory

import (
	"context"

	"vet-clinic/internal/domain/appointments"
	"vet-clinic/internal/platform/apperr"
)

type appointmentRepo struct {
	s *Store
}

func NewAppointmentRepo(s *Store) appointments.Repository {
	return &appointmentRepo{s: s}
}

func (r *appointmentRepo) checkRefs(a appointments.Appointment) error {
	if _, ok := r.s.pets[a.PetID]; !ok {
		return apperr.MissingReference("pet_id")
	}
	if _, ok := r.s.clinics[a.ClinicID]; !ok {
		return apperr.MissingReference("clinic_id")
	}
	return nil
}

// strip deja solo las columnas propias de la cita.
func strip(a appointments.Appointment) appointments.Appointment {
	return appointments.Appointment{
		ID:               a.ID,
		PetID:            a.PetID,
		ClinicID:         a.ClinicID,
		ScheduledAt:      a.ScheduledAt,
		Status:           a.Status,
		ConclusionStatus: a.ConclusionStatus,
		Conclusion:       a.Conclusion,
	}
}

func (r *appointmentRepo) Create(_ context.Context, a appointments.Appointment) (appointments.Appointment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.checkRefs(a); err != nil {
		return appointments.Appointment{}, err
	}
	a = strip(a)
	a.ID = r.s.next("appointments")
	r.s.appointments[a.ID] = a
	return r.s.loadAppointment(a), nil
}

func (r *appointmentRepo) List(_ context.Context) ([]appointments.Appointment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	all := sorted(r.s.appointments)
	out := make([]appointments.Appointment, 0, len(all))
	for _, a := range all {
		out = append(out, r.s.loadAppointment(a))
	}
	return out, nil
}

func (r *appointmentRepo) GetByID(_ context.Context, id int64) (appointments.Appointment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	a, ok := r.s.appointments[id]
	if !ok {
		return appointments.Appointment{}, apperr.ErrNotFound
	}
	return r.s.loadAppointment(a), nil
}

func (r *appointmentRepo) Update(_ context.Context, a appointments.Appointment) (appointments.Appointment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.appointments[a.ID]; !ok {
		return appointments.Appointment{}, apperr.ErrNotFound
	}
	if err := r.checkRefs(a); err != nil {
		return appointments.Appointment{}, err
	}
	a = strip(a)
	r.s.appointments[a.ID] = a
	return r.s.loadAppointment(a), nil
}

func (r *appointmentRepo) UpdateStatus(_ context.Context, id int64, status string) (appointments.Appointment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	a, ok := r.s.appointments[id]
	if !ok {
		return appointments.Appointment{}, apperr.ErrNotFound
	}
	a.Status = status
	r.s.appointments[id] = a
	return r.s.loadAppointment(a), nil
}

func (r *appointmentRepo) UpdateConclusion(_ context.Context, id int64, conclusionStatus string, conclusion *string) (appointments.Appointment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	a, ok := r.s.appointments[id]
	if !ok {
		return appointments.Appointment{}, apperr.ErrNotFound
	}
	a.ConclusionStatus = conclusionStatus
	a.Conclusion = conclusion
	r.s.appointments[id] = a
	return r.s.loadAppointment(a), nil
}

func (r *appointmentRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.appointments[id]; !ok {
		return apperr.ErrNotFound
	}
	r.s.deleteAppointment(id)
	return nil
}
