package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"vet-clinic/internal/domain/analyses"
	"vet-clinic/internal/domain/appointments"
	"vet-clinic/internal/domain/vaccines"
	"vet-clinic/internal/platform/dbx"
)

type AppointmentsRepo struct {
	db *sql.DB
}

func NewAppointmentsRepo(db *sql.DB) *AppointmentsRepo {
	return &AppointmentsRepo{db: db}
}

const appointmentSelect = `
	SELECT a.id, a.pet_id, a.clinic_id, a.scheduled_at, a.status, a.conclusion_status, a.conclusion,
	       p.id, p.owner_id, p.breed_id, p.name, p.age, p.recommendations, b.id, b.name
	FROM appointments a
	JOIN pets p ON p.id = a.pet_id
	JOIN breeds b ON b.id = p.breed_id`

func scanAppointment(s scanner) (appointments.Appointment, error) {
	var a appointments.Appointment
	var conclusion, rec sql.NullString
	err := s.Scan(
		&a.ID, &a.PetID, &a.ClinicID, &a.ScheduledAt, &a.Status, &a.ConclusionStatus, &conclusion,
		&a.Pet.ID, &a.Pet.OwnerID, &a.Pet.BreedID, &a.Pet.Name, &a.Pet.Age, &rec,
		&a.Pet.Breed.ID, &a.Pet.Breed.Name,
	)
	if err != nil {
		return appointments.Appointment{}, translate(err)
	}
	a.ScheduledAt = a.ScheduledAt.UTC()
	a.Conclusion = stringPtr(conclusion)
	a.Pet.Recommendations = stringPtr(rec)
	return a, nil
}

// load trae las citas y les cuelga vacunaciones y análisis con una query por
// relación (no una por cita).
func (r *AppointmentsRepo) load(ctx context.Context, where string, args ...any) ([]appointments.Appointment, error) {
	rows, err := r.db.QueryContext(ctx, appointmentSelect+where+` ORDER BY a.id`, args...)
	if err != nil {
		return nil, translate(err)
	}
	list, err := collect(rows, scanAppointment)
	if err != nil || len(list) == 0 {
		return list, err
	}

	ids := make([]int64, len(list))
	index := make(map[int64]int, len(list))
	for i, a := range list {
		ids[i] = a.ID
		index[a.ID] = i
		list[i].Vaccinations = []vaccines.Vaccination{}
		list[i].Analyses = []analyses.Analysis{}
	}
	arg := int64Array(ids)

	vrows, err := r.db.QueryContext(ctx,
		fmt.Sprintf(vaccinationSelect, "vaccinations")+` WHERE v.appointment_id = ANY($1::bigint[]) ORDER BY v.id`, arg)
	if err != nil {
		return nil, translate(err)
	}
	vs, err := collect(vrows, scanVaccination)
	if err != nil {
		return nil, err
	}
	for _, v := range vs {
		i := index[v.AppointmentID]
		list[i].Vaccinations = append(list[i].Vaccinations, v)
	}

	arows, err := r.db.QueryContext(ctx,
		fmt.Sprintf(analysisSelect, "analyses")+` WHERE a.appointment_id = ANY($1::bigint[]) ORDER BY a.id`, arg)
	if err != nil {
		return nil, translate(err)
	}
	as, err := collect(arows, scanAnalysis)
	if err != nil {
		return nil, err
	}
	for _, an := range as {
		i := index[an.AppointmentID]
		list[i].Analyses = append(list[i].Analyses, an)
	}

	return list, nil
}

func (r *AppointmentsRepo) List(ctx context.Context) ([]appointments.Appointment, error) {
	return r.load(ctx, "")
}

func (r *AppointmentsRepo) GetByID(ctx context.Context, id int64) (appointments.Appointment, error) {
	list, err := r.load(ctx, ` WHERE a.id = $1`, id)
	if err != nil {
		return appointments.Appointment{}, err
	}
	if len(list) == 0 {
		return appointments.Appointment{}, translate(sql.ErrNoRows)
	}
	return list[0], nil
}

// returningID ejecuta un INSERT/UPDATE ... RETURNING id y recarga la cita.
func (r *AppointmentsRepo) returningID(ctx context.Context, query string, args ...any) (appointments.Appointment, error) {
	var id int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return appointments.Appointment{}, translate(err)
	}
	return r.GetByID(ctx, id)
}

func (r *AppointmentsRepo) Create(ctx context.Context, a appointments.Appointment) (appointments.Appointment, error) {
	return r.returningID(ctx, `
		INSERT INTO appointments (pet_id, clinic_id, scheduled_at, status, conclusion_status, conclusion)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		a.PetID, a.ClinicID, a.ScheduledAt.UTC(), a.Status, a.ConclusionStatus, nullString(a.Conclusion),
	)
}

func (r *AppointmentsRepo) Update(ctx context.Context, a appointments.Appointment) (appointments.Appointment, error) {
	return r.returningID(ctx, `
		UPDATE appointments
		SET pet_id = $2, clinic_id = $3, scheduled_at = $4, status = $5, conclusion_status = $6, conclusion = $7
		WHERE id = $1
		RETURNING id`,
		a.ID, a.PetID, a.ClinicID, a.ScheduledAt.UTC(), a.Status, a.ConclusionStatus, nullString(a.Conclusion),
	)
}

func (r *AppointmentsRepo) UpdateStatus(ctx context.Context, id int64, status string) (appointments.Appointment, error) {
	return r.returningID(ctx, `UPDATE appointments SET status = $2 WHERE id = $1 RETURNING id`, id, status)
}

func (r *AppointmentsRepo) UpdateConclusion(ctx context.Context, id int64, conclusionStatus string, conclusion *string) (appointments.Appointment, error) {
	return r.returningID(ctx,
		`UPDATE appointments SET conclusion_status = $2, conclusion = $3 WHERE id = $1 RETURNING id`,
		id, conclusionStatus, nullString(conclusion),
	)
}

func (r *AppointmentsRepo) Delete(ctx context.Context, id int64) error {
	return dbx.WithTx(ctx, r.db, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM vaccinations WHERE appointment_id = $1`, id); err != nil {
			return translate(err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM analyses WHERE appointment_id = $1`, id); err != nil {
			return translate(err)
		}
		return deleteRow(ctx, tx, "appointments", id)
	})
}
