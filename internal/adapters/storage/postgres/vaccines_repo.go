package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"vet-clinic/internal/domain/vaccines"
	"vet-clinic/internal/platform/dbx"
)

type VaccinesRepo struct {
	db *sql.DB
}

func NewVaccinesRepo(db *sql.DB) *VaccinesRepo {
	return &VaccinesRepo{db: db}
}

const vaccineColumns = `id, name, manufacturer, type`

func scanVaccine(s scanner) (vaccines.Vaccine, error) {
	var v vaccines.Vaccine
	if err := s.Scan(&v.ID, &v.Name, &v.Manufacturer, &v.Type); err != nil {
		return vaccines.Vaccine{}, translate(err)
	}
	return v, nil
}

func (r *VaccinesRepo) Create(ctx context.Context, v vaccines.Vaccine) (vaccines.Vaccine, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO vaccines (name, manufacturer, type)
		VALUES ($1, $2, $3)
		RETURNING `+vaccineColumns,
		v.Name, v.Manufacturer, v.Type,
	)
	return scanVaccine(row)
}

func (r *VaccinesRepo) List(ctx context.Context) ([]vaccines.Vaccine, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+vaccineColumns+` FROM vaccines ORDER BY id`)
	if err != nil {
		return nil, translate(err)
	}
	return collect(rows, scanVaccine)
}

func (r *VaccinesRepo) GetByID(ctx context.Context, id int64) (vaccines.Vaccine, error) {
	return scanVaccine(r.db.QueryRowContext(ctx, `SELECT `+vaccineColumns+` FROM vaccines WHERE id = $1`, id))
}

func (r *VaccinesRepo) Update(ctx context.Context, v vaccines.Vaccine) (vaccines.Vaccine, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE vaccines SET name = $2, manufacturer = $3, type = $4
		WHERE id = $1
		RETURNING `+vaccineColumns,
		v.ID, v.Name, v.Manufacturer, v.Type,
	)
	return scanVaccine(row)
}

func (r *VaccinesRepo) Delete(ctx context.Context, id int64) error {
	return dbx.WithTx(ctx, r.db, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM vaccinations WHERE vaccine_id = $1`, id); err != nil {
			return translate(err)
		}
		return deleteRow(ctx, tx, "vaccines", id)
	})
}

type VaccinationsRepo struct {
	db dbx.DBTX
}

func NewVaccinationsRepo(db dbx.DBTX) *VaccinationsRepo {
	return &VaccinationsRepo{db: db}
}

// vaccinationSelect espera la tabla o CTE con alias v.
const vaccinationSelect = `
	SELECT v.id, v.vaccine_id, v.pet_id, v.appointment_id, c.id, c.name, c.manufacturer, c.type
	FROM %s v
	JOIN vaccines c ON c.id = v.vaccine_id`

const vaccinationReturning = `RETURNING id, vaccine_id, pet_id, appointment_id`

func scanVaccination(s scanner) (vaccines.Vaccination, error) {
	var v vaccines.Vaccination
	err := s.Scan(&v.ID, &v.VaccineID, &v.PetID, &v.AppointmentID,
		&v.Vaccine.ID, &v.Vaccine.Name, &v.Vaccine.Manufacturer, &v.Vaccine.Type)
	if err != nil {
		return vaccines.Vaccination{}, translate(err)
	}
	return v, nil
}

func (r *VaccinationsRepo) Create(ctx context.Context, v vaccines.Vaccination) (vaccines.Vaccination, error) {
	row := r.db.QueryRowContext(ctx, `
		WITH v AS (
			INSERT INTO vaccinations (vaccine_id, pet_id, appointment_id)
			VALUES ($1, $2, $3)
			`+vaccinationReturning+`
		)`+fmt.Sprintf(vaccinationSelect, "v"),
		v.VaccineID, v.PetID, v.AppointmentID,
	)
	return scanVaccination(row)
}

func (r *VaccinationsRepo) List(ctx context.Context) ([]vaccines.Vaccination, error) {
	rows, err := r.db.QueryContext(ctx, fmt.Sprintf(vaccinationSelect, "vaccinations")+` ORDER BY v.id`)
	if err != nil {
		return nil, translate(err)
	}
	return collect(rows, scanVaccination)
}

func (r *VaccinationsRepo) GetByID(ctx context.Context, id int64) (vaccines.Vaccination, error) {
	row := r.db.QueryRowContext(ctx, fmt.Sprintf(vaccinationSelect, "vaccinations")+` WHERE v.id = $1`, id)
	return scanVaccination(row)
}

func (r *VaccinationsRepo) Update(ctx context.Context, v vaccines.Vaccination) (vaccines.Vaccination, error) {
	row := r.db.QueryRowContext(ctx, `
		WITH v AS (
			UPDATE vaccinations SET vaccine_id = $2, pet_id = $3, appointment_id = $4
			WHERE id = $1
			`+vaccinationReturning+`
		)`+fmt.Sprintf(vaccinationSelect, "v"),
		v.ID, v.VaccineID, v.PetID, v.AppointmentID,
	)
	return scanVaccination(row)
}

func (r *VaccinationsRepo) Delete(ctx context.Context, id int64) error {
	return deleteRow(ctx, r.db, "vaccinations", id)
}
