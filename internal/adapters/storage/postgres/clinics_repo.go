package postgres

import (
	"context"

	"vet-clinic/internal/domain/clinics"
	"vet-clinic/internal/platform/dbx"
)

type ClinicsRepo struct {
	db dbx.DBTX
}

func NewClinicsRepo(db dbx.DBTX) *ClinicsRepo {
	return &ClinicsRepo{db: db}
}

const clinicColumns = `id, name, address, phone`

func scanClinic(s scanner) (clinics.Clinic, error) {
	var c clinics.Clinic
	if err := s.Scan(&c.ID, &c.Name, &c.Address, &c.Phone); err != nil {
		return clinics.Clinic{}, translate(err)
	}
	return c, nil
}

func (r *ClinicsRepo) Create(ctx context.Context, c clinics.Clinic) (clinics.Clinic, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO clinics (name, address, phone)
		VALUES ($1, $2, $3)
		RETURNING `+clinicColumns,
		c.Name, c.Address, c.Phone,
	)
	return scanClinic(row)
}

func (r *ClinicsRepo) List(ctx context.Context) ([]clinics.Clinic, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+clinicColumns+` FROM clinics ORDER BY id`)
	if err != nil {
		return nil, translate(err)
	}
	return collect(rows, scanClinic)
}

func (r *ClinicsRepo) GetByID(ctx context.Context, id int64) (clinics.Clinic, error) {
	return scanClinic(r.db.QueryRowContext(ctx, `SELECT `+clinicColumns+` FROM clinics WHERE id = $1`, id))
}

func (r *ClinicsRepo) Update(ctx context.Context, c clinics.Clinic) (clinics.Clinic, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE clinics SET name = $2, address = $3, phone = $4
		WHERE id = $1
		RETURNING `+clinicColumns,
		c.ID, c.Name, c.Address, c.Phone,
	)
	return scanClinic(row)
}

// Delete: appointments.clinic_id es ON DELETE RESTRICT, la base rechaza el
// borrado si hay citas.
func (r *ClinicsRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM clinics WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return clinics.ErrHasAppointments
		}
		return translate(err)
	}
	return expectOne(res)
}
