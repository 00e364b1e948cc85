package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"vet-clinic/internal/domain/medicines"
	"vet-clinic/internal/platform/dbx"
)

type MedicinesRepo struct {
	db *sql.DB
}

func NewMedicinesRepo(db *sql.DB) *MedicinesRepo {
	return &MedicinesRepo{db: db}
}

const medicineColumns = `id, name, period_hours`

func scanMedicine(s scanner) (medicines.Medicine, error) {
	var m medicines.Medicine
	if err := s.Scan(&m.ID, &m.Name, &m.PeriodHours); err != nil {
		return medicines.Medicine{}, translate(err)
	}
	return m, nil
}

func (r *MedicinesRepo) Create(ctx context.Context, m medicines.Medicine) (medicines.Medicine, error) {
	row := r.db.QueryRowContext(ctx,
		`INSERT INTO medicines (name, period_hours) VALUES ($1, $2) RETURNING `+medicineColumns,
		m.Name, m.PeriodHours,
	)
	return scanMedicine(row)
}

func (r *MedicinesRepo) List(ctx context.Context) ([]medicines.Medicine, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+medicineColumns+` FROM medicines ORDER BY id`)
	if err != nil {
		return nil, translate(err)
	}
	return collect(rows, scanMedicine)
}

func (r *MedicinesRepo) GetByID(ctx context.Context, id int64) (medicines.Medicine, error) {
	return scanMedicine(r.db.QueryRowContext(ctx, `SELECT `+medicineColumns+` FROM medicines WHERE id = $1`, id))
}

func (r *MedicinesRepo) Update(ctx context.Context, m medicines.Medicine) (medicines.Medicine, error) {
	row := r.db.QueryRowContext(ctx,
		`UPDATE medicines SET name = $2, period_hours = $3 WHERE id = $1 RETURNING `+medicineColumns,
		m.ID, m.Name, m.PeriodHours,
	)
	return scanMedicine(row)
}

func (r *MedicinesRepo) Delete(ctx context.Context, id int64) error {
	return dbx.WithTx(ctx, r.db, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM medicine_takes WHERE medicine_id = $1`, id); err != nil {
			return translate(err)
		}
		return deleteRow(ctx, tx, "medicines", id)
	})
}

type TakesRepo struct {
	db dbx.DBTX
}

func NewTakesRepo(db dbx.DBTX) *TakesRepo {
	return &TakesRepo{db: db}
}

// takeSelect espera la tabla o CTE con alias t.
const takeSelect = `
	SELECT t.id, t.medicine_id, t.pet_id, t.taken_at, m.id, m.name, m.period_hours
	FROM %s t
	JOIN medicines m ON m.id = t.medicine_id`

const takeReturning = `RETURNING id, medicine_id, pet_id, taken_at`

func scanTake(s scanner) (medicines.Take, error) {
	var t medicines.Take
	err := s.Scan(&t.ID, &t.MedicineID, &t.PetID, &t.TakenAt,
		&t.Medicine.ID, &t.Medicine.Name, &t.Medicine.PeriodHours)
	if err != nil {
		return medicines.Take{}, translate(err)
	}
	t.TakenAt = t.TakenAt.UTC()
	return t, nil
}

func (r *TakesRepo) Create(ctx context.Context, t medicines.Take) (medicines.Take, error) {
	row := r.db.QueryRowContext(ctx, `
		WITH t AS (
			INSERT INTO medicine_takes (medicine_id, pet_id, taken_at)
			VALUES ($1, $2, $3)
			`+takeReturning+`
		)`+fmt.Sprintf(takeSelect, "t"),
		t.MedicineID, t.PetID, t.TakenAt.UTC(),
	)
	return scanTake(row)
}

func (r *TakesRepo) List(ctx context.Context) ([]medicines.Take, error) {
	rows, err := r.db.QueryContext(ctx, fmt.Sprintf(takeSelect, "medicine_takes")+` ORDER BY t.id`)
	if err != nil {
		return nil, translate(err)
	}
	return collect(rows, scanTake)
}

func (r *TakesRepo) GetByID(ctx context.Context, id int64) (medicines.Take, error) {
	return scanTake(r.db.QueryRowContext(ctx, fmt.Sprintf(takeSelect, "medicine_takes")+` WHERE t.id = $1`, id))
}

func (r *TakesRepo) Update(ctx context.Context, t medicines.Take) (medicines.Take, error) {
	row := r.db.QueryRowContext(ctx, `
		WITH t AS (
			UPDATE medicine_takes SET medicine_id = $2, pet_id = $3, taken_at = $4
			WHERE id = $1
			`+takeReturning+`
		)`+fmt.Sprintf(takeSelect, "t"),
		t.ID, t.MedicineID, t.PetID, t.TakenAt.UTC(),
	)
	return scanTake(row)
}

func (r *TakesRepo) Delete(ctx context.Context, id int64) error {
	return deleteRow(ctx, r.db, "medicine_takes", id)
}
