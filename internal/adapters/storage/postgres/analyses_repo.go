package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"vet-clinic/internal/domain/analyses"
	"vet-clinic/internal/platform/dbx"
)

type AnalysisTypesRepo struct {
	db *sql.DB
}

func NewAnalysisTypesRepo(db *sql.DB) *AnalysisTypesRepo {
	return &AnalysisTypesRepo{db: db}
}

const analysisTypeColumns = `id, name, description, instructions`

func scanAnalysisType(s scanner) (analyses.Type, error) {
	var t analyses.Type
	if err := s.Scan(&t.ID, &t.Name, &t.Description, &t.Instructions); err != nil {
		return analyses.Type{}, translate(err)
	}
	return t, nil
}

func (r *AnalysisTypesRepo) Create(ctx context.Context, t analyses.Type) (analyses.Type, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO analysis_types (name, description, instructions)
		VALUES ($1, $2, $3)
		RETURNING `+analysisTypeColumns,
		t.Name, t.Description, t.Instructions,
	)
	return scanAnalysisType(row)
}

func (r *AnalysisTypesRepo) List(ctx context.Context) ([]analyses.Type, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+analysisTypeColumns+` FROM analysis_types ORDER BY id`)
	if err != nil {
		return nil, translate(err)
	}
	return collect(rows, scanAnalysisType)
}

func (r *AnalysisTypesRepo) GetByID(ctx context.Context, id int64) (analyses.Type, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+analysisTypeColumns+` FROM analysis_types WHERE id = $1`, id)
	return scanAnalysisType(row)
}

func (r *AnalysisTypesRepo) Update(ctx context.Context, t analyses.Type) (analyses.Type, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE analysis_types SET name = $2, description = $3, instructions = $4
		WHERE id = $1
		RETURNING `+analysisTypeColumns,
		t.ID, t.Name, t.Description, t.Instructions,
	)
	return scanAnalysisType(row)
}

func (r *AnalysisTypesRepo) Delete(ctx context.Context, id int64) error {
	return dbx.WithTx(ctx, r.db, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM analyses WHERE analysis_type_id = $1`, id); err != nil {
			return translate(err)
		}
		return deleteRow(ctx, tx, "analysis_types", id)
	})
}

type AnalysesRepo struct {
	db dbx.DBTX
}

func NewAnalysesRepo(db dbx.DBTX) *AnalysesRepo {
	return &AnalysesRepo{db: db}
}

// analysisSelect espera la tabla o CTE con alias a.
const analysisSelect = `
	SELECT a.id, a.appointment_id, a.analysis_type_id, t.id, t.name, t.description, t.instructions
	FROM %s a
	JOIN analysis_types t ON t.id = a.analysis_type_id`

const analysisReturning = `RETURNING id, appointment_id, analysis_type_id`

func scanAnalysis(s scanner) (analyses.Analysis, error) {
	var a analyses.Analysis
	err := s.Scan(&a.ID, &a.AppointmentID, &a.AnalysisTypeID,
		&a.Type.ID, &a.Type.Name, &a.Type.Description, &a.Type.Instructions)
	if err != nil {
		return analyses.Analysis{}, translate(err)
	}
	return a, nil
}

func (r *AnalysesRepo) Create(ctx context.Context, a analyses.Analysis) (analyses.Analysis, error) {
	row := r.db.QueryRowContext(ctx, `
		WITH a AS (
			INSERT INTO analyses (appointment_id, analysis_type_id)
			VALUES ($1, $2)
			`+analysisReturning+`
		)`+fmt.Sprintf(analysisSelect, "a"),
		a.AppointmentID, a.AnalysisTypeID,
	)
	return scanAnalysis(row)
}

func (r *AnalysesRepo) List(ctx context.Context) ([]analyses.Analysis, error) {
	rows, err := r.db.QueryContext(ctx, fmt.Sprintf(analysisSelect, "analyses")+` ORDER BY a.id`)
	if err != nil {
		return nil, translate(err)
	}
	return collect(rows, scanAnalysis)
}

func (r *AnalysesRepo) GetByID(ctx context.Context, id int64) (analyses.Analysis, error) {
	return scanAnalysis(r.db.QueryRowContext(ctx, fmt.Sprintf(analysisSelect, "analyses")+` WHERE a.id = $1`, id))
}

func (r *AnalysesRepo) Update(ctx context.Context, a analyses.Analysis) (analyses.Analysis, error) {
	row := r.db.QueryRowContext(ctx, `
		WITH a AS (
			UPDATE analyses SET appointment_id = $2, analysis_type_id = $3
			WHERE id = $1
			`+analysisReturning+`
		)`+fmt.Sprintf(analysisSelect, "a"),
		a.ID, a.AppointmentID, a.AnalysisTypeID,
	)
	return scanAnalysis(row)
}

func (r *AnalysesRepo) Delete(ctx context.Context, id int64) error {
	return deleteRow(ctx, r.db, "analyses", id)
}
