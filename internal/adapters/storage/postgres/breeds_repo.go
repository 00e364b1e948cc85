package postgres

import (
	"context"
	"database/sql"

	"vet-clinic/internal/domain/breeds"
	"vet-clinic/internal/platform/dbx"
)

type BreedsRepo struct {
	db *sql.DB
}

func NewBreedsRepo(db *sql.DB) *BreedsRepo {
	return &BreedsRepo{db: db}
}

func scanBreed(s scanner) (breeds.Breed, error) {
	var b breeds.Breed
	if err := s.Scan(&b.ID, &b.Name); err != nil {
		return breeds.Breed{}, translate(err)
	}
	return b, nil
}

func (r *BreedsRepo) Create(ctx context.Context, b breeds.Breed) (breeds.Breed, error) {
	row := r.db.QueryRowContext(ctx, `INSERT INTO breeds (name) VALUES ($1) RETURNING id, name`, b.Name)
	return scanBreed(row)
}

func (r *BreedsRepo) List(ctx context.Context) ([]breeds.Breed, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM breeds ORDER BY id`)
	if err != nil {
		return nil, translate(err)
	}
	return collect(rows, scanBreed)
}

func (r *BreedsRepo) GetByID(ctx context.Context, id int64) (breeds.Breed, error) {
	return scanBreed(r.db.QueryRowContext(ctx, `SELECT id, name FROM breeds WHERE id = $1`, id))
}

func (r *BreedsRepo) Update(ctx context.Context, b breeds.Breed) (breeds.Breed, error) {
	row := r.db.QueryRowContext(ctx, `UPDATE breeds SET name = $2 WHERE id = $1 RETURNING id, name`, b.ID, b.Name)
	return scanBreed(row)
}

// Delete borra la raza con sus mascotas (y lo que cuelga de ellas).
func (r *BreedsRepo) Delete(ctx context.Context, id int64) error {
	return dbx.WithTx(ctx, r.db, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := deletePets(ctx, tx, `SELECT id FROM pets WHERE breed_id = $1`, id); err != nil {
			return err
		}
		return deleteRow(ctx, tx, "breeds", id)
	})
}
