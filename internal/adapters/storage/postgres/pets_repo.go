package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"vet-clinic/internal/domain/pets"
	"vet-clinic/internal/platform/apperr"
	"vet-clinic/internal/platform/dbx"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

// petSelect espera un CTE o tabla con alias p; la raza viene del join.
const petSelect = `
	SELECT p.id, p.owner_id, p.breed_id, p.name, p.age, p.recommendations, b.id, b.name
	FROM %s p
	JOIN breeds b ON b.id = p.breed_id`

const petReturning = `RETURNING id, owner_id, breed_id, name, age, recommendations`

func scanPet(s scanner) (pets.Pet, error) {
	var p pets.Pet
	var rec sql.NullString
	if err := s.Scan(&p.ID, &p.OwnerID, &p.BreedID, &p.Name, &p.Age, &rec, &p.Breed.ID, &p.Breed.Name); err != nil {
		return pets.Pet{}, translate(err)
	}
	p.Recommendations = stringPtr(rec)
	return p, nil
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	row := r.db.QueryRowContext(ctx, `
		WITH p AS (
			INSERT INTO pets (owner_id, breed_id, name, age, recommendations)
			VALUES ($1, $2, $3, $4, $5)
			`+petReturning+`
		)`+fmt.Sprintf(petSelect, "p"),
		p.OwnerID, p.BreedID, p.Name, p.Age, nullString(p.Recommendations),
	)
	return scanPet(row)
}

func (r *PetsRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	row := r.db.QueryRowContext(ctx, fmt.Sprintf(petSelect, "pets")+` WHERE p.id = $1`, id)
	return scanPet(row)
}

func (r *PetsRepo) ListByOwner(ctx context.Context, ownerID int64) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, fmt.Sprintf(petSelect, "pets")+` WHERE p.owner_id = $1 ORDER BY p.id`, ownerID)
	if err != nil {
		return nil, translate(err)
	}
	return collect(rows, scanPet)
}

func (r *PetsRepo) ListAll(ctx context.Context) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, fmt.Sprintf(petSelect, "pets")+` ORDER BY p.id`)
	if err != nil {
		return nil, translate(err)
	}
	return collect(rows, scanPet)
}

// Update no toca owner_id.
func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	row := r.db.QueryRowContext(ctx, `
		WITH p AS (
			UPDATE pets SET breed_id = $2, name = $3, age = $4, recommendations = $5
			WHERE id = $1
			`+petReturning+`
		)`+fmt.Sprintf(petSelect, "p"),
		p.ID, p.BreedID, p.Name, p.Age, nullString(p.Recommendations),
	)
	return scanPet(row)
}

func (r *PetsRepo) Delete(ctx context.Context, id int64) error {
	return dbx.WithTx(ctx, r.db, func(ctx context.Context, tx dbx.DBTX) error {
		n, err := deletePets(ctx, tx, `SELECT id FROM pets WHERE id = $1`, id)
		if err != nil {
			return err
		}
		if n == 0 {
			return apperr.ErrNotFound
		}
		return nil
	})
}
