package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"vet-clinic/internal/adapters/storage/postgres/migrations"
	"vet-clinic/internal/domain/analyses"
	"vet-clinic/internal/domain/appointments"
	"vet-clinic/internal/domain/breeds"
	"vet-clinic/internal/domain/clinics"
	"vet-clinic/internal/domain/medicines"
	"vet-clinic/internal/domain/pets"
	"vet-clinic/internal/domain/users"
	"vet-clinic/internal/domain/vaccines"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// Open abre una conexión pool a Postgres usando pgx (database/sql).
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// gooseUpContext es un seam para tests.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// Migrate aplica las migraciones embebidas.
func Migrate(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

var (
	_ users.Repository               = (*UsersRepo)(nil)
	_ breeds.Repository              = (*BreedsRepo)(nil)
	_ clinics.Repository             = (*ClinicsRepo)(nil)
	_ pets.Repository                = (*PetsRepo)(nil)
	_ vaccines.VaccineRepository     = (*VaccinesRepo)(nil)
	_ vaccines.VaccinationRepository = (*VaccinationsRepo)(nil)
	_ medicines.MedicineRepository   = (*MedicinesRepo)(nil)
	_ medicines.TakeRepository       = (*TakesRepo)(nil)
	_ analyses.TypeRepository        = (*AnalysisTypesRepo)(nil)
	_ analyses.Repository            = (*AnalysesRepo)(nil)
	_ appointments.Repository        = (*AppointmentsRepo)(nil)
)
