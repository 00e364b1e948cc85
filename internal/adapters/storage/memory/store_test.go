package memory

import (
	"context"
	"testing"
	"time"

	"vet-clinic/internal/domain/analyses"
	"vet-clinic/internal/domain/appointments"
	"vet-clinic/internal/domain/breeds"
	"vet-clinic/internal/domain/clinics"
	"vet-clinic/internal/domain/medicines"
	"vet-clinic/internal/domain/pets"
	"vet-clinic/internal/domain/users"
	"vet-clinic/internal/domain/vaccines"
	"vet-clinic/internal/platform/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	s           *Store
	owner       users.User
	breed       breeds.Breed
	pet         pets.Pet
	clinic      clinics.Clinic
	appointment appointments.Appointment
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()
	s := NewStore()

	owner, err := NewUserRepo(s).Create(ctx, users.User{Name: "Ana", Email: "Ana@Example.com", Role: users.RoleUser})
	require.NoError(t, err)
	breed, err := NewBreedRepo(s).Create(ctx, breeds.Breed{Name: "Beagle"})
	require.NoError(t, err)
	pet, err := NewPetRepo(s).Create(ctx, pets.Pet{Name: "Milo", Age: 3, BreedID: breed.ID, OwnerID: owner.ID})
	require.NoError(t, err)
	clinic, err := NewClinicRepo(s).Create(ctx, clinics.Clinic{Name: "Centro", Address: "Av. 1", Phone: "555"})
	require.NoError(t, err)
	appt, err := NewAppointmentRepo(s).Create(ctx, appointments.Appointment{
		PetID:            pet.ID,
		ClinicID:         clinic.ID,
		ScheduledAt:      time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
		Status:           "scheduled",
		ConclusionStatus: "pending",
	})
	require.NoError(t, err)

	return fixture{s: s, owner: owner, breed: breed, pet: pet, clinic: clinic, appointment: appt}
}

func TestUsers_EmailUniqueCaseInsensitive(t *testing.T) {
	f := newFixture(t)
	repo := NewUserRepo(f.s)

	assert.Equal(t, "ana@example.com", f.owner.Email)

	_, err := repo.Create(context.Background(), users.User{Name: "Otra", Email: "ana@example.com"})
	assert.ErrorIs(t, err, apperr.ErrConflict)

	got, err := repo.GetByEmail(context.Background(), " ANA@example.com ")
	require.NoError(t, err)
	assert.Equal(t, f.owner.ID, got.ID)
}

func TestPets_MissingReferences(t *testing.T) {
	f := newFixture(t)
	repo := NewPetRepo(f.s)
	ctx := context.Background()

	_, err := repo.Create(ctx, pets.Pet{Name: "X", BreedID: 999, OwnerID: f.owner.ID})
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
	assert.Equal(t, "breed_id references a missing row", apperr.Detail(err))

	_, err = repo.Create(ctx, pets.Pet{Name: "X", BreedID: f.breed.ID, OwnerID: 999})
	assert.Equal(t, "owner_id references a missing row", apperr.Detail(err))

	_, err = repo.Update(ctx, pets.Pet{ID: 999, Name: "X", BreedID: f.breed.ID, OwnerID: f.owner.ID})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestPets_JoinBreed(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, "Beagle", f.pet.Breed.Name)

	got, err := NewPetRepo(f.s).GetByID(context.Background(), f.pet.ID)
	require.NoError(t, err)
	assert.Equal(t, f.breed, got.Breed)
}

func TestBreedDelete_CascadesToPetsAndTheirChildren(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	vaccine, err := NewVaccineRepo(f.s).Create(ctx, vaccines.Vaccine{Name: "Rabies", Manufacturer: "Zoetis", Type: "core"})
	require.NoError(t, err)
	_, err = NewVaccinationRepo(f.s).Create(ctx, vaccines.Vaccination{VaccineID: vaccine.ID, PetID: f.pet.ID, AppointmentID: f.appointment.ID})
	require.NoError(t, err)
	med, err := NewMedicineRepo(f.s).Create(ctx, medicines.Medicine{Name: "Amoxi", PeriodHours: 12})
	require.NoError(t, err)
	_, err = NewTakeRepo(f.s).Create(ctx, medicines.Take{MedicineID: med.ID, PetID: f.pet.ID, TakenAt: time.Now().UTC()})
	require.NoError(t, err)

	require.NoError(t, NewBreedRepo(f.s).Delete(ctx, f.breed.ID))

	_, err = NewPetRepo(f.s).GetByID(ctx, f.pet.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	_, err = NewAppointmentRepo(f.s).GetByID(ctx, f.appointment.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Empty(t, f.s.vaccinations)
	assert.Empty(t, f.s.takes)

	// el catálogo no se toca
	_, err = NewVaccineRepo(f.s).GetByID(ctx, vaccine.ID)
	assert.NoError(t, err)
	_, err = NewClinicRepo(f.s).GetByID(ctx, f.clinic.ID)
	assert.NoError(t, err)
}

func TestBreedDelete_WithoutPets(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	lonely, err := NewBreedRepo(f.s).Create(ctx, breeds.Breed{Name: "Husky"})
	require.NoError(t, err)
	require.NoError(t, NewBreedRepo(f.s).Delete(ctx, lonely.ID))

	_, err = NewPetRepo(f.s).GetByID(ctx, f.pet.ID)
	assert.NoError(t, err)
	assert.ErrorIs(t, NewBreedRepo(f.s).Delete(ctx, lonely.ID), apperr.ErrNotFound)
}

func TestClinicDelete_RestrictedByAppointments(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	repo := NewClinicRepo(f.s)

	err := repo.Delete(ctx, f.clinic.ID)
	assert.ErrorIs(t, err, apperr.ErrConflict)
	_, err = repo.GetByID(ctx, f.clinic.ID)
	assert.NoError(t, err)

	require.NoError(t, NewAppointmentRepo(f.s).Delete(ctx, f.appointment.ID))
	assert.NoError(t, repo.Delete(ctx, f.clinic.ID))
}

func TestAppointments_EagerLoadAndProcedure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	at, err := NewAnalysisTypeRepo(f.s).Create(ctx, analyses.Type{Name: "Blood panel", Description: "d", Instructions: "i"})
	require.NoError(t, err)
	_, err = NewAnalysisRepo(f.s).Create(ctx, analyses.Analysis{AppointmentID: f.appointment.ID, AnalysisTypeID: at.ID})
	require.NoError(t, err)

	repo := NewAppointmentRepo(f.s)
	got, err := repo.GetByID(ctx, f.appointment.ID)
	require.NoError(t, err)
	assert.Equal(t, "Milo", got.Pet.Name)
	require.Len(t, got.Analyses, 1)
	assert.Equal(t, "Blood panel", got.Analyses[0].Type.Name)
	require.NotNil(t, got.Procedure())
	assert.Equal(t, appointments.ProcedureAnalysis, got.Procedure().Type)

	vaccine, err := NewVaccineRepo(f.s).Create(ctx, vaccines.Vaccine{Name: "Rabies", Manufacturer: "Zoetis", Type: "core"})
	require.NoError(t, err)
	_, err = NewVaccinationRepo(f.s).Create(ctx, vaccines.Vaccination{VaccineID: vaccine.ID, PetID: f.pet.ID, AppointmentID: f.appointment.ID})
	require.NoError(t, err)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, appointments.ProcedureVaccination, list[0].Procedure().Type)
	assert.Equal(t, "Rabies", list[0].Procedure().Name)
}

func TestAppointments_MissingClinic(t *testing.T) {
	f := newFixture(t)
	_, err := NewAppointmentRepo(f.s).Create(context.Background(), appointments.Appointment{
		PetID:       f.pet.ID,
		ClinicID:    42,
		ScheduledAt: time.Now().UTC(),
		Status:      "scheduled",
	})
	assert.Equal(t, "clinic_id references a missing row", apperr.Detail(err))
}

func TestIDsAreNotReused(t *testing.T) {
	s := NewStore()
	repo := NewBreedRepo(s)
	ctx := context.Background()

	a, _ := repo.Create(ctx, breeds.Breed{Name: "A"})
	require.NoError(t, repo.Delete(ctx, a.ID))
	b, _ := repo.Create(ctx, breeds.Breed{Name: "B"})

	assert.Equal(t, int64(1), a.ID)
	assert.Equal(t, int64(2), b.ID)
}
