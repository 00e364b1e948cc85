package vaccines_test

import (
	"context"
	"testing"

	"vet-clinic/internal/adapters/storage/memory"
	"vet-clinic/internal/domain/vaccines"
	"vet-clinic/internal/platform/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() *vaccines.Service {
	s := memory.NewStore()
	return vaccines.NewService(memory.NewVaccineRepo(s), memory.NewVaccinationRepo(s))
}

func TestCreateVaccine_Validation(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	cases := []struct {
		in     vaccines.VaccineInput
		detail string
	}{
		{vaccines.VaccineInput{Manufacturer: "Acme", Type: "viral"}, "name is required"},
		{vaccines.VaccineInput{Name: "Rabies", Manufacturer: " ", Type: "viral"}, "manufacturer is required"},
		{vaccines.VaccineInput{Name: "Rabies", Manufacturer: "Acme"}, "type is required"},
	}
	for _, tc := range cases {
		_, err := svc.CreateVaccine(ctx, tc.in)
		require.ErrorIs(t, err, apperr.ErrInvalidInput)
		assert.Equal(t, tc.detail, apperr.Detail(err))
	}

	v, err := svc.CreateVaccine(ctx, vaccines.VaccineInput{Name: " Rabies ", Manufacturer: "Acme", Type: "viral"})
	require.NoError(t, err)
	assert.Equal(t, "Rabies", v.Name)

	_, err = svc.UpdateVaccine(ctx, 999, vaccines.VaccineInput{Name: "X", Manufacturer: "Y", Type: "Z"})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.ErrorIs(t, svc.DeleteVaccine(ctx, 999), apperr.ErrNotFound)
}

func TestCreateVaccination_Validation(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, err := svc.CreateVaccination(ctx, vaccines.VaccinationInput{PetID: 1, AppointmentID: 1})
	require.ErrorIs(t, err, apperr.ErrInvalidInput)
	assert.Equal(t, "vaccine_id is required", apperr.Detail(err))

	_, err = svc.CreateVaccination(ctx, vaccines.VaccinationInput{VaccineID: 1, AppointmentID: 1})
	require.ErrorIs(t, err, apperr.ErrInvalidInput)
	assert.Equal(t, "pet_id is required", apperr.Detail(err))

	_, err = svc.CreateVaccination(ctx, vaccines.VaccinationInput{VaccineID: 1, PetID: 1})
	require.ErrorIs(t, err, apperr.ErrInvalidInput)
	assert.Equal(t, "appointment_id is required", apperr.Detail(err))

	_, err = svc.CreateVaccination(ctx, vaccines.VaccinationInput{VaccineID: 7, PetID: 1, AppointmentID: 1})
	require.ErrorIs(t, err, apperr.ErrInvalidInput)
	assert.Equal(t, "vaccine_id references a missing row", apperr.Detail(err))

	assert.ErrorIs(t, svc.DeleteVaccination(ctx, 999), apperr.ErrNotFound)
}
