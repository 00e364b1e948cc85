package vaccines

import (
	"context"
	"strings"

	"vet-clinic/internal/platform/apperr"
)

type Service struct {
	vaccines     VaccineRepository
	vaccinations VaccinationRepository
}

func NewService(vaccines VaccineRepository, vaccinations VaccinationRepository) *Service {
	return &Service{vaccines: vaccines, vaccinations: vaccinations}
}

type VaccineInput struct {
	Name         string
	Manufacturer string
	Type         string
}

func (in VaccineInput) normalize() (Vaccine, error) {
	v := Vaccine{
		Name:         strings.TrimSpace(in.Name),
		Manufacturer: strings.TrimSpace(in.Manufacturer),
		Type:         strings.TrimSpace(in.Type),
	}
	switch {
	case v.Name == "":
		return Vaccine{}, apperr.Invalid("name is required")
	case v.Manufacturer == "":
		return Vaccine{}, apperr.Invalid("manufacturer is required")
	case v.Type == "":
		return Vaccine{}, apperr.Invalid("type is required")
	}
	return v, nil
}

func (s *Service) CreateVaccine(ctx context.Context, in VaccineInput) (Vaccine, error) {
	v, err := in.normalize()
	if err != nil {
		return Vaccine{}, err
	}
	return s.vaccines.Create(ctx, v)
}

func (s *Service) ListVaccines(ctx context.Context) ([]Vaccine, error) {
	return s.vaccines.List(ctx)
}

func (s *Service) GetVaccine(ctx context.Context, id int64) (Vaccine, error) {
	return s.vaccines.GetByID(ctx, id)
}

func (s *Service) UpdateVaccine(ctx context.Context, id int64, in VaccineInput) (Vaccine, error) {
	v, err := in.normalize()
	if err != nil {
		return Vaccine{}, err
	}
	v.ID = id
	return s.vaccines.Update(ctx, v)
}

// DeleteVaccine borra también las vacunaciones que la usan.
func (s *Service) DeleteVaccine(ctx context.Context, id int64) error {
	return s.vaccines.Delete(ctx, id)
}

type VaccinationInput struct {
	VaccineID     int64
	PetID         int64
	AppointmentID int64
}

func (in VaccinationInput) normalize() (Vaccination, error) {
	switch {
	case in.VaccineID <= 0:
		return Vaccination{}, apperr.Invalid("vaccine_id is required")
	case in.PetID <= 0:
		return Vaccination{}, apperr.Invalid("pet_id is required")
	case in.AppointmentID <= 0:
		return Vaccination{}, apperr.Invalid("appointment_id is required")
	}
	return Vaccination{
		VaccineID:     in.VaccineID,
		PetID:         in.PetID,
		AppointmentID: in.AppointmentID,
	}, nil
}

func (s *Service) CreateVaccination(ctx context.Context, in VaccinationInput) (Vaccination, error) {
	v, err := in.normalize()
	if err != nil {
		return Vaccination{}, err
	}
	return s.vaccinations.Create(ctx, v)
}

func (s *Service) ListVaccinations(ctx context.Context) ([]Vaccination, error) {
	return s.vaccinations.List(ctx)
}

func (s *Service) GetVaccination(ctx context.Context, id int64) (Vaccination, error) {
	return s.vaccinations.GetByID(ctx, id)
}

func (s *Service) UpdateVaccination(ctx context.Context, id int64, in VaccinationInput) (Vaccination, error) {
	v, err := in.normalize()
	if err != nil {
		return Vaccination{}, err
	}
	v.ID = id
	return s.vaccinations.Update(ctx, v)
}

func (s *Service) DeleteVaccination(ctx context.Context, id int64) error {
	return s.vaccinations.Delete(ctx, id)
}
