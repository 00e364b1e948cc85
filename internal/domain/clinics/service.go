package clinics

import (
	"context"
	"strings"

	"vet-clinic/internal/platform/apperr"
)

// ErrHasAppointments: una clínica con citas no se borra (ni en cascada).
var ErrHasAppointments = apperr.Conflict("clinic has appointments")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type Input struct {
	Name    string
	Address string
	Phone   string
}

func (in Input) normalize() (Clinic, error) {
	c := Clinic{
		Name:    strings.TrimSpace(in.Name),
		Address: strings.TrimSpace(in.Address),
		Phone:   strings.TrimSpace(in.Phone),
	}
	switch {
	case c.Name == "":
		return Clinic{}, apperr.Invalid("name is required")
	case c.Address == "":
		return Clinic{}, apperr.Invalid("address is required")
	case c.Phone == "":
		return Clinic{}, apperr.Invalid("phone is required")
	}
	return c, nil
}

func (s *Service) Create(ctx context.Context, in Input) (Clinic, error) {
	c, err := in.normalize()
	if err != nil {
		return Clinic{}, err
	}
	return s.repo.Create(ctx, c)
}

func (s *Service) List(ctx context.Context) ([]Clinic, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Clinic, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, id int64, in Input) (Clinic, error) {
	c, err := in.normalize()
	if err != nil {
		return Clinic{}, err
	}
	c.ID = id
	return s.repo.Update(ctx, c)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
