package breeds

import (
	"context"
	"strings"

	"vet-clinic/internal/platform/apperr"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type Input struct {
	Name string
}

func (in Input) normalize() (Breed, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Breed{}, apperr.Invalid("name is required")
	}
	return Breed{Name: name}, nil
}

func (s *Service) Create(ctx context.Context, in Input) (Breed, error) {
	b, err := in.normalize()
	if err != nil {
		return Breed{}, err
	}
	return s.repo.Create(ctx, b)
}

func (s *Service) List(ctx context.Context) ([]Breed, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Breed, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, id int64, in Input) (Breed, error) {
	b, err := in.normalize()
	if err != nil {
		return Breed{}, err
	}
	b.ID = id
	return s.repo.Update(ctx, b)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
