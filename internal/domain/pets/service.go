package pets

import (
	"context"
	"fmt"
	"strings"

	"vet-clinic/internal/platform/apperr"
)

var ErrReadAllDenied = fmt.Errorf("%w: Not enough permissions", apperr.ErrForbidden)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// MaxAge acota age (años).
const MaxAge = 100

type Input struct {
	Name            string
	Age             int
	BreedID         int64
	Recommendations *string
}

func (in Input) normalize() (Pet, error) {
	p := Pet{
		Name:    strings.TrimSpace(in.Name),
		Age:     in.Age,
		BreedID: in.BreedID,
	}
	if p.Name == "" {
		return Pet{}, apperr.Invalid("name is required")
	}
	if p.Age < 0 {
		return Pet{}, apperr.Invalid("age must be greater than or equal to 0")
	}
	if p.Age > MaxAge {
		return Pet{}, apperr.Invalid("age must be at most %d", MaxAge)
	}
	if p.BreedID <= 0 {
		return Pet{}, apperr.Invalid("breed_id is required")
	}
	if in.Recommendations != nil {
		rec := strings.TrimSpace(*in.Recommendations)
		p.Recommendations = &rec
	}
	return p, nil
}

func (s *Service) Create(ctx context.Context, ownerID int64, in Input) (Pet, error) {
	if ownerID <= 0 {
		return Pet{}, apperr.ErrUnauthorized
	}
	p, err := in.normalize()
	if err != nil {
		return Pet{}, err
	}
	p.OwnerID = ownerID
	return s.repo.Create(ctx, p)
}

// List devuelve las mascotas del viewer; all=true (solo con ReadAll) devuelve
// todas.
func (s *Service) List(ctx context.Context, v Viewer, all bool) ([]Pet, error) {
	if all {
		if !v.ReadAll {
			return nil, ErrReadAllDenied
		}
		return s.repo.ListAll(ctx)
	}
	return s.repo.ListByOwner(ctx, v.UserID)
}

func (s *Service) Get(ctx context.Context, v Viewer, id int64) (Pet, error) {
	return s.visible(ctx, v, id)
}

// Update reemplaza los campos editables; el dueño no cambia.
func (s *Service) Update(ctx context.Context, v Viewer, id int64, in Input) (Pet, error) {
	current, err := s.visible(ctx, v, id)
	if err != nil {
		return Pet{}, err
	}

	p, err := in.normalize()
	if err != nil {
		return Pet{}, err
	}
	p.ID = id
	p.OwnerID = current.OwnerID
	return s.repo.Update(ctx, p)
}

func (s *Service) Delete(ctx context.Context, v Viewer, id int64) error {
	if _, err := s.visible(ctx, v, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
