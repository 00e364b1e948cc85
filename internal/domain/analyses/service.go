package analyses

import (
	"context"
	"strings"

	"vet-clinic/internal/platform/apperr"
)

type Service struct {
	types    TypeRepository
	analyses Repository
}

func NewService(types TypeRepository, analyses Repository) *Service {
	return &Service{types: types, analyses: analyses}
}

type TypeInput struct {
	Name         string
	Description  string
	Instructions string
}

func (in TypeInput) normalize() (Type, error) {
	t := Type{
		Name:         strings.TrimSpace(in.Name),
		Description:  strings.TrimSpace(in.Description),
		Instructions: strings.TrimSpace(in.Instructions),
	}
	switch {
	case t.Name == "":
		return Type{}, apperr.Invalid("name is required")
	case t.Description == "":
		return Type{}, apperr.Invalid("description is required")
	case t.Instructions == "":
		return Type{}, apperr.Invalid("instructions is required")
	}
	return t, nil
}

func (s *Service) CreateType(ctx context.Context, in TypeInput) (Type, error) {
	t, err := in.normalize()
	if err != nil {
		return Type{}, err
	}
	return s.types.Create(ctx, t)
}

func (s *Service) ListTypes(ctx context.Context) ([]Type, error) {
	return s.types.List(ctx)
}

func (s *Service) GetType(ctx context.Context, id int64) (Type, error) {
	return s.types.GetByID(ctx, id)
}

func (s *Service) UpdateType(ctx context.Context, id int64, in TypeInput) (Type, error) {
	t, err := in.normalize()
	if err != nil {
		return Type{}, err
	}
	t.ID = id
	return s.types.Update(ctx, t)
}

// DeleteType borra también los análisis de ese tipo.
func (s *Service) DeleteType(ctx context.Context, id int64) error {
	return s.types.Delete(ctx, id)
}

type Input struct {
	AppointmentID  int64
	AnalysisTypeID int64
}

func (in Input) normalize() (Analysis, error) {
	switch {
	case in.AppointmentID <= 0:
		return Analysis{}, apperr.Invalid("appointment_id is required")
	case in.AnalysisTypeID <= 0:
		return Analysis{}, apperr.Invalid("analysis_type_id is required")
	}
	return Analysis{AppointmentID: in.AppointmentID, AnalysisTypeID: in.AnalysisTypeID}, nil
}

func (s *Service) Create(ctx context.Context, in Input) (Analysis, error) {
	a, err := in.normalize()
	if err != nil {
		return Analysis{}, err
	}
	return s.analyses.Create(ctx, a)
}

func (s *Service) List(ctx context.Context) ([]Analysis, error) {
	return s.analyses.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (Analysis, error) {
	return s.analyses.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, id int64, in Input) (Analysis, error) {
	a, err := in.normalize()
	if err != nil {
		return Analysis{}, err
	}
	a.ID = id
	return s.analyses.Update(ctx, a)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.analyses.Delete(ctx, id)
}
