package medicines

import (
	"context"
	"strings"
	"time"

	"vet-clinic/internal/platform/apperr"
)

type Service struct {
	medicines MedicineRepository
	takes     TakeRepository
}

func NewService(medicines MedicineRepository, takes TakeRepository) *Service {
	return &Service{medicines: medicines, takes: takes}
}

// MaxPeriodHours: una dosis al año como mínimo.
const MaxPeriodHours = 8760

type MedicineInput struct {
	Name        string
	PeriodHours int
}

func (in MedicineInput) normalize() (Medicine, error) {
	m := Medicine{Name: strings.TrimSpace(in.Name), PeriodHours: in.PeriodHours}
	if m.Name == "" {
		return Medicine{}, apperr.Invalid("name is required")
	}
	if m.PeriodHours < 0 {
		return Medicine{}, apperr.Invalid("period_hours must be greater than or equal to 0")
	}
	if m.PeriodHours > MaxPeriodHours {
		return Medicine{}, apperr.Invalid("period_hours must be at most %d", MaxPeriodHours)
	}
	return m, nil
}

func (s *Service) CreateMedicine(ctx context.Context, in MedicineInput) (Medicine, error) {
	m, err := in.normalize()
	if err != nil {
		return Medicine{}, err
	}
	return s.medicines.Create(ctx, m)
}

func (s *Service) ListMedicines(ctx context.Context) ([]Medicine, error) {
	return s.medicines.List(ctx)
}

func (s *Service) GetMedicine(ctx context.Context, id int64) (Medicine, error) {
	return s.medicines.GetByID(ctx, id)
}

func (s *Service) UpdateMedicine(ctx context.Context, id int64, in MedicineInput) (Medicine, error) {
	m, err := in.normalize()
	if err != nil {
		return Medicine{}, err
	}
	m.ID = id
	return s.medicines.Update(ctx, m)
}

func (s *Service) DeleteMedicine(ctx context.Context, id int64) error {
	return s.medicines.Delete(ctx, id)
}

type TakeInput struct {
	MedicineID int64
	PetID      int64
	TakenAt    time.Time
}

func (in TakeInput) normalize() (Take, error) {
	switch {
	case in.MedicineID <= 0:
		return Take{}, apperr.Invalid("medicine_id is required")
	case in.PetID <= 0:
		return Take{}, apperr.Invalid("pet_id is required")
	case in.TakenAt.IsZero():
		return Take{}, apperr.Invalid("datetime is required")
	}
	return Take{MedicineID: in.MedicineID, PetID: in.PetID, TakenAt: in.TakenAt.UTC()}, nil
}

func (s *Service) CreateTake(ctx context.Context, in TakeInput) (Take, error) {
	t, err := in.normalize()
	if err != nil {
		return Take{}, err
	}
	return s.takes.Create(ctx, t)
}

func (s *Service) ListTakes(ctx context.Context) ([]Take, error) {
	return s.takes.List(ctx)
}

func (s *Service) GetTake(ctx context.Context, id int64) (Take, error) {
	return s.takes.GetByID(ctx, id)
}

func (s *Service) UpdateTake(ctx context.Context, id int64, in TakeInput) (Take, error) {
	t, err := in.normalize()
	if err != nil {
		return Take{}, err
	}
	t.ID = id
	return s.takes.Update(ctx, t)
}

func (s *Service) DeleteTake(ctx context.Context, id int64) error {
	return s.takes.Delete(ctx, id)
}
