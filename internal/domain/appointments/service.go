package appointments

import (
	"context"
	"strings"
	"time"

	"vet-clinic/internal/platform/apperr"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type Input struct {
	PetID            int64
	ClinicID         int64
	ScheduledAt      time.Time
	Status           string
	ConclusionStatus string
	Conclusion       *string
}

func (in Input) normalize() (Appointment, error) {
	a := Appointment{
		PetID:            in.PetID,
		ClinicID:         in.ClinicID,
		ScheduledAt:      in.ScheduledAt.UTC(),
		Status:           strings.TrimSpace(in.Status),
		ConclusionStatus: strings.TrimSpace(in.ConclusionStatus),
		Conclusion:       trimPtr(in.Conclusion),
	}
	switch {
	case a.PetID <= 0:
		return Appointment{}, apperr.Invalid("pet_id is required")
	case a.ClinicID <= 0:
		return Appointment{}, apperr.Invalid("clinic_id is required")
	case in.ScheduledAt.IsZero():
		return Appointment{}, apperr.Invalid("scheduled_at is required")
	case a.Status == "":
		return Appointment{}, apperr.Invalid("status is required")
	}
	if a.ConclusionStatus == "" {
		a.ConclusionStatus = DefaultConclusionStatus
	}
	return a, nil
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

func (s *Service) Create(ctx context.Context, in Input) (Appointment, error) {
	a, err := in.normalize()
	if err != nil {
		return Appointment{}, err
	}
	return s.repo.Create(ctx, a)
}

func (s *Service) List(ctx context.Context) ([]Appointment, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Appointment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, id int64, in Input) (Appointment, error) {
	a, err := in.normalize()
	if err != nil {
		return Appointment{}, err
	}
	a.ID = id
	return s.repo.Update(ctx, a)
}

func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) (Appointment, error) {
	status = strings.TrimSpace(status)
	if status == "" {
		return Appointment{}, apperr.Invalid("status is required")
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *Service) UpdateConclusion(ctx context.Context, id int64, conclusionStatus string, conclusion *string) (Appointment, error) {
	conclusionStatus = strings.TrimSpace(conclusionStatus)
	if conclusionStatus == "" {
		return Appointment{}, apperr.Invalid("conclusion_status is required")
	}
	return s.repo.UpdateConclusion(ctx, id, conclusionStatus, trimPtr(conclusion))
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
