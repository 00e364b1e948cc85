package vaccines

import "context"

type VaccineRepository interface {
	Create(ctx context.Context, v Vaccine) (Vaccine, error)
	List(ctx context.Context) ([]Vaccine, error)
	GetByID(ctx context.Context, id int64) (Vaccine, error)
	Update(ctx context.Context, v Vaccine) (Vaccine, error)
	Delete(ctx context.Context, id int64) error
}

// VaccinationRepository valida las tres FKs en Create/Update.
type VaccinationRepository interface {
	Create(ctx context.Context, v Vaccination) (Vaccination, error)
	List(ctx context.Context) ([]Vaccination, error)
	GetByID(ctx context.Context, id int64) (Vaccination, error)
	Update(ctx context.Context, v Vaccination) (Vaccination, error)
	Delete(ctx context.Context, id int64) error
}
