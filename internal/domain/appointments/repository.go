package appointments

import "context"

// Repository: las lecturas traen Pet (con su raza), Vaccinations->Vaccine y
// Analyses->Type ordenados por id.
type Repository interface {
	Create(ctx context.Context, a Appointment) (Appointment, error)
	List(ctx context.Context) ([]Appointment, error)
	GetByID(ctx context.Context, id int64) (Appointment, error)
	Update(ctx context.Context, a Appointment) (Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status string) (Appointment, error)
	UpdateConclusion(ctx context.Context, id int64, conclusionStatus string, conclusion *string) (Appointment, error)
	// Delete borra antes vacunaciones y análisis de la cita.
	Delete(ctx context.Context, id int64) error
}
