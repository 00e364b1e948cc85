package clinics

import "context"

type Repository interface {
	Create(ctx context.Context, c Clinic) (Clinic, error)
	List(ctx context.Context) ([]Clinic, error)
	GetByID(ctx context.Context, id int64) (Clinic, error)
	Update(ctx context.Context, c Clinic) (Clinic, error)
	// Delete devuelve ErrHasAppointments si alguna cita la referencia.
	Delete(ctx context.Context, id int64) error
}
