package pets

import "context"

type Repository interface {
	// Create y Update devuelven apperr.ErrInvalidInput si breed_id u owner_id
	// no existen.
	Create(ctx context.Context, p Pet) (Pet, error)
	GetByID(ctx context.Context, id int64) (Pet, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]Pet, error)
	ListAll(ctx context.Context) ([]Pet, error)
	Update(ctx context.Context, p Pet) (Pet, error)
	Delete(ctx context.Context, id int64) error
}
