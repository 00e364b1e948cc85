package breeds

import "context"

type Repository interface {
	Create(ctx context.Context, b Breed) (Breed, error)
	List(ctx context.Context) ([]Breed, error)
	GetByID(ctx context.Context, id int64) (Breed, error)
	Update(ctx context.Context, b Breed) (Breed, error)
	Delete(ctx context.Context, id int64) error
}
