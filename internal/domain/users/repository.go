package users

import "context"

type Repository interface {
	// Create devuelve apperr.ErrConflict si el email ya existe.
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	UpdatePassword(ctx context.Context, id int64, hash string) error
}
