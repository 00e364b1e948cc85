package analyses

import "context"

type TypeRepository interface {
	Create(ctx context.Context, t Type) (Type, error)
	List(ctx context.Context) ([]Type, error)
	GetByID(ctx context.Context, id int64) (Type, error)
	Update(ctx context.Context, t Type) (Type, error)
	Delete(ctx context.Context, id int64) error
}

type Repository interface {
	Create(ctx context.Context, a Analysis) (Analysis, error)
	List(ctx context.Context) ([]Analysis, error)
	GetByID(ctx context.Context, id int64) (Analysis, error)
	Update(ctx context.Context, a Analysis) (Analysis, error)
	Delete(ctx context.Context, id int64) error
}
