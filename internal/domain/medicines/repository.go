package medicines

import "context"

type MedicineRepository interface {
	Create(ctx context.Context, m Medicine) (Medicine, error)
	List(ctx context.Context) ([]Medicine, error)
	GetByID(ctx context.Context, id int64) (Medicine, error)
	Update(ctx context.Context, m Medicine) (Medicine, error)
	Delete(ctx context.Context, id int64) error
}

type TakeRepository interface {
	Create(ctx context.Context, t Take) (Take, error)
	List(ctx context.Context) ([]Take, error)
	GetByID(ctx context.Context, id int64) (Take, error)
	Update(ctx context.Context, t Take) (Take, error)
	Delete(ctx context.Context, id int64) error
}
