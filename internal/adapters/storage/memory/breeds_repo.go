package memory

import (
	"context"

	"vet-clinic/internal/domain/breeds"
	"vet-clinic/internal/platform/apperr"
)

type breedRepo struct {
	s *Store
}

func NewBreedRepo(s *Store) breeds.Repository {
	return &breedRepo{s: s}
}

func (r *breedRepo) Create(_ context.Context, b breeds.Breed) (breeds.Breed, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	b.ID = r.s.next("breeds")
	r.s.breeds[b.ID] = b
	return b, nil
}

func (r *breedRepo) List(_ context.Context) ([]breeds.Breed, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return sorted(r.s.breeds), nil
}

func (r *breedRepo) GetByID(_ context.Context, id int64) (breeds.Breed, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	b, ok := r.s.breeds[id]
	if !ok {
		return breeds.Breed{}, apperr.ErrNotFound
	}
	return b, nil
}

func (r *breedRepo) Update(_ context.Context, b breeds.Breed) (breeds.Breed, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.breeds[b.ID]; !ok {
		return breeds.Breed{}, apperr.ErrNotFound
	}
	r.s.breeds[b.ID] = b
	return b, nil
}

func (r *breedRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.breeds[id]; !ok {
		return apperr.ErrNotFound
	}
	r.s.deleteBreed(id)
	return nil
}
