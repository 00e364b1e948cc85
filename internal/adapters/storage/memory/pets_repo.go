package memory

import (
	"context"

	"vet-clinic/internal/domain/breeds"
	"vet-clinic/internal/domain/pets"
	"vet-clinic/internal/platform/apperr"
)

type petRepo struct {
	s *Store
}

func NewPetRepo(s *Store) pets.Repository {
	return &petRepo{s: s}
}

func (r *petRepo) checkRefs(p pets.Pet) error {
	if _, ok := r.s.breeds[p.BreedID]; !ok {
		return apperr.MissingReference("breed_id")
	}
	if _, ok := r.s.users[p.OwnerID]; !ok {
		return apperr.MissingReference("owner_id")
	}
	return nil
}

func (r *petRepo) Create(_ context.Context, p pets.Pet) (pets.Pet, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.checkRefs(p); err != nil {
		return pets.Pet{}, err
	}
	p.ID = r.s.next("pets")
	p.Breed = breeds.Breed{}
	r.s.pets[p.ID] = p
	return r.s.loadPet(p), nil
}

func (r *petRepo) GetByID(_ context.Context, id int64) (pets.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.pets[id]
	if !ok {
		return pets.Pet{}, apperr.ErrNotFound
	}
	return r.s.loadPet(p), nil
}

func (r *petRepo) ListByOwner(_ context.Context, ownerID int64) ([]pets.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]pets.Pet, 0)
	for _, p := range sorted(r.s.pets) {
		if p.OwnerID == ownerID {
			out = append(out, r.s.loadPet(p))
		}
	}
	return out, nil
}

func (r *petRepo) ListAll(_ context.Context) ([]pets.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	all := sorted(r.s.pets)
	out := make([]pets.Pet, 0, len(all))
	for _, p := range all {
		out = append(out, r.s.loadPet(p))
	}
	return out, nil
}

func (r *petRepo) Update(_ context.Context, p pets.Pet) (pets.Pet, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.pets[p.ID]; !ok {
		return pets.Pet{}, apperr.ErrNotFound
	}
	if err := r.checkRefs(p); err != nil {
		return pets.Pet{}, err
	}
	p.Breed = breeds.Breed{}
	r.s.pets[p.ID] = p
	return r.s.loadPet(p), nil
}

func (r *petRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.pets[id]; !ok {
		return apperr.ErrNotFound
	}
	r.s.deletePet(id)
	return nil
}
