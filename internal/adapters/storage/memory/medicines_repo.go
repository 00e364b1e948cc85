package memory

import (
	"context"

	"vet-clinic/internal/domain/medicines"
	"vet-clinic/internal/platform/apperr"
)

type medicineRepo struct {
	s *Store
}

func NewMedicineRepo(s *Store) medicines.MedicineRepository {
	return &medicineRepo{s: s}
}

func (r *medicineRepo) Create(_ context.Context, m medicines.Medicine) (medicines.Medicine, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	m.ID = r.s.next("medicines")
	r.s.medicines[m.ID] = m
	return m, nil
}

func (r *medicineRepo) List(_ context.Context) ([]medicines.Medicine, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return sorted(r.s.medicines), nil
}

func (r *medicineRepo) GetByID(_ context.Context, id int64) (medicines.Medicine, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	m, ok := r.s.medicines[id]
	if !ok {
		return medicines.Medicine{}, apperr.ErrNotFound
	}
	return m, nil
}

func (r *medicineRepo) Update(_ context.Context, m medicines.Medicine) (medicines.Medicine, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.medicines[m.ID]; !ok {
		return medicines.Medicine{}, apperr.ErrNotFound
	}
	r.s.medicines[m.ID] = m
	return m, nil
}

func (r *medicineRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.medicines[id]; !ok {
		return apperr.ErrNotFound
	}
	for tid, t := range r.s.takes {
		if t.MedicineID == id {
			delete(r.s.takes, tid)
		}
	}
	delete(r.s.medicines, id)
	return nil
}

type takeRepo struct {
	s *Store
}

func NewTakeRepo(s *Store) medicines.TakeRepository {
	return &takeRepo{s: s}
}

func (r *takeRepo) checkRefs(t medicines.Take) error {
	if _, ok := r.s.medicines[t.MedicineID]; !ok {
		return apperr.MissingReference("medicine_id")
	}
	if _, ok := r.s.pets[t.PetID]; !ok {
		return apperr.MissingReference("pet_id")
	}
	return nil
}

func (r *takeRepo) Create(_ context.Context, t medicines.Take) (medicines.Take, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.checkRefs(t); err != nil {
		return medicines.Take{}, err
	}
	t.ID = r.s.next("medicine_takes")
	t.Medicine = medicines.Medicine{}
	r.s.takes[t.ID] = t
	return r.s.loadTake(t), nil
}

func (r *takeRepo) List(_ context.Context) ([]medicines.Take, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	all := sorted(r.s.takes)
	out := make([]medicines.Take, 0, len(all))
	for _, t := range all {
		out = append(out, r.s.loadTake(t))
	}
	return out, nil
}

func (r *takeRepo) GetByID(_ context.Context, id int64) (medicines.Take, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	t, ok := r.s.takes[id]
	if !ok {
		return medicines.Take{}, apperr.ErrNotFound
	}
	return r.s.loadTake(t), nil
}

func (r *takeRepo) Update(_ context.Context, t medicines.Take) (medicines.Take, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.takes[t.ID]; !ok {
		return medicines.Take{}, apperr.ErrNotFound
	}
	if err := r.checkRefs(t); err != nil {
		return medicines.Take{}, err
	}
	t.Medicine = medicines.Medicine{}
	r.s.takes[t.ID] = t
	return r.s.loadTake(t), nil
}

func (r *takeRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.takes[id]; !ok {
		return apperr.ErrNotFound
	}
	delete(r.s.takes, id)
	return nil
}
