package memory

import (
	"context"

	"vet-clinic/internal/domain/analyses"
	"vet-clinic/internal/platform/apperr"
)

type analysisTypeRepo struct {
	s *Store
}

func NewAnalysisTypeRepo(s *Store) analyses.TypeRepository {
	return &analysisTypeRepo{s: s}
}

func (r *analysisTypeRepo) Create(_ context.Context, t analyses.Type) (analyses.Type, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	t.ID = r.s.next("analysis_types")
	r.s.analysisTypes[t.ID] = t
	return t, nil
}

func (r *analysisTypeRepo) List(_ context.Context) ([]analyses.Type, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return sorted(r.s.analysisTypes), nil
}

func (r *analysisTypeRepo) GetByID(_ context.Context, id int64) (analyses.Type, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	t, ok := r.s.analysisTypes[id]
	if !ok {
		return analyses.Type{}, apperr.ErrNotFound
	}
	return t, nil
}

func (r *analysisTypeRepo) Update(_ context.Context, t analyses.Type) (analyses.Type, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.analysisTypes[t.ID]; !ok {
		return analyses.Type{}, apperr.ErrNotFound
	}
	r.s.analysisTypes[t.ID] = t
	return t, nil
}

func (r *analysisTypeRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.analysisTypes[id]; !ok {
		return apperr.ErrNotFound
	}
	for aid, a := range r.s.analyses {
		if a.AnalysisTypeID == id {
			delete(r.s.analyses, aid)
		}
	}
	delete(r.s.analysisTypes, id)
	return nil
}

type analysisRepo struct {
	s *Store
}

func NewAnalysisRepo(s *Store) analyses.Repository {
	return &analysisRepo{s: s}
}

func (r *analysisRepo) checkRefs(a analyses.Analysis) error {
	if _, ok := r.s.appointments[a.AppointmentID]; !ok {
		return apperr.MissingReference("appointment_id")
	}
	if _, ok := r.s.analysisTypes[a.AnalysisTypeID]; !ok {
		return apperr.MissingReference("analysis_type_id")
	}
	return nil
}

func (r *analysisRepo) Create(_ context.Context, a analyses.Analysis) (analyses.Analysis, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.checkRefs(a); err != nil {
		return analyses.Analysis{}, err
	}
	a.ID = r.s.next("analyses")
	a.Type = analyses.Type{}
	r.s.analyses[a.ID] = a
	return r.s.loadAnalysis(a), nil
}

func (r *analysisRepo) List(_ context.Context) ([]analyses.Analysis, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	all := sorted(r.s.analyses)
	out := make([]analyses.Analysis, 0, len(all))
	for _, a := range all {
		out = append(out, r.s.loadAnalysis(a))
	}
	return out, nil
}

func (r *analysisRepo) GetByID(_ context.Context, id int64) (analyses.Analysis, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	a, ok := r.s.analyses[id]
	if !ok {
		return analyses.Analysis{}, apperr.ErrNotFound
	}
	return r.s.loadAnalysis(a), nil
}

func (r *analysisRepo) Update(_ context.Context, a analyses.Analysis) (analyses.Analysis, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.analyses[a.ID]; !ok {
		return analyses.Analysis{}, apperr.ErrNotFound
	}
	if err := r.checkRefs(a); err != nil {
		return analyses.Analysis{}, err
	}
	a.Type = analyses.Type{}
	r.s.analyses[a.ID] = a
	return r.s.loadAnalysis(a), nil
}

func (r *analysisRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.analyses[id]; !ok {
		return apperr.ErrNotFound
	}
	delete(r.s.analyses, id)
	return nil
}
