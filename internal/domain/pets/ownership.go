package pets

import (
	"context"

	"vet-clinic/internal/platform/apperr"
)

// Viewer es quien hace el request. ReadAll = personal con pets:read_all.
type Viewer struct {
	UserID  int64
	ReadAll bool
}

// canSee: una mascota ajena se reporta como inexistente (404, no 403) para no
// revelar ids de otros dueños.
func (v Viewer) canSee(p Pet) bool {
	return v.ReadAll || p.OwnerID == v.UserID
}

func (s *Service) visible(ctx context.Context, v Viewer, id int64) (Pet, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Pet{}, err
	}
	if !v.canSee(p) {
		return Pet{}, apperr.ErrNotFound
	}
	return p, nil
}
