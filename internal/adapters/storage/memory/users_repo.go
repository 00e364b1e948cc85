package memory

import (
	"context"
	"strings"

	"vet-clinic/internal/domain/users"
	"vet-clinic/internal/platform/apperr"
)

type userRepo struct {
	s *Store
}

func NewUserRepo(s *Store) users.Repository {
	return &userRepo{s: s}
}

func (r *userRepo) Create(_ context.Context, u users.User) (users.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u.Email = strings.ToLower(u.Email)
	for _, existing := range r.s.users {
		if existing.Email == u.Email {
			return users.User{}, apperr.Conflict("email already registered")
		}
	}
	u.ID = r.s.next("users")
	r.s.users[u.ID] = u
	return u, nil
}

func (r *userRepo) GetByID(_ context.Context, id int64) (users.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return users.User{}, apperr.ErrNotFound
	}
	return u, nil
}

func (r *userRepo) GetByEmail(_ context.Context, email string) (users.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	email = strings.ToLower(strings.TrimSpace(email))
	for _, u := range r.s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return users.User{}, apperr.ErrNotFound
}

func (r *userRepo) UpdatePassword(_ context.Context, id int64, hash string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[id]
	if !ok {
		return apperr.ErrNotFound
	}
	u.PasswordHash = hash
	r.s.users[id] = u
	return nil
}
