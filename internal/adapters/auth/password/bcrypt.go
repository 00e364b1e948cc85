package password

import (
	"errors"

	"vet-clinic/internal/platform/apperr"

	"golang.org/x/crypto/bcrypt"
)

var ErrMismatch = errors.New("password mismatch")

// Hasher implementa auth.PasswordHasher con bcrypt.
type Hasher struct {
	cost int
}

// NewHasher usa bcrypt.DefaultCost si cost está fuera de rango.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

func (h *Hasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", apperr.Invalid("password is too long")
	}
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (h *Hasher) Compare(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrMismatch
	}
	return nil
}
