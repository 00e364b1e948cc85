package auth

import "context"

// AuthVerifier verifica un token y devuelve claims o error.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

// TokenManager firma y parsea tokens. Parse solo valida firma, algoritmo y
// expiración: no sabe si el usuario todavía existe.
type TokenManager interface {
	Issue(subject, role string) (Token, error)
	Parse(token string) (Claims, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}
