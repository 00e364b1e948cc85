// Package jwtauth firma y valida los access tokens (JWT, familia HMAC).
package jwtauth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"vet-clinic/internal/platform/apperr"
	"vet-clinic/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken es el único error que ve el cliente, sin importar la causa.
var ErrInvalidToken = fmt.Errorf("%w: could not validate credentials", apperr.ErrUnauthorized)

type Config struct {
	Secret    string
	Algorithm string // HS256 | HS384 | HS512
	TTL       time.Duration
}

type tokenClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Manager implementa auth.TokenManager.
type Manager struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
	now    func() time.Time
}

func NewManager(cfg Config) (*Manager, error) {
	if strings.TrimSpace(cfg.Secret) == "" {
		return nil, errors.New("jwt secret required")
	}
	alg := strings.ToUpper(strings.TrimSpace(cfg.Algorithm))
	if alg == "" {
		alg = "HS256"
	}
	method, ok := jwt.GetSigningMethod(alg).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("unsupported jwt algorithm %q", cfg.Algorithm)
	}
	if cfg.TTL <= 0 {
		return nil, errors.New("jwt ttl must be positive")
	}

	return &Manager{
		secret: []byte(cfg.Secret),
		method: method,
		ttl:    cfg.TTL,
		now:    time.Now,
	}, nil
}

func (m *Manager) Issue(subject, role string) (auth.Token, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return auth.Token{}, errors.New("subject required")
	}

	now := m.now().UTC()
	exp := now.Add(m.ttl)

	token := jwt.NewWithClaims(m.method, tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
			ID:        uuid.NewString(),
		},
		Email: subject,
		Role:  role,
	})

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return auth.Token{}, err
	}

	return auth.Token{
		AccessToken: signed,
		TokenType:   "bearer",
		ExpiresAt:   exp,
	}, nil
}

// Parse valida firma, algoritmo, exp y sub. UserID queda en 0: lo completa
// quien resuelve el subject contra la base.
func (m *Manager) Parse(raw string) (auth.Claims, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return auth.Claims{}, ErrInvalidToken
	}

	claims := &tokenClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{m.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || !token.Valid {
		return auth.Claims{}, ErrInvalidToken
	}

	sub := strings.TrimSpace(claims.Subject)
	if sub == "" {
		sub = strings.TrimSpace(claims.Email)
	}
	if sub == "" {
		return auth.Claims{}, ErrInvalidToken
	}

	return auth.Claims{Subject: sub, Role: claims.Role}, nil
}
