package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"vet-clinic/internal/platform/apperr"
	"vet-clinic/internal/ports/auth"
)

var (
	ErrEmailTaken = apperr.Conflict("email already registered")

	// Mismo error para usuario inexistente y password incorrecto.
	ErrBadCredentials = fmt.Errorf("%w: incorrect username or password", apperr.ErrUnauthorized)

	ErrInvalidToken = fmt.Errorf("%w: could not validate credentials", apperr.ErrUnauthorized)
)

// MaxPasswordBytes es el límite de bcrypt.
const MaxPasswordBytes = 72

type Service struct {
	repo   Repository
	hasher auth.PasswordHasher
	tokens auth.TokenManager
	now    func() time.Time
}

func NewService(repo Repository, hasher auth.PasswordHasher, tokens auth.TokenManager) *Service {
	return &Service{
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
		now:    time.Now,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     Role
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (User, error) {
	name := strings.TrimSpace(in.Name)
	email := normalizeEmail(in.Email)
	if name == "" {
		return User{}, apperr.Invalid("name is required")
	}
	if email == "" {
		return User{}, apperr.Invalid("email is required")
	}
	if in.Password == "" {
		return User{}, apperr.Invalid("password is required")
	}
	if len(in.Password) > MaxPasswordBytes {
		return User{}, apperr.Invalid("password must be at most %d bytes", MaxPasswordBytes)
	}

	role := in.Role
	if role == "" {
		role = RoleUser
	}
	if !role.Valid() {
		return User{}, apperr.Invalid("role must be one of: user service")
	}

	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return User{}, ErrEmailTaken
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return User{}, err
	}

	hash, err := s.hash(in.Password)
	if err != nil {
		return User{}, err
	}

	created, err := s.repo.Create(ctx, User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    s.now().UTC(),
	})
	if errors.Is(err, apperr.ErrConflict) {
		// carrera entre dos registros con el mismo email
		return User{}, ErrEmailTaken
	}
	return created, err
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (User, error) {
	u, err := s.repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return User{}, ErrBadCredentials
		}
		return User{}, err
	}
	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		return User{}, ErrBadCredentials
	}
	return u, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (auth.Token, error) {
	u, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return auth.Token{}, err
	}
	return s.tokens.Issue(u.Email, string(u.Role))
}

// Verify implementa auth.AuthVerifier: valida el token y lo resuelve contra la
// fila actual del usuario (rol incluido).
func (s *Service) Verify(ctx context.Context, token string) (auth.Claims, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return auth.Claims{}, err
	}

	u, err := s.repo.GetByEmail(ctx, normalizeEmail(claims.Subject))
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return auth.Claims{}, ErrInvalidToken
		}
		return auth.Claims{}, err
	}

	return auth.Claims{
		UserID:  u.ID,
		Subject: u.Email,
		Role:    string(u.Role),
	}, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ChangePassword(ctx context.Context, userID int64, oldPassword, newPassword string) error {
	if newPassword == "" {
		return apperr.Invalid("new_password is required")
	}
	if len(newPassword) > MaxPasswordBytes {
		return apperr.Invalid("new_password must be at most %d bytes", MaxPasswordBytes)
	}
	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := s.hasher.Compare(u.PasswordHash, oldPassword); err != nil {
		return apperr.Invalid("old_password is incorrect")
	}

	hash, err := s.hash(newPassword)
	if err != nil {
		return err
	}
	return s.repo.UpdatePassword(ctx, userID, hash)
}

// hash deja pasar los errores de validación del hasher tal cual (=> 400).
func (s *Service) hash(pw string) (string, error) {
	h, err := s.hasher.Hash(pw)
	if err != nil {
		if errors.Is(err, apperr.ErrInvalidInput) {
			return "", err
		}
		return "", fmt.Errorf("hash password: %w", err)
	}
	return h, nil
}
