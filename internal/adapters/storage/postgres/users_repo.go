package postgres

import (
	"context"
	"strings"

	"vet-clinic/internal/domain/users"
	"vet-clinic/internal/platform/dbx"
)

type UsersRepo struct {
	db dbx.DBTX
}

func NewUsersRepo(db dbx.DBTX) *UsersRepo {
	return &UsersRepo{db: db}
}

const userColumns = `id, name, email, password_hash, role, created_at`

func scanUser(s scanner) (users.User, error) {
	var u users.User
	var role string
	if err := s.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &role, &u.CreatedAt); err != nil {
		return users.User{}, translate(err)
	}
	u.Role = users.Role(role)
	return u, nil
}

func (r *UsersRepo) Create(ctx context.Context, u users.User) (users.User, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO users (name, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING `+userColumns,
		u.Name, strings.ToLower(u.Email), u.PasswordHash, string(u.Role),
	)
	return scanUser(row)
}

func (r *UsersRepo) GetByID(ctx context.Context, id int64) (users.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1)`,
		strings.TrimSpace(email),
	)
	return scanUser(row)
}

func (r *UsersRepo) UpdatePassword(ctx context.Context, id int64, hash string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE users SET password_hash = $2 WHERE id = $1`, id, hash)
	if err != nil {
		return translate(err)
	}
	return expectOne(res)
}
