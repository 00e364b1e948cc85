package users

import "time"

// Role define el tipo de cuenta.
// @Enum user, service
type Role string

const (
	RoleUser    Role = "user"
	RoleService Role = "service" // personal de la clínica
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleService
}

// User es el dueño de mascotas (o una cuenta de servicio de la clínica).
// Email es el identificador de login y se guarda en minúsculas.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}
