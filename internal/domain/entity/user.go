package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User representa un usuario del sistema.
// El hash de password es bcrypt (salt por usuario + factor de trabajo);
// nunca circula en plano por el dominio después de persistir.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Role         string // admin, user
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
