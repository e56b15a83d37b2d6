package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin   = "admin"
	RoleCashier = "cashier"
)

// User representa un usuario de la sesión (login demo, sin RBAC real).
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string
	CreatedAt    time.Time
}
