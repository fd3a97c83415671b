package entity

import "time"

// Roles válidos para User. La comparación de roles es por igualdad exacta,
// admin no implica manager ni viceversa.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleSeller  = "seller"
)

// ValidRole reporta si el rol pertenece a la enumeración cerrada.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleManager || role == RoleSeller
}

// User representa un usuario del sistema. Pertenece a exactamente una Entity
// durante toda su vida; EntityID nunca se reasigna por el camino de update.
type User struct {
	ID           int64
	EntityID     int64
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // admin, manager, seller
	CreatedAt    time.Time
	UpdatedAt    *time.Time
	DeletedAt    *time.Time
}
