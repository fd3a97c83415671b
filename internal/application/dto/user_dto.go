package dto

import "time"

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en use case).
// La entidad del usuario es siempre la del admin que lo crea; no viaja en el body.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=admin manager seller"`
}

// UpdateUserRequest campos opcionales de actualización.
// EntityID se acepta en el body sólo para rechazarlo explícitamente:
// la pertenencia a una entidad nunca cambia por update.
type UpdateUserRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=2,max=100"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=6"`
	Role     *string `json:"role" validate:"omitempty,oneof=admin manager seller"`
	EntityID *int64  `json:"entity_id"`
}

// UserResponse salida de un usuario (sin password_hash).
type UserResponse struct {
	ID         int64      `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Role       string     `json:"role"`
	EntityID   int64      `json:"entity_id"`
	EntityName string     `json:"entity_name,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}
