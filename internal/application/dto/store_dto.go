package dto

import "time"

// CreateStoreRequest entrada para crear una tienda bajo la entidad del caller.
type CreateStoreRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

// UpdateStoreRequest actualización parcial de una tienda.
type UpdateStoreRequest struct {
	Name *string `json:"name" validate:"omitempty,min=2,max=100"`
}

// StoreResponse salida de una tienda.
type StoreResponse struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	EntityID  int64      `json:"entity_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}
