package dto

import "time"

// CreateSellerRequest entrada para crear un vendedor dentro de una tienda.
type CreateSellerRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email"`
	StoreID int64  `json:"store_id" validate:"required"`
}

// UpdateSellerRequest actualización parcial de un vendedor.
type UpdateSellerRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=2,max=100"`
	Email *string `json:"email" validate:"omitempty,email"`
}

// SellerResponse salida de un vendedor.
type SellerResponse struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	StoreID   int64      `json:"store_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}
