package entity

import "time"

// Seller representa un vendedor ligado a una Store y, transitivamente, a una Entity.
// El email es único entre vendedores vivos (los soft-deleted liberan el suyo).
type Seller struct {
	ID        int64
	StoreID   int64
	Name      string
	Email     string
	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
}
