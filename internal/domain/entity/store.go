package entity

import "time"

// Store representa una tienda perteneciente a una Entity.
// El nombre es único entre las tiendas vivas de una misma entidad.
type Store struct {
	ID        int64
	EntityID  int64
	Name      string
	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
}
