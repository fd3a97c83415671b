package entity

import "time"

// Entity representa un tenant/organización dueña de usuarios y tiendas.
// Una entidad soft-deleted se trata como inexistente en todas las consultas.
type Entity struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
}
