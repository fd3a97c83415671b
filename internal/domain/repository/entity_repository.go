package repository

import "github.com/voxly/voxly-api/internal/domain/entity"

// EntityRepository define el puerto de persistencia para Entity (DIP).
// Todas las lecturas aplican el predicado de vida (deleted_at IS NULL):
// una entidad soft-deleted simplemente no existe para el dominio.
type EntityRepository interface {
	Create(e *entity.Entity) error
	GetByID(id int64) (*entity.Entity, error)
	// FindFirstLive devuelve la entidad viva más antigua; es el tenant por
	// defecto que recibe a los usuarios auto-registrados.
	FindFirstLive() (*entity.Entity, error)
}
