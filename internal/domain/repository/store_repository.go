package repository

import "github.com/voxly/voxly-api/internal/domain/entity"

// StoreRepository define el puerto de persistencia para Store (DIP).
type StoreRepository interface {
	Create(s *entity.Store) error
	GetByID(id int64) (*entity.Store, error)
	// GetByNameInEntity busca una tienda viva por nombre dentro de una entidad;
	// respalda la unicidad de nombre por tenant.
	GetByNameInEntity(entityID int64, name string) (*entity.Store, error)
	ListByEntity(entityID int64) ([]*entity.Store, error)
	Update(s *entity.Store) error
	SoftDelete(id int64) error
}
