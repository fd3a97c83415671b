package repository

import "github.com/voxly/voxly-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Las lecturas devuelven (nil, nil) cuando no hay fila viva que coincida.
type UserRepository interface {
	Create(u *entity.User) error
	GetByID(id int64) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(u *entity.User) error
	UpdatePassword(id int64, passwordHash string) error
	ListByEntity(entityID int64) ([]*entity.User, error)
	SoftDelete(id int64) error
}
