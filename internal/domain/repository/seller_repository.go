package repository

import "github.com/voxly/voxly-api/internal/domain/entity"

// SellerRepository define el puerto de persistencia para Seller (DIP).
type SellerRepository interface {
	Create(s *entity.Seller) error
	GetByID(id int64) (*entity.Seller, error)
	GetByEmail(email string) (*entity.Seller, error)
	ListByStore(storeID int64) ([]*entity.Seller, error)
	Update(s *entity.Seller) error
	SoftDelete(id int64) error
}
