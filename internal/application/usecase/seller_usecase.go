package usecase

import (
	"time"

	"github.com/voxly/voxly-api/internal/application/dto"
	"github.com/voxly/voxly-api/internal/domain"
	"github.com/voxly/voxly-api/internal/domain/entity"
	"github.com/voxly/voxly-api/internal/domain/repository"
)

// SellerUseCase casos de uso CRUD para vendedores.
type SellerUseCase struct {
	sellerRepo repository.SellerRepository
	storeRepo  repository.StoreRepository
}

// NewSellerUseCase construye el caso de uso.
func NewSellerUseCase(sellerRepo repository.SellerRepository, storeRepo repository.StoreRepository) *SellerUseCase {
	return &SellerUseCase{sellerRepo: sellerRepo, storeRepo: storeRepo}
}

// Create crea un vendedor dentro de una tienda viva. El email debe ser único
// entre vendedores vivos; uno soft-deleted libera el suyo.
func (uc *SellerUseCase) Create(in dto.CreateSellerRequest) (*dto.SellerResponse, error) {
	existing, err := uc.sellerRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrSellerEmailTaken
	}
	store, err := uc.storeRepo.GetByID(in.StoreID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrNotFound
	}
	seller := &entity.Seller{
		StoreID:   in.StoreID,
		Name:      in.Name,
		Email:     in.Email,
		CreatedAt: time.Now(),
	}
	if err := uc.sellerRepo.Create(seller); err != nil {
		return nil, err
	}
	return toSellerResponse(seller), nil
}

// GetByID obtiene un vendedor vivo; (nil, nil) si no existe.
func (uc *SellerUseCase) GetByID(id int64) (*dto.SellerResponse, error) {
	seller, err := uc.sellerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, nil
	}
	return toSellerResponse(seller), nil
}

// ListByStore lista los vendedores vivos de una tienda.
func (uc *SellerUseCase) ListByStore(storeID int64) ([]dto.SellerResponse, error) {
	sellers, err := uc.sellerRepo.ListByStore(storeID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SellerResponse, 0, len(sellers))
	for _, s := range sellers {
		out = append(out, *toSellerResponse(s))
	}
	return out, nil
}

// Update actualiza name/email de un vendedor vivo, manteniendo el email único
// entre vivos (excluyéndose a sí mismo).
func (uc *SellerUseCase) Update(id int64, in dto.UpdateSellerRequest) (*dto.SellerResponse, error) {
	seller, err := uc.sellerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, domain.ErrNotFound
	}
	if in.Email != nil && *in.Email != seller.Email {
		other, err := uc.sellerRepo.GetByEmail(*in.Email)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != id {
			return nil, domain.ErrSellerEmailTaken
		}
		seller.Email = *in.Email
	}
	if in.Name != nil {
		seller.Name = *in.Name
	}
	now := time.Now()
	seller.UpdatedAt = &now
	if err := uc.sellerRepo.Update(seller); err != nil {
		return nil, err
	}
	return toSellerResponse(seller), nil
}

// Delete marca el vendedor como borrado (soft delete).
func (uc *SellerUseCase) Delete(id int64) error {
	seller, err := uc.sellerRepo.GetByID(id)
	if err != nil {
		return err
	}
	if seller == nil {
		return domain.ErrNotFound
	}
	return uc.sellerRepo.SoftDelete(id)
}

func toSellerResponse(s *entity.Seller) *dto.SellerResponse {
	if s == nil {
		return nil
	}
	return &dto.SellerResponse{
		ID:        s.ID,
		Name:      s.Name,
		Email:     s.Email,
		StoreID:   s.StoreID,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
