package usecase

import (
	"time"

	"github.com/voxly/voxly-api/internal/application/dto"
	"github.com/voxly/voxly-api/internal/domain"
	"github.com/voxly/voxly-api/internal/domain/entity"
	"github.com/voxly/voxly-api/internal/domain/repository"
)

// StoreUseCase casos de uso CRUD para tiendas.
type StoreUseCase struct {
	storeRepo  repository.StoreRepository
	entityRepo repository.EntityRepository
}

// NewStoreUseCase construye el caso de uso.
func NewStoreUseCase(storeRepo repository.StoreRepository, entityRepo repository.EntityRepository) *StoreUseCase {
	return &StoreUseCase{storeRepo: storeRepo, entityRepo: entityRepo}
}

// Create crea una tienda bajo la entidad indicada. El nombre debe ser único
// entre las tiendas vivas de esa entidad; una tienda borrada libera su nombre.
func (uc *StoreUseCase) Create(entityID int64, in dto.CreateStoreRequest) (*dto.StoreResponse, error) {
	ent, err := uc.entityRepo.GetByID(entityID)
	if err != nil {
		return nil, err
	}
	if ent == nil {
		return nil, domain.ErrEntityInactive
	}
	existing, err := uc.storeRepo.GetByNameInEntity(entityID, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrStoreNameTaken
	}
	store := &entity.Store{
		EntityID:  entityID,
		Name:      in.Name,
		CreatedAt: time.Now(),
	}
	// El índice único parcial (entity_id, name) respalda este check bajo
	// creaciones concurrentes; el repo traduce 23505 a ErrStoreNameTaken.
	if err := uc.storeRepo.Create(store); err != nil {
		return nil, err
	}
	return toStoreResponse(store), nil
}

// GetByID obtiene una tienda viva; (nil, nil) si no existe.
func (uc *StoreUseCase) GetByID(id int64) (*dto.StoreResponse, error) {
	store, err := uc.storeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, nil
	}
	return toStoreResponse(store), nil
}

// ListByEntity lista las tiendas vivas de una entidad.
func (uc *StoreUseCase) ListByEntity(entityID int64) ([]dto.StoreResponse, error) {
	stores, err := uc.storeRepo.ListByEntity(entityID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StoreResponse, 0, len(stores))
	for _, s := range stores {
		out = append(out, *toStoreResponse(s))
	}
	return out, nil
}

// Update renombra una tienda viva manteniendo la unicidad por entidad
// (excluyéndose a sí misma del check).
func (uc *StoreUseCase) Update(id int64, in dto.UpdateStoreRequest) (*dto.StoreResponse, error) {
	store, err := uc.storeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil && *in.Name != store.Name {
		other, err := uc.storeRepo.GetByNameInEntity(store.EntityID, *in.Name)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != id {
			return nil, domain.ErrStoreNameTaken
		}
		store.Name = *in.Name
	}
	now := time.Now()
	store.UpdatedAt = &now
	if err := uc.storeRepo.Update(store); err != nil {
		return nil, err
	}
	return toStoreResponse(store), nil
}

// Delete marca la tienda como borrada (soft delete).
func (uc *StoreUseCase) Delete(id int64) error {
	store, err := uc.storeRepo.GetByID(id)
	if err != nil {
		return err
	}
	if store == nil {
		return domain.ErrNotFound
	}
	return uc.storeRepo.SoftDelete(id)
}

func toStoreResponse(s *entity.Store) *dto.StoreResponse {
	if s == nil {
		return nil
	}
	return &dto.StoreResponse{
		ID:        s.ID,
		Name:      s.Name,
		EntityID:  s.EntityID,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
