package access

import "github.com/voxly/voxly-api/internal/domain/repository"

// Guard decide permitir/denegar acceso a recursos según la cadena de
// pertenencia del tenant (entity → store → seller) y el rol exacto.
// Devuelve booleanos: convertir false en la respuesta HTTP adecuada es
// responsabilidad de la capa de transporte.
type Guard struct {
	storeRepo  repository.StoreRepository
	sellerRepo repository.SellerRepository
}

// NewGuard construye el guard de acceso.
func NewGuard(storeRepo repository.StoreRepository, sellerRepo repository.SellerRepository) *Guard {
	return &Guard{storeRepo: storeRepo, sellerRepo: sellerRepo}
}

// RequireRole compara por igualdad exacta: no hay jerarquía implícita,
// admin no satisface un check de manager. Un rol vacío nunca pasa.
func RequireRole(role, required string) bool {
	return role != "" && role == required
}

// ValidateStoreAccess es true sólo si existe una tienda viva con ese id y su
// entity_id coincide con la entidad del caller.
func (g *Guard) ValidateStoreAccess(storeID, entityID int64) (bool, error) {
	store, err := g.storeRepo.GetByID(storeID)
	if err != nil {
		return false, err
	}
	return store != nil && store.EntityID == entityID, nil
}

// ValidateSellerAccess resuelve seller → store → entity y compara contra la
// entidad del caller. La cadena se evalúa transitivamente: un seller o una
// store soft-deleted en cualquier salto deniega, aunque los ids coincidan.
func (g *Guard) ValidateSellerAccess(sellerID, entityID int64) (bool, error) {
	seller, err := g.sellerRepo.GetByID(sellerID)
	if err != nil {
		return false, err
	}
	if seller == nil {
		return false, nil
	}
	store, err := g.storeRepo.GetByID(seller.StoreID)
	if err != nil {
		return false, err
	}
	return store != nil && store.EntityID == entityID, nil
}
