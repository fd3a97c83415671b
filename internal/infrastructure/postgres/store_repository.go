package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/voxly/voxly-api/internal/domain"
	"github.com/voxly/voxly-api/internal/domain/entity"
	"github.com/voxly/voxly-api/internal/domain/repository"
)

var _ repository.StoreRepository = (*StoreRepo)(nil)

// StoreRepo implementación del puerto StoreRepository sobre PostgreSQL.
type StoreRepo struct {
	pool *pgxpool.Pool
}

// NewStoreRepository construye el adaptador de persistencia para tiendas.
func NewStoreRepository(pool *pgxpool.Pool) *StoreRepo {
	return &StoreRepo{pool: pool}
}

const storeColumns = "id, entity_id, name, created_at, updated_at, deleted_at"

// Create persiste una nueva tienda. Una violación del índice único
// (entity_id, name) entre vivas se traduce a ErrStoreNameTaken.
func (r *StoreRepo) Create(s *entity.Store) error {
	query := `
		INSERT INTO stores (entity_id, name, created_at)
		VALUES ($1, $2, $3) RETURNING id`
	err := r.pool.QueryRow(context.Background(), query, s.EntityID, s.Name, s.CreatedAt).Scan(&s.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrStoreNameTaken
		}
		return fmt.Errorf("insert store: %w", err)
	}
	return nil
}

// GetByID obtiene una tienda viva por ID; (nil, nil) si no existe.
func (r *StoreRepo) GetByID(id int64) (*entity.Store, error) {
	query := `SELECT ` + storeColumns + ` FROM stores WHERE id = $1 AND ` + liveFilter
	var s entity.Store
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.EntityID, &s.Name, &s.CreatedAt, &s.UpdatedAt, &s.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store by id: %w", err)
	}
	return &s, nil
}

// GetByNameInEntity busca una tienda viva por nombre dentro de una entidad.
func (r *StoreRepo) GetByNameInEntity(entityID int64, name string) (*entity.Store, error) {
	query := `SELECT ` + storeColumns + ` FROM stores
		WHERE entity_id = $1 AND name = $2 AND ` + liveFilter
	var s entity.Store
	err := r.pool.QueryRow(context.Background(), query, entityID, name).Scan(
		&s.ID, &s.EntityID, &s.Name, &s.CreatedAt, &s.UpdatedAt, &s.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store by name: %w", err)
	}
	return &s, nil
}

// ListByEntity lista las tiendas vivas de una entidad.
func (r *StoreRepo) ListByEntity(entityID int64) ([]*entity.Store, error) {
	query := `SELECT ` + storeColumns + ` FROM stores WHERE entity_id = $1 AND ` + liveFilter + `
		ORDER BY created_at DESC`
	rows, err := r.pool.Query(context.Background(), query, entityID)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	defer rows.Close()
	var list []*entity.Store
	for rows.Next() {
		var s entity.Store
		if err := rows.Scan(&s.ID, &s.EntityID, &s.Name, &s.CreatedAt, &s.UpdatedAt, &s.DeletedAt); err != nil {
			return nil, fmt.Errorf("scan store: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update actualiza una tienda viva.
func (r *StoreRepo) Update(s *entity.Store) error {
	query := `
		UPDATE stores SET name = $2, updated_at = $3
		WHERE id = $1 AND ` + liveFilter
	cmd, err := r.pool.Exec(context.Background(), query, s.ID, s.Name, s.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrStoreNameTaken
		}
		return fmt.Errorf("update store: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SoftDelete marca la tienda como borrada; la fila se conserva.
func (r *StoreRepo) SoftDelete(id int64) error {
	query := `UPDATE stores SET deleted_at = now() WHERE id = $1 AND ` + liveFilter
	cmd, err := r.pool.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("soft delete store: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
