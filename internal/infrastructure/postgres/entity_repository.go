package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/voxly/voxly-api/internal/domain/entity"
	"github.com/voxly/voxly-api/internal/domain/repository"
)

var _ repository.EntityRepository = (*EntityRepo)(nil)

// EntityRepo implementación del puerto EntityRepository sobre PostgreSQL.
type EntityRepo struct {
	pool *pgxpool.Pool
}

// NewEntityRepository construye el adaptador de persistencia para entidades.
func NewEntityRepository(pool *pgxpool.Pool) *EntityRepo {
	return &EntityRepo{pool: pool}
}

// Create persiste una nueva entidad.
func (r *EntityRepo) Create(e *entity.Entity) error {
	query := `
		INSERT INTO entities (name, created_at)
		VALUES ($1, $2) RETURNING id`
	err := r.pool.QueryRow(context.Background(), query, e.Name, e.CreatedAt).Scan(&e.ID)
	if err != nil {
		return fmt.Errorf("insert entity: %w", err)
	}
	return nil
}

// GetByID obtiene una entidad viva por ID; (nil, nil) si no existe o está borrada.
func (r *EntityRepo) GetByID(id int64) (*entity.Entity, error) {
	query := `
		SELECT id, name, created_at, updated_at, deleted_at
		FROM entities WHERE id = $1 AND ` + liveFilter
	var e entity.Entity
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.Name, &e.CreatedAt, &e.UpdatedAt, &e.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get entity by id: %w", err)
	}
	return &e, nil
}

// FindFirstLive devuelve la entidad viva más antigua (tenant por defecto del registro).
func (r *EntityRepo) FindFirstLive() (*entity.Entity, error) {
	query := `
		SELECT id, name, created_at, updated_at, deleted_at
		FROM entities WHERE ` + liveFilter + `
		ORDER BY id ASC LIMIT 1`
	var e entity.Entity
	err := r.pool.QueryRow(context.Background(), query).Scan(
		&e.ID, &e.Name, &e.CreatedAt, &e.UpdatedAt, &e.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find first live entity: %w", err)
	}
	return &e, nil
}
