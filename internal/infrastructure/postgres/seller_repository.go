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

var _ repository.SellerRepository = (*SellerRepo)(nil)

// SellerRepo implementación del puerto SellerRepository sobre PostgreSQL.
type SellerRepo struct {
	pool *pgxpool.Pool
}

// NewSellerRepository construye el adaptador de persistencia para vendedores.
func NewSellerRepository(pool *pgxpool.Pool) *SellerRepo {
	return &SellerRepo{pool: pool}
}

const sellerColumns = "id, store_id, name, email, created_at, updated_at, deleted_at"

// Create persiste un nuevo vendedor. Una violación del índice único de email
// entre vivos se traduce a ErrSellerEmailTaken.
func (r *SellerRepo) Create(s *entity.Seller) error {
	query := `
		INSERT INTO sellers (store_id, name, email, created_at)
		VALUES ($1, $2, $3, $4) RETURNING id`
	err := r.pool.QueryRow(context.Background(), query, s.StoreID, s.Name, s.Email, s.CreatedAt).Scan(&s.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrSellerEmailTaken
		}
		return fmt.Errorf("insert seller: %w", err)
	}
	return nil
}

// GetByID obtiene un vendedor vivo por ID; (nil, nil) si no existe.
func (r *SellerRepo) GetByID(id int64) (*entity.Seller, error) {
	query := `SELECT ` + sellerColumns + ` FROM sellers WHERE id = $1 AND ` + liveFilter
	return r.scanOne(query, id)
}

// GetByEmail obtiene un vendedor vivo por email; (nil, nil) si no existe.
func (r *SellerRepo) GetByEmail(email string) (*entity.Seller, error) {
	query := `SELECT ` + sellerColumns + ` FROM sellers WHERE email = $1 AND ` + liveFilter
	return r.scanOne(query, email)
}

func (r *SellerRepo) scanOne(query string, arg any) (*entity.Seller, error) {
	var s entity.Seller
	err := r.pool.QueryRow(context.Background(), query, arg).Scan(
		&s.ID, &s.StoreID, &s.Name, &s.Email, &s.CreatedAt, &s.UpdatedAt, &s.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get seller: %w", err)
	}
	return &s, nil
}

// ListByStore lista los vendedores vivos de una tienda.
func (r *SellerRepo) ListByStore(storeID int64) ([]*entity.Seller, error) {
	query := `SELECT ` + sellerColumns + ` FROM sellers WHERE store_id = $1 AND ` + liveFilter + `
		ORDER BY created_at DESC`
	rows, err := r.pool.Query(context.Background(), query, storeID)
	if err != nil {
		return nil, fmt.Errorf("list sellers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Seller
	for rows.Next() {
		var s entity.Seller
		if err := rows.Scan(&s.ID, &s.StoreID, &s.Name, &s.Email, &s.CreatedAt, &s.UpdatedAt, &s.DeletedAt); err != nil {
			return nil, fmt.Errorf("scan seller: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update actualiza un vendedor vivo.
func (r *SellerRepo) Update(s *entity.Seller) error {
	query := `
		UPDATE sellers SET name = $2, email = $3, updated_at = $4
		WHERE id = $1 AND ` + liveFilter
	cmd, err := r.pool.Exec(context.Background(), query, s.ID, s.Name, s.Email, s.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrSellerEmailTaken
		}
		return fmt.Errorf("update seller: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SoftDelete marca el vendedor como borrado; la fila se conserva.
func (r *SellerRepo) SoftDelete(id int64) error {
	query := `UPDATE sellers SET deleted_at = now() WHERE id = $1 AND ` + liveFilter
	cmd, err := r.pool.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("soft delete seller: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
