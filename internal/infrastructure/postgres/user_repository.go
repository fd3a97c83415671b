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

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

const userColumns = "id, entity_id, name, email, password_hash, role, created_at, updated_at, deleted_at"

// Create persiste un nuevo usuario. Una violación del índice único de email
// (entre vivos) se traduce a ErrEmailAlreadyExists.
func (r *UserRepo) Create(u *entity.User) error {
	query := `
		INSERT INTO users (entity_id, name, email, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	err := r.pool.QueryRow(context.Background(), query,
		u.EntityID, u.Name, u.Email, u.PasswordHash, u.Role, u.CreatedAt,
	).Scan(&u.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario vivo por ID; (nil, nil) si no existe.
func (r *UserRepo) GetByID(id int64) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 AND ` + liveFilter
	return r.scanOne(query, id)
}

// GetByEmail obtiene un usuario vivo por email; (nil, nil) si no existe.
// La comparación es case-sensitive, tal como se almacena.
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 AND ` + liveFilter
	return r.scanOne(query, email)
}

func (r *UserRepo) scanOne(query string, arg any) (*entity.User, error) {
	var u entity.User
	err := r.pool.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.EntityID, &u.Name, &u.Email, &u.PasswordHash, &u.Role,
		&u.CreatedAt, &u.UpdatedAt, &u.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// Update actualiza un usuario vivo. entity_id no aparece en el SET: la
// pertenencia al tenant es inmutable también a nivel SQL.
func (r *UserRepo) Update(u *entity.User) error {
	query := `
		UPDATE users SET name = $2, email = $3, password_hash = $4, role = $5, updated_at = $6
		WHERE id = $1 AND ` + liveFilter
	cmd, err := r.pool.Exec(context.Background(), query,
		u.ID, u.Name, u.Email, u.PasswordHash, u.Role, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailInUse
		}
		return fmt.Errorf("update user: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// UpdatePassword reemplaza sólo el hash de contraseña de un usuario vivo.
func (r *UserRepo) UpdatePassword(id int64, passwordHash string) error {
	query := `
		UPDATE users SET password_hash = $2, updated_at = now()
		WHERE id = $1 AND ` + liveFilter
	cmd, err := r.pool.Exec(context.Background(), query, id, passwordHash)
	if err != nil {
		return fmt.Errorf("update user password: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// ListByEntity lista los usuarios vivos de una entidad.
func (r *UserRepo) ListByEntity(entityID int64) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE entity_id = $1 AND ` + liveFilter + `
		ORDER BY created_at DESC`
	rows, err := r.pool.Query(context.Background(), query, entityID)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.EntityID, &u.Name, &u.Email, &u.PasswordHash, &u.Role,
			&u.CreatedAt, &u.UpdatedAt, &u.DeletedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// SoftDelete marca el usuario como borrado; la fila se conserva.
func (r *UserRepo) SoftDelete(id int64) error {
	query := `UPDATE users SET deleted_at = now() WHERE id = $1 AND ` + liveFilter
	cmd, err := r.pool.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("soft delete user: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
