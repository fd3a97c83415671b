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

var _ repository.PasswordResetRepository = (*PasswordResetRepo)(nil)

// PasswordResetRepo persistencia de tokens de reset de un solo uso.
type PasswordResetRepo struct {
	pool *pgxpool.Pool
}

// NewPasswordResetRepository construye el adaptador.
func NewPasswordResetRepository(pool *pgxpool.Pool) *PasswordResetRepo {
	return &PasswordResetRepo{pool: pool}
}

// Create persiste un token de reset recién emitido.
func (r *PasswordResetRepo) Create(pr *entity.PasswordReset) error {
	query := `
		INSERT INTO password_resets (user_id, token, expires_at, created_at)
		VALUES ($1, $2, $3, $4) RETURNING id`
	err := r.pool.QueryRow(context.Background(), query,
		pr.UserID, pr.Token, pr.ExpiresAt, pr.CreatedAt,
	).Scan(&pr.ID)
	if err != nil {
		return fmt.Errorf("insert password reset: %w", err)
	}
	return nil
}

// Consume marca el token como usado y lo devuelve en una sola sentencia.
// El WHERE condicional (no usado, no vencido) hace que dos consumos
// concurrentes del mismo token resuelvan en exactamente un ganador.
// La comparación token::text evita un error de cast ante entradas que
// no son uuid: un token malformado es simplemente inválido.
func (r *PasswordResetRepo) Consume(token string) (*entity.PasswordReset, error) {
	query := `
		UPDATE password_resets
		SET used_at = now()
		WHERE token::text = $1 AND used_at IS NULL AND expires_at > now()
		RETURNING id, user_id, token, expires_at, used_at, created_at`
	var pr entity.PasswordReset
	err := r.pool.QueryRow(context.Background(), query, token).Scan(
		&pr.ID, &pr.UserID, &pr.Token, &pr.ExpiresAt, &pr.UsedAt, &pr.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("consume password reset: %w", err)
	}
	return &pr, nil
}
