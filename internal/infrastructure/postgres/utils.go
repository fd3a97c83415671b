package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// liveFilter predicado de vida que toda consulta de este paquete aplica:
// una fila soft-deleted no existe para el dominio. Centralizarlo aquí evita
// que cada caso de uso tenga que razonar sobre deleted_at.
const liveFilter = "deleted_at IS NULL"

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}
