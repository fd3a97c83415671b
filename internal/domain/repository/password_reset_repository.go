package repository

import "github.com/voxly/voxly-api/internal/domain/entity"

// PasswordResetRepository persistencia de tokens de reset de un solo uso.
type PasswordResetRepository interface {
	Create(pr *entity.PasswordReset) error
	// Consume marca el token como usado de forma atómica y lo devuelve.
	// Un token inexistente, ya usado o vencido produce (nil, nil): la
	// atomicidad del UPDATE condicional garantiza el uso único bajo concurrencia.
	Consume(token string) (*entity.PasswordReset, error)
}
