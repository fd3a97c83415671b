package entity

import "time"

// PasswordReset token opaco de un solo uso para el flujo de reset de contraseña.
// UsedAt distinto de nil significa consumido; un token consumido o vencido no
// vuelve a ser válido.
type PasswordReset struct {
	ID        int64
	UserID    int64
	Token     string // uuid opaco, se envía por el canal de correo externo
	ExpiresAt time.Time
	UsedAt    *time.Time
	CreatedAt time.Time
}
