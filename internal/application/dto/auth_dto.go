package dto

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest entrada para auto-registro. El tenant no se elige: se asigna
// la entidad por defecto y el rol seller.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// RefreshTokenRequest entrada para re-emitir un token. No re-verifica la
// contraseña; el transporte que lo expone debe estar autenticado.
type RefreshTokenRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ForgotPasswordRequest solicita un token de reset; la respuesta HTTP es
// idéntica exista o no el email.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest consume un token de reset de un solo uso.
type ResetPasswordRequest struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

// UpdateProfileRequest campos opcionales de perfil; al menos uno debe venir.
// entity_id no es un campo: la entidad de un usuario es inmutable.
type UpdateProfileRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=2,max=100"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=6"`
}

// ProfileResponse identidad expuesta hacia afuera; nunca incluye el hash.
type ProfileResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	EntityID   int64  `json:"entity_id"`
	EntityName string `json:"entity_name,omitempty"`
}

// AuthResponse salida de login/register/refresh: identidad + bearer token.
type AuthResponse struct {
	User  ProfileResponse `json:"user"`
	Token string          `json:"token"`
}

// ResetPasswordResponse confirma el email cuya contraseña fue restablecida.
type ResetPasswordResponse struct {
	Email string `json:"email"`
}
