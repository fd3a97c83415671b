package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/voxly/voxly-api/internal/application/auth"
	"github.com/voxly/voxly-api/internal/application/dto"
	"github.com/voxly/voxly-api/internal/domain"
)

// AuthHandler maneja login, registro, perfil, refresh y reset de contraseña.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.AuthResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
	}
	out, err := h.uc.Login(in)
	if err != nil {
		// Usuario inexistente y contraseña incorrecta comparten código y
		// mensaje: la respuesta no distingue los dos casos.
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_CREDENTIALS", Message: "credenciales inválidas"})
		}
		if errors.Is(err, domain.ErrEntityInactive) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "ENTITY_INACTIVE", Message: "entidad no encontrada o inactiva"})
		}
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Register godoc
// @Summary      Auto-registro de usuario (rol seller, entidad por defecto)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "name, email, password"
// @Success      201   {object}  dto.AuthResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name, email y password son requeridos"})
	}
	if len(in.Password) < 6 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "password debe tener al menos 6 caracteres"})
	}
	out, err := h.uc.Register(in)
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email ya está registrado"})
		}
		if errors.Is(err, domain.ErrNoDefaultEntity) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NO_DEFAULT_ENTITY", Message: "no hay entidad disponible para el registro"})
		}
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Profile godoc
// @Summary      Perfil del usuario autenticado
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ProfileResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/auth/profile [get]
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	out, err := h.uc.GetProfile(GetUserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario o entidad no encontrados"})
		}
		return internalError(c, err)
	}
	return c.JSON(out)
}

// UpdateProfile godoc
// @Summary      Actualizar perfil propio (name, email y/o password)
// @Tags         auth
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateProfileRequest  true  "campos opcionales"
// @Success      200   {object}  dto.ProfileResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/profile [put]
func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	var in dto.UpdateProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Password != nil && len(*in.Password) < 6 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "password debe tener al menos 6 caracteres"})
	}
	out, err := h.uc.UpdateProfile(GetUserID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrNoFieldsToUpdate) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NO_FIELDS", Message: "no hay campos para actualizar"})
		}
		if errors.Is(err, domain.ErrEmailInUse) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_IN_USE", Message: "el email ya está en uso"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
		}
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Refresh godoc
// @Summary      Re-emitir token para un usuario/entidad vivos
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RefreshTokenRequest  true  "email"
// @Success      200   {object}  dto.AuthResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/auth/refresh [post]
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var in dto.RefreshTokenRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email es requerido"})
	}
	out, err := h.uc.RefreshToken(in)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
		}
		if errors.Is(err, domain.ErrEntityInactive) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "ENTITY_INACTIVE", Message: "entidad no encontrada o inactiva"})
		}
		return internalError(c, err)
	}
	return c.JSON(out)
}

// ForgotPassword godoc
// @Summary      Solicitar token de reset de contraseña
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ForgotPasswordRequest  true  "email"
// @Success      200   {object}  map[string]string
// @Router       /api/auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var in dto.ForgotPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email es requerido"})
	}
	err := h.uc.ForgotPassword(in.Email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return internalError(c, err)
	}
	// La respuesta es idéntica exista o no el email: este endpoint no sirve
	// para enumerar cuentas.
	return c.JSON(fiber.Map{"message": "si el email existe, se envió un link de reset"})
}

// ResetPassword godoc
// @Summary      Restablecer contraseña con un token de un solo uso
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ResetPasswordRequest  true  "token, password"
// @Success      200   {object}  dto.ResetPasswordResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var in dto.ResetPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Token == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "token y password son requeridos"})
	}
	if len(in.Password) < 6 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "password debe tener al menos 6 caracteres"})
	}
	out, err := h.uc.ResetPassword(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidResetToken) || errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_RESET_TOKEN", Message: "token inválido, usado o expirado"})
		}
		return internalError(c, err)
	}
	return c.JSON(out)
}

func internalError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
