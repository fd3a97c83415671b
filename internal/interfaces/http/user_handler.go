package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/voxly/voxly-api/internal/application/dto"
	"github.com/voxly/voxly-api/internal/application/usecase"
	"github.com/voxly/voxly-api/internal/domain"
)

// UserHandler maneja el CRUD de usuarios (rutas admin salvo lectura).
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Create godoc
// @Summary      Crear usuario dentro de la entidad del admin
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUserRequest  true  "name, email, password, role"
// @Success      201   {object}  dto.UserResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/users/register [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.Email == "" || in.Password == "" || in.Role == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name, email, password y role son requeridos"})
	}
	out, err := h.uc.Create(GetEntityID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email ya está registrado"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "role inválido"})
		}
		if errors.Is(err, domain.ErrEntityInactive) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "ENTITY_INACTIVE", Message: "entidad no encontrada o inactiva"})
		}
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener usuario por ID (misma entidad del caller)
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del usuario"
// @Success      200  {object}  dto.UserResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id} [get]
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser numérico"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		if errors.Is(err, domain.ErrEntityInactive) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
		}
		return internalError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
	}
	// Frontera de tenant: un usuario de otra entidad no es visible.
	if out.EntityID != GetEntityID(c) {
		return accessDenied(c)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar usuarios de la entidad del caller
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.UserResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListByEntity(GetEntityID(c))
	if err != nil {
		if errors.Is(err, domain.ErrEntityInactive) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "ENTITY_INACTIVE", Message: "entidad no encontrada o inactiva"})
		}
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar usuario (admin; entity_id es inmutable)
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del usuario"
// @Param        body  body  dto.UpdateUserRequest  true  "campos opcionales"
// @Success      200   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/users/{id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser numérico"})
	}
	if ok, err := h.sameEntity(c, id); err != nil {
		return internalError(c, err)
	} else if !ok {
		return accessDenied(c)
	}
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEntityImmutable):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "ENTITY_IMMUTABLE", Message: "la entidad de un usuario no puede reasignarse"})
		case errors.Is(err, domain.ErrNoFieldsToUpdate):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NO_FIELDS", Message: "no hay campos para actualizar"})
		case errors.Is(err, domain.ErrEmailInUse):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_IN_USE", Message: "el email ya está en uso"})
		case errors.Is(err, domain.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "role inválido"})
		}
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrar usuario (soft delete, admin)
// @Tags         users
// @Security     Bearer
// @Param        id  path  int  true  "ID del usuario"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser numérico"})
	}
	if ok, err := h.sameEntity(c, id); err != nil {
		return internalError(c, err)
	} else if !ok {
		return accessDenied(c)
	}
	if err := h.uc.Delete(id); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
		}
		return internalError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// sameEntity verifica que el usuario objetivo pertenezca a la entidad del caller.
// Un usuario inexistente pasa: el caso de uso responderá NOT_FOUND después,
// sin revelar si el id existe en otra entidad.
func (h *UserHandler) sameEntity(c *fiber.Ctx, userID int64) (bool, error) {
	target, err := h.uc.GetByID(userID)
	if err != nil {
		if errors.Is(err, domain.ErrEntityInactive) {
			return true, nil
		}
		return false, err
	}
	if target == nil {
		return true, nil
	}
	return target.EntityID == GetEntityID(c), nil
}

func parseID(c *fiber.Ctx, name string) (int64, error) {
	return strconv.ParseInt(c.Params(name), 10, 64)
}

func accessDenied(c *fiber.Ctx) error {
	return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "ACCESS_DENIED", Message: "acceso denegado a este recurso"})
}
