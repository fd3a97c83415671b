package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/voxly/voxly-api/internal/application/access"
	"github.com/voxly/voxly-api/internal/application/dto"
	"github.com/voxly/voxly-api/internal/application/usecase"
	"github.com/voxly/voxly-api/internal/domain"
)

// StoreHandler maneja el CRUD de tiendas, siempre dentro del tenant del caller.
type StoreHandler struct {
	uc    *usecase.StoreUseCase
	guard *access.Guard
}

// NewStoreHandler construye el handler.
func NewStoreHandler(uc *usecase.StoreUseCase, guard *access.Guard) *StoreHandler {
	return &StoreHandler{uc: uc, guard: guard}
}

// Create godoc
// @Summary      Crear tienda bajo la entidad del caller
// @Tags         stores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStoreRequest  true  "name"
// @Success      201   {object}  dto.StoreResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stores/register [post]
func (h *StoreHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStoreRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	out, err := h.uc.Create(GetEntityID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrStoreNameTaken) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "STORE_NAME_TAKEN", Message: "el nombre de la tienda debe ser único dentro de la entidad"})
		}
		if errors.Is(err, domain.ErrEntityInactive) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "ENTITY_INACTIVE", Message: "entidad no encontrada o inactiva"})
		}
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener tienda por ID
// @Tags         stores
// @Security     Bearer
// @Produce      json
// @Param        storeId  path  int  true  "ID de la tienda"
// @Success      200  {object}  dto.StoreResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stores/{storeId} [get]
func (h *StoreHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "storeId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "storeId debe ser numérico"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return internalError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tienda no encontrada"})
	}
	ok, err := h.guard.ValidateStoreAccess(id, GetEntityID(c))
	if err != nil {
		return internalError(c, err)
	}
	if !ok {
		return accessDenied(c)
	}
	return c.JSON(out)
}

// ListByEntity godoc
// @Summary      Listar tiendas de una entidad (sólo la propia)
// @Tags         stores
// @Security     Bearer
// @Produce      json
// @Param        entityId  path  int  true  "ID de la entidad"
// @Success      200  {array}   dto.StoreResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/stores/entity/{entityId} [get]
func (h *StoreHandler) ListByEntity(c *fiber.Ctx) error {
	entityID, err := parseID(c, "entityId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "entityId debe ser numérico"})
	}
	if entityID != GetEntityID(c) {
		return accessDenied(c)
	}
	out, err := h.uc.ListByEntity(entityID)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Renombrar tienda
// @Tags         stores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        storeId  path  int  true  "ID de la tienda"
// @Param        body     body  dto.UpdateStoreRequest  true  "name"
// @Success      200  {object}  dto.StoreResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/stores/{storeId} [put]
func (h *StoreHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "storeId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "storeId debe ser numérico"})
	}
	ok, err := h.guard.ValidateStoreAccess(id, GetEntityID(c))
	if err != nil {
		return internalError(c, err)
	}
	if !ok {
		return accessDenied(c)
	}
	var in dto.UpdateStoreRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		if errors.Is(err, domain.ErrStoreNameTaken) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "STORE_NAME_TAKEN", Message: "el nombre de la tienda debe ser único dentro de la entidad"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tienda no encontrada"})
		}
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrar tienda (soft delete)
// @Tags         stores
// @Security     Bearer
// @Param        storeId  path  int  true  "ID de la tienda"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/stores/{storeId} [delete]
func (h *StoreHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "storeId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "storeId debe ser numérico"})
	}
	ok, err := h.guard.ValidateStoreAccess(id, GetEntityID(c))
	if err != nil {
		return internalError(c, err)
	}
	if !ok {
		return accessDenied(c)
	}
	if err := h.uc.Delete(id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tienda no encontrada"})
		}
		return internalError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
