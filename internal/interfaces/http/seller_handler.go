package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/voxly/voxly-api/internal/application/access"
	"github.com/voxly/voxly-api/internal/application/dto"
	"github.com/voxly/voxly-api/internal/application/usecase"
	"github.com/voxly/voxly-api/internal/domain"
)

// SellerHandler maneja el CRUD de vendedores. Todo acceso pasa por el guard:
// la cadena seller → store → entity debe terminar en la entidad del caller.
type SellerHandler struct {
	uc    *usecase.SellerUseCase
	guard *access.Guard
}

// NewSellerHandler construye el handler.
func NewSellerHandler(uc *usecase.SellerUseCase, guard *access.Guard) *SellerHandler {
	return &SellerHandler{uc: uc, guard: guard}
}

// Create godoc
// @Summary      Crear vendedor en una tienda propia
// @Tags         sellers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSellerRequest  true  "name, email, store_id"
// @Success      201   {object}  dto.SellerResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sellers/register [post]
func (h *SellerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSellerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.Email == "" || in.StoreID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name, email y store_id son requeridos"})
	}
	ok, err := h.guard.ValidateStoreAccess(in.StoreID, GetEntityID(c))
	if err != nil {
		return internalError(c, err)
	}
	if !ok {
		return accessDenied(c)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrSellerEmailTaken) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SELLER_EMAIL_TAKEN", Message: "el email del vendedor debe ser único"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tienda no encontrada"})
		}
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener vendedor por ID
// @Tags         sellers
// @Security     Bearer
// @Produce      json
// @Param        sellerId  path  int  true  "ID del vendedor"
// @Success      200  {object}  dto.SellerResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sellers/{sellerId} [get]
func (h *SellerHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "sellerId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "sellerId debe ser numérico"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return internalError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "vendedor no encontrado"})
	}
	ok, err := h.guard.ValidateSellerAccess(id, GetEntityID(c))
	if err != nil {
		return internalError(c, err)
	}
	if !ok {
		return accessDenied(c)
	}
	return c.JSON(out)
}

// ListByStore godoc
// @Summary      Listar vendedores de una tienda propia
// @Tags         sellers
// @Security     Bearer
// @Produce      json
// @Param        storeId  path  int  true  "ID de la tienda"
// @Success      200  {array}   dto.SellerResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/sellers/store/{storeId} [get]
func (h *SellerHandler) ListByStore(c *fiber.Ctx) error {
	storeID, err := parseID(c, "storeId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "storeId debe ser numérico"})
	}
	ok, err := h.guard.ValidateStoreAccess(storeID, GetEntityID(c))
	if err != nil {
		return internalError(c, err)
	}
	if !ok {
		return accessDenied(c)
	}
	out, err := h.uc.ListByStore(storeID)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar vendedor
// @Tags         sellers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        sellerId  path  int  true  "ID del vendedor"
// @Param        body      body  dto.UpdateSellerRequest  true  "campos opcionales"
// @Success      200  {object}  dto.SellerResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/sellers/{sellerId} [put]
func (h *SellerHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "sellerId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "sellerId debe ser numérico"})
	}
	ok, err := h.guard.ValidateSellerAccess(id, GetEntityID(c))
	if err != nil {
		return internalError(c, err)
	}
	if !ok {
		return accessDenied(c)
	}
	var in dto.UpdateSellerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		if errors.Is(err, domain.ErrSellerEmailTaken) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SELLER_EMAIL_TAKEN", Message: "el email del vendedor debe ser único"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "vendedor no encontrado"})
		}
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrar vendedor (soft delete)
// @Tags         sellers
// @Security     Bearer
// @Param        sellerId  path  int  true  "ID del vendedor"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/sellers/{sellerId} [delete]
func (h *SellerHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "sellerId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "sellerId debe ser numérico"})
	}
	ok, err := h.guard.ValidateSellerAccess(id, GetEntityID(c))
	if err != nil {
		return internalError(c, err)
	}
	if !ok {
		return accessDenied(c)
	}
	if err := h.uc.Delete(id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "vendedor no encontrado"})
		}
		return internalError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
