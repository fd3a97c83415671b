package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/voxly/voxly-api/internal/application/access"
	"github.com/voxly/voxly-api/internal/application/dto"
	"github.com/voxly/voxly-api/internal/application/usecase"
	"github.com/voxly/voxly-api/internal/domain"
)

// SurveyHandler maneja encuestas de vendedores. Las operaciones de gestión
// están protegidas por el guard vía el vendedor dueño de la encuesta; el
// registro de respuestas es público (lo consumen los clientes finales).
type SurveyHandler struct {
	uc    *usecase.SurveyUseCase
	guard *access.Guard
}

// NewSurveyHandler construye el handler.
func NewSurveyHandler(uc *usecase.SurveyUseCase, guard *access.Guard) *SurveyHandler {
	return &SurveyHandler{uc: uc, guard: guard}
}

// checkSurveyAccess resuelve encuesta → vendedor y valida la cadena de
// pertenencia contra la entidad del caller. Devuelve la encuesta cuando el
// acceso es válido, o responde el error y devuelve (nil, nil).
func (h *SurveyHandler) checkSurveyAccess(c *fiber.Ctx, surveyID int64) (*dto.SurveyResponse, error) {
	survey, err := h.uc.GetByID(surveyID)
	if err != nil {
		return nil, internalError(c, err)
	}
	if survey == nil {
		return nil, c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "encuesta no encontrada"})
	}
	ok, err := h.guard.ValidateSellerAccess(survey.SellerID, GetEntityID(c))
	if err != nil {
		return nil, internalError(c, err)
	}
	if !ok {
		return nil, accessDenied(c)
	}
	return survey, nil
}

// Create godoc
// @Summary      Crear encuesta sobre un vendedor propio
// @Tags         surveys
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSurveyRequest  true  "name, type (nps|csat), seller_id"
// @Success      201   {object}  dto.SurveyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/surveys [post]
func (h *SurveyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSurveyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.SellerID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name, type y seller_id son requeridos"})
	}
	ok, err := h.guard.ValidateSellerAccess(in.SellerID, GetEntityID(c))
	if err != nil {
		return internalError(c, err)
	}
	if !ok {
		return accessDenied(c)
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "type debe ser nps o csat"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "vendedor no encontrado"})
		}
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener encuesta por ID
// @Tags         surveys
// @Security     Bearer
// @Produce      json
// @Param        surveyId  path  int  true  "ID de la encuesta"
// @Success      200  {object}  dto.SurveyResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/surveys/{surveyId} [get]
func (h *SurveyHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "surveyId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "surveyId debe ser numérico"})
	}
	survey, err := h.checkSurveyAccess(c, id)
	if survey == nil {
		return err
	}
	return c.JSON(survey)
}

// ListBySeller godoc
// @Summary      Listar encuestas de un vendedor propio
// @Tags         surveys
// @Security     Bearer
// @Produce      json
// @Param        sellerId  path  int  true  "ID del vendedor"
// @Success      200  {array}   dto.SurveyResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/surveys/seller/{sellerId} [get]
func (h *SurveyHandler) ListBySeller(c *fiber.Ctx) error {
	sellerID, err := parseID(c, "sellerId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "sellerId debe ser numérico"})
	}
	ok, err := h.guard.ValidateSellerAccess(sellerID, GetEntityID(c))
	if err != nil {
		return internalError(c, err)
	}
	if !ok {
		return accessDenied(c)
	}
	out, err := h.uc.ListBySeller(sellerID)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Stats godoc
// @Summary      Estadísticas de una encuesta (conteo y promedio de score)
// @Tags         surveys
// @Security     Bearer
// @Produce      json
// @Param        surveyId  path  int  true  "ID de la encuesta"
// @Success      200  {object}  dto.SurveyStatsResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/surveys/{surveyId}/stats [get]
func (h *SurveyHandler) Stats(c *fiber.Ctx) error {
	id, err := parseID(c, "surveyId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "surveyId debe ser numérico"})
	}
	survey, errResp := h.checkSurveyAccess(c, id)
	if survey == nil {
		return errResp
	}
	out, err := h.uc.Stats(id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "encuesta no encontrada"})
		}
		return internalError(c, err)
	}
	return c.JSON(out)
}

// AddResponse godoc
// @Summary      Registrar respuesta de un cliente (público)
// @Tags         surveys
// @Accept       json
// @Produce      json
// @Param        surveyId  path  int  true  "ID de la encuesta"
// @Param        body      body  dto.AddSurveyResponseRequest  true  "score 0..10, comment opcional"
// @Success      201
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/surveys/{surveyId}/responses [post]
func (h *SurveyHandler) AddResponse(c *fiber.Ctx) error {
	id, err := parseID(c, "surveyId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "surveyId debe ser numérico"})
	}
	var in dto.AddSurveyResponseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.AddResponse(id, in); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "score debe estar entre 0 y 10"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "encuesta no encontrada"})
		}
		return internalError(c, err)
	}
	return c.SendStatus(fiber.StatusCreated)
}
