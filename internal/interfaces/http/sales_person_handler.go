package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/application/usecase"
)

// SalesPersonHandler catálogo de vendedores.
type SalesPersonHandler struct {
	uc *usecase.SalesPersonUseCase
}

func NewSalesPersonHandler(uc *usecase.SalesPersonUseCase) *SalesPersonHandler {
	return &SalesPersonHandler{uc: uc}
}

// List godoc
// @Summary      Listar vendedores
// @Tags         salespersons
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SalesPersonResponse
// @Router       /api/salespersons [get]
func (h *SalesPersonHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener vendedor
// @Tags         salespersons
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del vendedor"
// @Success      200  {object}  dto.SalesPersonResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/salespersons/{id} [get]
func (h *SalesPersonHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear vendedor (solo admin)
// @Tags         salespersons
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SalesPersonRequest  true  "Nombre"
// @Success      201   {object}  dto.SalesPersonResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/salespersons [post]
func (h *SalesPersonHandler) Create(c *fiber.Ctx) error {
	var in dto.SalesPersonRequest
	if err := bindBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Rename godoc
// @Summary      Renombrar vendedor (solo admin)
// @Tags         salespersons
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID del vendedor"
// @Param        body  body  dto.SalesPersonRequest  true  "Nuevo nombre"
// @Success      200   {object}  dto.SalesPersonResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/salespersons/{id} [put]
func (h *SalesPersonHandler) Rename(c *fiber.Ctx) error {
	var in dto.SalesPersonRequest
	if err := bindBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Rename(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar vendedor sin clientes (solo admin)
// @Tags         salespersons
// @Security     Bearer
// @Param        id   path  string  true  "ID del vendedor"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/salespersons/{id} [delete]
func (h *SalesPersonHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
