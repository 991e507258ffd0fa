package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/pos-funeraria/internal/application/dto"
	"github.com/tu-usuario/pos-funeraria/internal/application/sales"
	"github.com/tu-usuario/pos-funeraria/internal/domain/repository"
)

// SaleHandler maneja las peticiones HTTP de ventas.
type SaleHandler struct {
	uc  *sales.UseCase
	loc *time.Location
}

// NewSaleHandler construye el handler. loc define el día calendario de los
// filtros por fecha.
func NewSaleHandler(uc *sales.UseCase, loc *time.Location) *SaleHandler {
	if loc == nil {
		loc = time.Local
	}
	return &SaleHandler{uc: uc, loc: loc}
}

// List GET /api/sales?fecha=2025-01-15&customerId=...
func (h *SaleHandler) List(c *fiber.Ctx) error {
	filter := repository.SaleFilter{CustomerID: c.Query("customerId")}
	if fecha := c.Query("fecha"); fecha != "" {
		day, err := time.ParseInLocation("2006-01-02", fecha, h.loc)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha inválida, se espera YYYY-MM-DD"})
		}
		filter.From = day
		filter.To = day.AddDate(0, 0, 1)
	}
	list, err := h.uc.List(filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Create POST /api/sales
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update PATCH /api/sales/:id — reemplaza todas las partidas.
func (h *SaleHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete DELETE /api/sales/:id
func (h *SaleHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}
