package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/pos-funeraria/internal/application/reports"
)

// ReportHandler maneja los reportes de caja y ganancias.
type ReportHandler struct {
	uc  *reports.UseCase
	loc *time.Location
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.UseCase, loc *time.Location) *ReportHandler {
	if loc == nil {
		loc = time.Local
	}
	return &ReportHandler{uc: uc, loc: loc}
}

// Corte GET /api/reports/corte?fecha=2025-01-15 — corte de caja del día.
// Sin fecha, el corte es del día en curso en la zona del negocio.
func (h *ReportHandler) Corte(c *fiber.Ctx) error {
	fecha := c.Query("fecha")
	if fecha == "" {
		fecha = time.Now().In(h.loc).Format("2006-01-02")
	}
	out, err := h.uc.CorteDeCaja(fecha)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Ganancias GET /api/reports/ganancias — ingresos contra costo de producción.
func (h *ReportHandler) Ganancias(c *fiber.Ctx) error {
	out, err := h.uc.ReporteGanancias()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
