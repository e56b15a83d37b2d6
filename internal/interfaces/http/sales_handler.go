package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/facturacion-sv/internal/application/dto"
	"github.com/tu-usuario/facturacion-sv/internal/application/sales"
)

// SalesHandler maneja las peticiones HTTP de ventas e historial.
type SalesHandler struct {
	uc *sales.SaleUseCase
}

// NewSalesHandler construye el handler.
func NewSalesHandler(uc *sales.SaleUseCase) *SalesHandler {
	return &SalesHandler{uc: uc}
}

// Preview deriva los totales de un borrador sin registrar la venta.
// POST /api/sales/preview
func (h *SalesHandler) Preview(c *fiber.Ctx) error {
	var in dto.SaleDraftRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Preview(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Submit registra la venta.
// POST /api/sales
func (h *SalesHandler) Submit(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Submit(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List historial de facturación.
// GET /api/sales
func (h *SalesHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID obtiene una venta del historial.
// GET /api/sales/:id
func (h *SalesHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ExportPDF descarga el comprobante en PDF.
// GET /api/sales/:id/pdf
func (h *SalesHandler) ExportPDF(c *fiber.Ctx) error {
	artifact, filename, err := h.uc.ExportPDF(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(artifact)
}
