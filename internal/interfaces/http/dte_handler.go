package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/facturacion-sv/internal/application/dte"
	"github.com/tu-usuario/facturacion-sv/internal/application/dto"
)

// DTEHandler maneja el ciclo de vida de los Documentos Tributarios
// Electrónicos: listado, resumen, eventos y descarga.
type DTEHandler struct {
	uc *dte.DTEUseCase
}

// NewDTEHandler construye el handler.
func NewDTEHandler(uc *dte.DTEUseCase) *DTEHandler {
	return &DTEHandler{uc: uc}
}

// List lista los documentos con sus acciones disponibles.
// GET /api/dte
func (h *DTEHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Summary conteo de documentos por estado.
// GET /api/dte/summary
func (h *DTEHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID obtiene un documento.
// GET /api/dte/:id
func (h *DTEHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ApplyEvent aplica un evento mutante (invalidate, contingency, resend).
// Las precondiciones se revalidan en el caso de uso aunque la UI ya haya
// consultado las acciones disponibles.
// POST /api/dte/:id/events
func (h *DTEHandler) ApplyEvent(c *fiber.Ctx) error {
	var in dto.DTEEventRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ApplyEvent(c.Params("id"), in.Event)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Download descarga el PDF del documento. Nunca muta el estado.
// GET /api/dte/:id/download
func (h *DTEHandler) Download(c *fiber.Ctx) error {
	artifact, filename, err := h.uc.Download(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(artifact)
}
