package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/facturacion-sv/internal/application/dto"
	"github.com/tu-usuario/facturacion-sv/internal/infrastructure/notify"
)

// NotificationHandler expone el feed de notificaciones para la UI.
type NotificationHandler struct {
	feed *notify.Feed
}

// NewNotificationHandler construye el handler.
func NewNotificationHandler(feed *notify.Feed) *NotificationHandler {
	return &NotificationHandler{feed: feed}
}

// List devuelve las notificaciones recientes (la más nueva primero).
// GET /api/notifications
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	recent := h.feed.Recent()
	out := make([]dto.NotificationResponse, 0, len(recent))
	for _, n := range recent {
		out = append(out, dto.NotificationResponse{
			ID:        n.ID,
			Kind:      n.Kind,
			Title:     n.Title,
			Message:   n.Message,
			CreatedAt: n.CreatedAt.Format(time.RFC3339),
		})
	}
	return c.JSON(out)
}
