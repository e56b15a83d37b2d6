// Package notify implementa el colaborador de notificaciones: cada aviso se
// registra estructurado vía zerolog y se conserva en un feed acotado en
// memoria que la UI puede consultar (sustituto del stack de toasts del
// front original).
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/facturacion-sv/pkg/logger"
)

// Tamaño máximo del feed; al superarlo se descartan los avisos más viejos.
const defaultCapacity = 50

// Notification aviso emitido por un caso de uso.
type Notification struct {
	ID        string
	Kind      string // success | error | warning | info
	Title     string
	Message   string
	CreatedAt time.Time
}

// Feed implementa ports.Notifier.
type Feed struct {
	log *logger.Logger

	mu    sync.Mutex
	items []Notification
	max   int
}

// NewFeed construye el feed.
func NewFeed(log *logger.Logger) *Feed {
	return &Feed{log: log, max: defaultCapacity}
}

// Notify registra el aviso. Fire-and-forget: nunca retorna error al caller.
func (f *Feed) Notify(kind, title, message string) {
	n := Notification{
		ID:        uuid.New().String(),
		Kind:      kind,
		Title:     title,
		Message:   message,
		CreatedAt: time.Now(),
	}

	f.log.Info().
		Str("kind", kind).
		Str("title", title).
		Str("message", message).
		Msg("notificación")

	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = append(f.items, n)
	if len(f.items) > f.max {
		f.items = f.items[len(f.items)-f.max:]
	}
}

// Recent devuelve los avisos del más reciente al más viejo.
func (f *Feed) Recent() []Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Notification, 0, len(f.items))
	for i := len(f.items) - 1; i >= 0; i-- {
		out = append(out, f.items[i])
	}
	return out
}
