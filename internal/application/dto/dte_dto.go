package dto

import "github.com/shopspring/decimal"

// DTEEventRequest body para POST /api/dte/:id/events.
type DTEEventRequest struct {
	Event string `json:"event"` // invalidate | contingency | resend
}

// DTEDocumentResponse documento tributario en respuestas. Actions es la
// lista consultiva de acciones según el estado; la transición se revalida al
// aplicarla.
type DTEDocumentResponse struct {
	ID             string          `json:"id"`
	DocumentNumber string          `json:"document_number"`
	Type           string          `json:"type"`
	ClientName     string          `json:"client_name"`
	Date           string          `json:"date"`
	Total          decimal.Decimal `json:"total"`
	Status         string          `json:"status"`
	GenerationCode string          `json:"generation_code"`
	ReceptionSeal  string          `json:"reception_seal"`
	Actions        []string        `json:"actions"`
}

// DTESummaryResponse conteo de documentos por estado (tablero).
type DTESummaryResponse struct {
	Enviado    int `json:"enviado"`
	Procesando int `json:"procesando"`
	Pendiente  int `json:"pendiente"`
	Rechazado  int `json:"rechazado"`
}

// NotificationResponse notificación emitida por los casos de uso.
type NotificationResponse struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"` // success | error | warning | info
	Title     string `json:"title"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}
