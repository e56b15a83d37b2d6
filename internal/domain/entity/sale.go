package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de impuesto aplicables a la venta.
const (
	TaxTypeIVA13  = "IVA 13%" // IVA El Salvador
	TaxTypeSinIVA = "Sin IVA"
)

// Tipos de comprobante.
const (
	DocTypeFactura       = "factura"
	DocTypeCreditoFiscal = "credito_fiscal"
	DocTypeNotaRemision  = "nota_remision"
)

// Métodos de pago.
const (
	PaymentCash     = "cash"
	PaymentCard     = "card"
	PaymentTransfer = "transfer"
)

// Estados de una venta.
const (
	SaleStatusCompleted = "completed"
)

// SaleItem representa una línea de venta. Total es siempre
// Quantity * UnitPrice; se recalcula en cada cambio de cantidad, nunca se
// almacena de forma independiente.
type SaleItem struct {
	ID          string
	ProductID   string
	ProductCode string
	ProductName string
	Quantity    int             // entero positivo
	UnitPrice   decimal.Decimal // capturado al agregar la línea
	Total       decimal.Decimal
}

// Sale representa una venta emitida. Una vez registrada es inmutable y solo
// se agrega al historial (no hay actualización ni borrado en este alcance).
type Sale struct {
	ID            string
	ClientID      string
	ClientName    string
	InvoiceNumber string
	Date          time.Time
	Items         []SaleItem
	Subtotal      decimal.Decimal
	Tax           decimal.Decimal
	Total         decimal.Decimal
	PaymentMethod string
	DocumentType  string
	TaxType       string
	Status        string
	CreatedAt     time.Time
}
