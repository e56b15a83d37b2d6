package dto

import "github.com/shopspring/decimal"

// SaleItemRequest línea del borrador de venta. El precio unitario viene
// capturado del momento en que se agregó la línea; si va en cero se toma el
// precio actual del catálogo.
type SaleItemRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price,omitempty"`
}

// SaleDraftRequest body para POST /api/sales/preview: borrador sin registrar.
type SaleDraftRequest struct {
	Items   []SaleItemRequest `json:"items"`
	TaxType string            `json:"tax_type"`
}

// CreateSaleRequest body para POST /api/sales.
type CreateSaleRequest struct {
	ClientID      string            `json:"client_id"`
	InvoiceNumber string            `json:"invoice_number,omitempty"` // si va vacío se genera
	Items         []SaleItemRequest `json:"items"`
	TaxType       string            `json:"tax_type"`
	DocumentType  string            `json:"document_type"`
	PaymentMethod string            `json:"payment_method"`
}

// SaleTotalsResponse totales derivados del borrador.
type SaleTotalsResponse struct {
	Items    []SaleItemResponse `json:"items"`
	Subtotal decimal.Decimal    `json:"subtotal"`
	Tax      decimal.Decimal    `json:"tax"`
	Total    decimal.Decimal    `json:"total"`
}

// SaleItemResponse línea de venta en respuestas.
type SaleItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductCode string          `json:"product_code"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

// SaleResponse venta registrada (inmutable).
type SaleResponse struct {
	ID            string             `json:"id"`
	ClientID      string             `json:"client_id"`
	ClientName    string             `json:"client_name"`
	InvoiceNumber string             `json:"invoice_number"`
	Date          string             `json:"date"`
	Items         []SaleItemResponse `json:"items"`
	Subtotal      decimal.Decimal    `json:"subtotal"`
	Tax           decimal.Decimal    `json:"tax"`
	Total         decimal.Decimal    `json:"total"`
	PaymentMethod string             `json:"payment_method"`
	DocumentType  string             `json:"document_type"`
	TaxType       string             `json:"tax_type"`
	Status        string             `json:"status"`
}
