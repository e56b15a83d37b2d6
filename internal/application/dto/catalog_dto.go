package dto

import "github.com/shopspring/decimal"

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Category    string          `json:"category,omitempty"`
}

// UpdateProductRequest body para PUT /api/products/:id (campos opcionales).
type UpdateProductRequest struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Stock       *int             `json:"stock,omitempty"`
	Category    *string          `json:"category,omitempty"`
}

// ProductResponse producto en respuestas.
type ProductResponse struct {
	ID          string          `json:"id"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Category    string          `json:"category,omitempty"`
}

// InventoryItemResponse fila de la vista de inventario (solo lectura).
// LowStock marca productos con menos de 10 unidades, como en el tablero.
type InventoryItemResponse struct {
	ProductID string `json:"product_id"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	Category  string `json:"category,omitempty"`
	Stock     int    `json:"stock"`
	LowStock  bool   `json:"low_stock"`
}

// CreateClientRequest body para POST /api/clients.
// DUI, NIT y NRC son texto libre; el formato no se valida en este alcance.
type CreateClientRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	DUI     string `json:"dui,omitempty"`
	NIT     string `json:"nit,omitempty"`
	NRC     string `json:"nrc,omitempty"`
	Address string `json:"address,omitempty"`
}

// UpdateClientRequest body para PUT /api/clients/:id (campos opcionales).
type UpdateClientRequest struct {
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	DUI     *string `json:"dui,omitempty"`
	NIT     *string `json:"nit,omitempty"`
	NRC     *string `json:"nrc,omitempty"`
	Address *string `json:"address,omitempty"`
}

// ClientResponse cliente en respuestas.
type ClientResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	DUI     string `json:"dui,omitempty"`
	NIT     string `json:"nit,omitempty"`
	NRC     string `json:"nrc,omitempty"`
	Address string `json:"address,omitempty"`
}
