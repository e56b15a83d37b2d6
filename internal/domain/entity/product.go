package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// Code es único (comparación sin distinguir mayúsculas). Stock es una vista
// de lectura: las ventas no lo descuentan en este alcance.
type Product struct {
	ID          string
	Code        string
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta, no negativo
	Stock       int             // unidades disponibles, no negativo
	Category    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
