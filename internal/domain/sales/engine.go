// Package sales contiene el motor de cálculo de la venta: operaciones puras
// sobre la lista de líneas y derivación de totales. Todas las operaciones
// devuelven una lista nueva (semántica de valor); los montos usan decimal
// para evitar deriva de redondeo binario entre ediciones repetidas.
package sales

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/facturacion-sv/internal/domain/entity"
)

// ivaRate tasa de IVA El Salvador (13%).
var ivaRate = decimal.New(13, -2)

// Totals totales derivados de la lista de líneas. Siempre se recalculan
// desde las líneas; nunca se cachean de forma independiente.
type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// AddLine agrega un producto a la venta. Si ya existe una línea para el
// producto incrementa su cantidad en 1 y recalcula el total de la línea;
// nunca crea una línea duplicada.
func AddLine(items []entity.SaleItem, product *entity.Product) []entity.SaleItem {
	out := clone(items)
	for i := range out {
		if out[i].ProductID == product.ID {
			out[i].Quantity++
			out[i].Total = lineTotal(out[i].Quantity, out[i].UnitPrice)
			return out
		}
	}
	return append(out, entity.SaleItem{
		ID:          uuid.New().String(),
		ProductID:   product.ID,
		ProductCode: product.Code,
		ProductName: product.Name,
		Quantity:    1,
		UnitPrice:   product.Price, // capturado al agregar; no sigue al catálogo
		Total:       product.Price,
	})
}

// SetQuantity fija la cantidad de una línea y recalcula su total.
// Cantidades <= 0 se rechazan en silencio: la lista vuelve sin cambios.
func SetQuantity(items []entity.SaleItem, lineID string, quantity int) []entity.SaleItem {
	if quantity <= 0 {
		return items
	}
	out := clone(items)
	for i := range out {
		if out[i].ID == lineID {
			out[i].Quantity = quantity
			out[i].Total = lineTotal(quantity, out[i].UnitPrice)
			break
		}
	}
	return out
}

// RemoveLine elimina una línea. El subtotal se deriva fresco de la lista
// completa en ComputeTotals, así que no hay nada más que recalcular.
func RemoveLine(items []entity.SaleItem, lineID string) []entity.SaleItem {
	out := make([]entity.SaleItem, 0, len(items))
	for _, item := range items {
		if item.ID != lineID {
			out = append(out, item)
		}
	}
	return out
}

// ComputeTotals deriva subtotal, impuesto y total.
// tax = subtotal * 0.13 redondeado a 2 decimales si taxType es IVA 13%; 0 en
// otro caso. total = subtotal + tax.
func ComputeTotals(items []entity.SaleItem, taxType string) Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Total)
	}
	tax := decimal.Zero
	if taxType == entity.TaxTypeIVA13 {
		tax = subtotal.Mul(ivaRate).Round(2)
	}
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}

func lineTotal(quantity int, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

func clone(items []entity.SaleItem) []entity.SaleItem {
	out := make([]entity.SaleItem, len(items))
	copy(out, items)
	return out
}
