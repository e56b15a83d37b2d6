package memory

import (
	"sync"

	"github.com/tu-usuario/facturacion-sv/internal/domain/entity"
)

// SaleRepository historial de ventas en memoria, de solo inserción.
type SaleRepository struct {
	mu    sync.RWMutex
	items []*entity.Sale
}

// NewSaleRepository construye el repositorio vacío.
func NewSaleRepository() *SaleRepository {
	return &SaleRepository{}
}

// Create agrega la venta al historial.
func (r *SaleRepository) Create(sale *entity.Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, copySale(sale))
	return nil
}

// GetByID busca por ID. Retorna nil sin error si no existe.
func (r *SaleRepository) GetByID(id string) (*entity.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.items {
		if s.ID == id {
			return copySale(s), nil
		}
	}
	return nil, nil
}

// List devuelve el historial en orden de registro.
func (r *SaleRepository) List() ([]*entity.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Sale, 0, len(r.items))
	for _, s := range r.items {
		out = append(out, copySale(s))
	}
	return out, nil
}

// Count cantidad de ventas registradas (para numerar facturas).
func (r *SaleRepository) Count() (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items), nil
}

// copySale copia la venta incluyendo las líneas, para que ninguna referencia
// del caller pueda mutar el historial (la venta registrada es inmutable).
func copySale(s *entity.Sale) *entity.Sale {
	cp := *s
	cp.Items = make([]entity.SaleItem, len(s.Items))
	copy(cp.Items, s.Items)
	return &cp
}
