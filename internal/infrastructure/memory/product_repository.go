// Package memory implementa los puertos de persistencia sobre memoria de
// proceso (alcance demo: no hay capa de persistencia). Cada repositorio
// protege su estado con un mutex y entrega copias, nunca referencias a su
// almacenamiento interno.
package memory

import (
	"strings"
	"sync"

	"github.com/tu-usuario/facturacion-sv/internal/domain/entity"
)

// ProductRepository repositorio de productos en memoria.
type ProductRepository struct {
	mu    sync.RWMutex
	items []*entity.Product
}

// NewProductRepository construye el repositorio vacío.
func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

// Create agrega un producto.
func (r *ProductRepository) Create(product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *product
	r.items = append(r.items, &cp)
	return nil
}

// GetByID busca por ID. Retorna nil sin error si no existe.
func (r *ProductRepository) GetByID(id string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.items {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

// GetByCode busca por código sin distinguir mayúsculas/minúsculas.
func (r *ProductRepository) GetByCode(code string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.items {
		if strings.EqualFold(p.Code, code) {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

// List devuelve el catálogo en orden de inserción.
func (r *ProductRepository) List() ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Product, 0, len(r.items))
	for _, p := range r.items {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

// Update reemplaza el producto con el mismo ID.
func (r *ProductRepository) Update(product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.items {
		if p.ID == product.ID {
			cp := *product
			r.items[i] = &cp
			return nil
		}
	}
	return nil
}
