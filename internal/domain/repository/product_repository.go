package repository

import "github.com/tu-usuario/facturacion-sv/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// El core no asume semántica de arreglos en memoria; cualquier colaborador
// de persistencia puede implementarlo.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetByCode busca por código sin distinguir mayúsculas/minúsculas.
	GetByCode(code string) (*entity.Product, error)
	List() ([]*entity.Product, error)
	Update(product *entity.Product) error
}
