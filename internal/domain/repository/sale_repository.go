package repository

import "github.com/tu-usuario/facturacion-sv/internal/domain/entity"

// SaleRepository define el puerto del historial de ventas.
// El historial es de solo inserción: no hay Update ni Delete.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	List() ([]*entity.Sale, error)
	Count() (int, error)
}
