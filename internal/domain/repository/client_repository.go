package repository

import "github.com/tu-usuario/facturacion-sv/internal/domain/entity"

// ClientRepository define el puerto de persistencia para Client.
// No hay borrado: los clientes nunca se eliminan en este alcance.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	List() ([]*entity.Client, error)
	Update(client *entity.Client) error
}
