package repository

import "github.com/tu-usuario/facturacion-sv/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (login demo).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
}
