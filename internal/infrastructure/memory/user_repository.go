package memory

import (
	"strings"
	"sync"

	"github.com/tu-usuario/facturacion-sv/internal/domain/entity"
)

// UserRepository repositorio de usuarios en memoria (login demo).
type UserRepository struct {
	mu    sync.RWMutex
	items []*entity.User
}

// NewUserRepository construye el repositorio vacío.
func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// Create agrega un usuario.
func (r *UserRepository) Create(user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *user
	r.items = append(r.items, &cp)
	return nil
}

// GetByID busca por ID. Retorna nil sin error si no existe.
func (r *UserRepository) GetByID(id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.items {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

// FindByEmail busca por email sin distinguir mayúsculas.
func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.items {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}
