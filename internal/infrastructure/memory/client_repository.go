package memory

import (
	"sync"

	"github.com/tu-usuario/facturacion-sv/internal/domain/entity"
)

// ClientRepository repositorio de clientes en memoria. Sin borrado.
type ClientRepository struct {
	mu    sync.RWMutex
	items []*entity.Client
}

// NewClientRepository construye el repositorio vacío.
func NewClientRepository() *ClientRepository {
	return &ClientRepository{}
}

// Create agrega un cliente.
func (r *ClientRepository) Create(client *entity.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *client
	r.items = append(r.items, &cp)
	return nil
}

// GetByID busca por ID. Retorna nil sin error si no existe.
func (r *ClientRepository) GetByID(id string) (*entity.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.items {
		if c.ID == id {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

// List devuelve los clientes en orden de inserción.
func (r *ClientRepository) List() ([]*entity.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Client, 0, len(r.items))
	for _, c := range r.items {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

// Update reemplaza el cliente con el mismo ID.
func (r *ClientRepository) Update(client *entity.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, c := range r.items {
		if c.ID == client.ID {
			cp := *client
			r.items[i] = &cp
			return nil
		}
	}
	return nil
}
