package memory

import (
	"sync"

	"github.com/tu-usuario/facturacion-sv/internal/domain"
	"github.com/tu-usuario/facturacion-sv/internal/domain/entity"
)

// DTERepository repositorio de DTE en memoria. Los documentos entran por
// siembra; el estado solo cambia vía UpdateStatus.
type DTERepository struct {
	mu    sync.RWMutex
	items []*entity.DTEDocument
}

// NewDTERepository construye el repositorio con los documentos sembrados.
func NewDTERepository(seed []*entity.DTEDocument) *DTERepository {
	items := make([]*entity.DTEDocument, 0, len(seed))
	for _, doc := range seed {
		cp := *doc
		items = append(items, &cp)
	}
	return &DTERepository{items: items}
}

// GetByID busca por ID. Retorna nil sin error si no existe.
func (r *DTERepository) GetByID(id string) (*entity.DTEDocument, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, doc := range r.items {
		if doc.ID == id {
			cp := *doc
			return &cp, nil
		}
	}
	return nil, nil
}

// List devuelve los documentos en orden de siembra.
func (r *DTERepository) List() ([]*entity.DTEDocument, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.DTEDocument, 0, len(r.items))
	for _, doc := range r.items {
		cp := *doc
		out = append(out, &cp)
	}
	return out, nil
}

// UpdateStatus aplica la transición con compare-and-swap: si el estado ya no
// es expected, otro evento ganó la carrera y se retorna ErrConflict sin
// tocar el documento.
func (r *DTERepository) UpdateStatus(id, expected, next string) (*entity.DTEDocument, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, doc := range r.items {
		if doc.ID != id {
			continue
		}
		if doc.Status != expected {
			return nil, domain.ErrConflict
		}
		doc.Status = next
		cp := *doc
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}
