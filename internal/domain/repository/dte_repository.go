package repository

import "github.com/tu-usuario/facturacion-sv/internal/domain/entity"

// DTERepository define el puerto de persistencia para DTEDocument.
// No hay Create: los documentos entran al sistema pre-sembrados.
type DTERepository interface {
	GetByID(id string) (*entity.DTEDocument, error)
	List() ([]*entity.DTEDocument, error)
	// UpdateStatus aplica la transición solo si el estado actual coincide con
	// expected (compare-and-swap). Retorna ErrConflict si otro evento ganó la
	// carrera, de modo que dos transiciones concurrentes no puedan tener
	// éxito ambas desde una lectura obsoleta.
	UpdateStatus(id, expected, next string) (*entity.DTEDocument, error)
}
