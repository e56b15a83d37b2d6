package ports

import "github.com/tu-usuario/facturacion-sv/internal/domain/entity"

// DocumentExporter puerto del colaborador de exportación de documentos.
// El core solo solicita el artefacto; el formato de render (PDF en este
// alcance) es asunto de la implementación.
type DocumentExporter interface {
	ExportSale(sale *entity.Sale, client *entity.Client) ([]byte, error)
	ExportDTE(doc *entity.DTEDocument) ([]byte, error)
}
