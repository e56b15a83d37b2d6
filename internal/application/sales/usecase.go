package sales

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/facturacion-sv/internal/application/dto"
	"github.com/tu-usuario/facturacion-sv/internal/application/ports"
	"github.com/tu-usuario/facturacion-sv/internal/domain"
	"github.com/tu-usuario/facturacion-sv/internal/domain/entity"
	"github.com/tu-usuario/facturacion-sv/internal/domain/repository"
	domsales "github.com/tu-usuario/facturacion-sv/internal/domain/sales"
)

// SaleUseCase registro de ventas: arma las líneas con el motor de cálculo,
// valida el borrador y emite la venta inmutable al historial.
// El stock de los productos no se descuenta al vender; el comportamiento del
// original se conserva como pregunta abierta de producto.
type SaleUseCase struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
	clientRepo  repository.ClientRepository
	notifier    ports.Notifier
	exporter    ports.DocumentExporter
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	clientRepo repository.ClientRepository,
	notifier ports.Notifier,
	exporter ports.DocumentExporter,
) *SaleUseCase {
	return &SaleUseCase{
		saleRepo:    saleRepo,
		productRepo: productRepo,
		clientRepo:  clientRepo,
		notifier:    notifier,
		exporter:    exporter,
	}
}

// Preview deriva los totales de un borrador sin registrar nada.
func (uc *SaleUseCase) Preview(in dto.SaleDraftRequest) (*dto.SaleTotalsResponse, error) {
	taxType, err := normalizeTaxType(in.TaxType)
	if err != nil {
		return nil, err
	}
	items, err := uc.buildItems(in.Items)
	if err != nil {
		return nil, err
	}
	totals := domsales.ComputeTotals(items, taxType)
	return &dto.SaleTotalsResponse{
		Items:    toItemResponses(items),
		Subtotal: totals.Subtotal,
		Tax:      totals.Tax,
		Total:    totals.Total,
	}, nil
}

// Submit valida el borrador y registra la venta. La venta resultante es un
// snapshot inmutable: o se registra completa o se rechaza sin tocar estado.
func (uc *SaleUseCase) Submit(in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if in.ClientID == "" {
		return nil, fmt.Errorf("%w: debe seleccionar un cliente", domain.ErrInvalidInput)
	}
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: debe agregar al menos un producto", domain.ErrInvalidInput)
	}
	taxType, err := normalizeTaxType(in.TaxType)
	if err != nil {
		return nil, err
	}
	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, fmt.Errorf("%w: cliente %s", domain.ErrNotFound, in.ClientID)
	}
	items, err := uc.buildItems(in.Items)
	if err != nil {
		return nil, err
	}
	totals := domsales.ComputeTotals(items, taxType)

	now := time.Now()
	number := in.InvoiceNumber
	if number == "" {
		count, err := uc.saleRepo.Count()
		if err != nil {
			return nil, err
		}
		number = fmt.Sprintf("FAC-%03d", count+1)
	}
	sale := &entity.Sale{
		ID:            uuid.New().String(),
		ClientID:      client.ID,
		ClientName:    client.Name,
		InvoiceNumber: number,
		Date:          now,
		Items:         items,
		Subtotal:      totals.Subtotal,
		Tax:           totals.Tax,
		Total:         totals.Total,
		PaymentMethod: defaultString(in.PaymentMethod, entity.PaymentCash),
		DocumentType:  defaultString(in.DocumentType, entity.DocTypeFactura),
		TaxType:       taxType,
		Status:        entity.SaleStatusCompleted,
		CreatedAt:     now,
	}
	if err := uc.saleRepo.Create(sale); err != nil {
		return nil, err
	}
	uc.notifier.Notify(ports.NotifySuccess, "Venta completada",
		"La venta ha sido registrada exitosamente")
	return toSaleResponse(sale), nil
}

// List devuelve el historial de facturación completo.
func (uc *SaleUseCase) List() ([]dto.SaleResponse, error) {
	list, err := uc.saleRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, *toSaleResponse(s))
	}
	return out, nil
}

// GetByID obtiene una venta del historial.
func (uc *SaleUseCase) GetByID(id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	return toSaleResponse(sale), nil
}

// ExportPDF solicita al colaborador de exportación la representación
// gráfica de la venta y devuelve los bytes del PDF.
func (uc *SaleUseCase) ExportPDF(id string) ([]byte, string, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, "", err
	}
	if sale == nil {
		return nil, "", domain.ErrNotFound
	}
	client, err := uc.clientRepo.GetByID(sale.ClientID)
	if err != nil {
		return nil, "", err
	}
	artifact, err := uc.exporter.ExportSale(sale, client)
	if err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("%s.pdf", sale.InvoiceNumber)
	return artifact, filename, nil
}

// buildItems arma las líneas del borrador con el motor de cálculo: las
// líneas duplicadas del mismo producto se funden acumulando cantidad, y el
// total de cada línea queda siempre en quantity * unitPrice.
func (uc *SaleUseCase) buildItems(reqs []dto.SaleItemRequest) ([]entity.SaleItem, error) {
	var items []entity.SaleItem
	for _, req := range reqs {
		if req.ProductID == "" || req.Quantity <= 0 {
			return nil, fmt.Errorf("%w: línea con producto o cantidad inválidos", domain.ErrInvalidInput)
		}
		product, err := uc.productRepo.GetByID(req.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, req.ProductID)
		}
		// Precio capturado al agregar la línea en el front; cero significa
		// "usar el precio vigente del catálogo".
		captured := *product
		if req.UnitPrice.GreaterThan(decimal.Zero) {
			captured.Price = req.UnitPrice
		} else if req.UnitPrice.LessThan(decimal.Zero) {
			return nil, fmt.Errorf("%w: precio unitario negativo", domain.ErrInvalidInput)
		}

		items = domsales.AddLine(items, &captured)
		line := findByProduct(items, product.ID)
		if target := line.Quantity - 1 + req.Quantity; target != line.Quantity {
			items = domsales.SetQuantity(items, line.ID, target)
		}
	}
	return items, nil
}

func findByProduct(items []entity.SaleItem, productID string) entity.SaleItem {
	for _, item := range items {
		if item.ProductID == productID {
			return item
		}
	}
	return entity.SaleItem{}
}

func normalizeTaxType(taxType string) (string, error) {
	switch taxType {
	case "":
		return entity.TaxTypeIVA13, nil
	case entity.TaxTypeIVA13, entity.TaxTypeSinIVA:
		return taxType, nil
	default:
		return "", fmt.Errorf("%w: tipo de impuesto desconocido %q", domain.ErrInvalidInput, taxType)
	}
}

func defaultString(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func toItemResponses(items []entity.SaleItem) []dto.SaleItemResponse {
	out := make([]dto.SaleItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, dto.SaleItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductCode: item.ProductCode,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Total:       item.Total,
		})
	}
	return out
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	return &dto.SaleResponse{
		ID:            s.ID,
		ClientID:      s.ClientID,
		ClientName:    s.ClientName,
		InvoiceNumber: s.InvoiceNumber,
		Date:          s.Date.Format("2006-01-02"),
		Items:         toItemResponses(s.Items),
		Subtotal:      s.Subtotal,
		Tax:           s.Tax,
		Total:         s.Total,
		PaymentMethod: s.PaymentMethod,
		DocumentType:  s.DocumentType,
		TaxType:       s.TaxType,
		Status:        s.Status,
	}
}
