// Package pdf implementa el colaborador de exportación de documentos usando
// Maroto v2: representación gráfica de la venta (comprobante) y del DTE.
//
// Layout de la página A4 del comprobante:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Emisor + NIT/NRC      │  N° Factura + Fecha        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + DUI/NIT + dirección                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Código | Descripción | P.Unit | Total        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / IVA / TOTAL                            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	mentity "github.com/johnfercher/maroto/v2/pkg/core/entity"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tu-usuario/facturacion-sv/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 30, Green: 58, Blue: 95}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// BusinessInfo datos del emisor para el encabezado.
type BusinessInfo struct {
	Name    string
	NIT     string
	NRC     string
	Address string
}

// MarotoExporter implementa ports.DocumentExporter usando Maroto v2.
type MarotoExporter struct {
	business BusinessInfo
}

// NewMarotoExporter construye el exportador.
func NewMarotoExporter(business BusinessInfo) *MarotoExporter {
	return &MarotoExporter{business: business}
}

// ExportSale genera el PDF del comprobante de venta y devuelve sus bytes.
func (e *MarotoExporter) ExportSale(sale *entity.Sale, client *entity.Client) ([]byte, error) {
	m := maroto.New(e.pageConfig("Comprobante de Venta"))

	m.AddRows(e.headerRow(sale.InvoiceNumber, sale.Date.Format("02/01/2006")))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clientRow(client, sale.ClientName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, item := range sale.Items {
		m.AddRows(itemRow(item))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(
		totalRow("Subtotal", sale.Subtotal.StringFixed(2), false),
		totalRow(taxLabel(sale.TaxType), sale.Tax.StringFixed(2), false),
		totalRow("TOTAL", sale.Total.StringFixed(2), true),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar comprobante: %w", err)
	}
	return doc.GetBytes(), nil
}

// ExportDTE genera el PDF del documento tributario electrónico.
func (e *MarotoExporter) ExportDTE(dte *entity.DTEDocument) ([]byte, error) {
	m := maroto.New(e.pageConfig("Documento Tributario Electrónico"))

	m.AddRows(e.headerRow(dte.DocumentNumber, dte.Date.Format("02/01/2006")))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(
		metaRow("Tipo de documento", docTypeLabel(dte.Type)),
		metaRow("Cliente", dte.ClientName),
		metaRow("Estado", dte.Status),
		metaRow("Total", "$"+dte.Total.StringFixed(2)),
	)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(
		metaRow("Código de generación", dte.GenerationCode),
		metaRow("Sello de recepción", dte.ReceptionSeal),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar DTE: %w", err)
	}
	return doc.GetBytes(), nil
}

func (e *MarotoExporter) pageConfig(title string) *mentity.Config {
	return config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(e.business.Name, true).
		Build()
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: emisor + NIT/NRC (izq) y número + fecha (der).
func (e *MarotoExporter) headerRow(number, date string) core.Row {
	return row.New(20).Add(
		col.New(7).Add(
			text.New(e.business.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("NIT: "+e.business.NIT+"  NRC: "+e.business.NRC, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
			text.New(e.business.Address, props.Text{
				Size: 8, Top: 14, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("N° "+number, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 2,
			}),
			text.New("Fecha: "+date, props.Text{
				Size: 9, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func clientRow(client *entity.Client, fallbackName string) core.Row {
	name := fallbackName
	ids := ""
	address := ""
	if client != nil {
		name = client.Name
		ids = "DUI: " + client.DUI + "  NIT: " + client.NIT + "  NRC: " + client.NRC
		address = client.Address
	}
	return row.New(16).Add(
		col.New(12).Add(
			text.New("CLIENTE: "+name, props.Text{Style: fontstyle.Bold, Size: 9, Top: 1}),
			text.New(ids, props.Text{Size: 8, Top: 6, Color: colorGray}),
			text.New(address, props.Text{Size: 8, Top: 11, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary}
	return row.New(8).Add(
		col.New(1).Add(text.New("Cant", header)),
		col.New(2).Add(text.New("Código", header)),
		col.New(5).Add(text.New("Descripción", header)),
		col.New(2).Add(text.New("P. Unitario", withAlign(header, align.Right))),
		col.New(2).Add(text.New("Total", withAlign(header, align.Right))),
	)
}

func itemRow(item entity.SaleItem) core.Row {
	cell := props.Text{Size: 9}
	return row.New(6).Add(
		col.New(1).Add(text.New(fmt.Sprintf("%d", item.Quantity), cell)),
		col.New(2).Add(text.New(item.ProductCode, cell)),
		col.New(5).Add(text.New(item.ProductName, cell)),
		col.New(2).Add(text.New("$"+item.UnitPrice.StringFixed(2), withAlign(cell, align.Right))),
		col.New(2).Add(text.New("$"+item.Total.StringFixed(2), withAlign(cell, align.Right))),
	)
}

func totalRow(label, amount string, bold bool) core.Row {
	style := props.Text{Size: 9, Align: align.Right}
	if bold {
		style = props.Text{Size: 11, Align: align.Right, Style: fontstyle.Bold, Color: colorPrimary}
	}
	return row.New(6).Add(
		col.New(10).Add(text.New(label, style)),
		col.New(2).Add(text.New("$"+amount, style)),
	)
}

func metaRow(label, value string) core.Row {
	return row.New(7).Add(
		col.New(4).Add(text.New(label, props.Text{Style: fontstyle.Bold, Size: 9})),
		col.New(8).Add(text.New(value, props.Text{Size: 9})),
	)
}

func withAlign(t props.Text, a align.Type) props.Text {
	t.Align = a
	return t
}

func taxLabel(taxType string) string {
	if taxType == entity.TaxTypeIVA13 {
		return "IVA (13%)"
	}
	return "IVA (exento)"
}

func docTypeLabel(docType string) string {
	switch docType {
	case entity.DocTypeFactura:
		return "Factura"
	case entity.DocTypeCreditoFiscal:
		return "Comprobante de Crédito Fiscal"
	case entity.DocTypeNotaRemision:
		return "Nota de Remisión"
	default:
		return docType
	}
}
