package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un DTE frente al Ministerio de Hacienda (El Salvador).
const (
	DTEStatusEnviado    = "enviado"
	DTEStatusProcesando = "procesando"
	DTEStatusPendiente  = "pendiente"
	DTEStatusRechazado  = "rechazado"
)

// Acciones sobre un DTE. La disponibilidad depende del estado (ver domain/dte).
const (
	DTEActionDownload    = "download"
	DTEActionResend      = "resend"
	DTEActionInvalidate  = "invalidate"
	DTEActionContingency = "contingency"
)

// DTEDocument representa un Documento Tributario Electrónico emitido.
// GenerationCode y ReceptionSeal son identificadores opacos asignados por el
// MH; el ciclo de vida solo se muta a través del motor de estados.
type DTEDocument struct {
	ID             string
	DocumentNumber string
	Type           string // factura | credito_fiscal | nota_remision
	ClientName     string
	Date           time.Time
	Total          decimal.Decimal
	Status         string
	GenerationCode string
	ReceptionSeal  string // "N/A" mientras no exista sello
}
