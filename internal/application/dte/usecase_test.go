package dte_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/facturacion-sv/internal/application/dte"
	"github.com/tu-usuario/facturacion-sv/internal/domain"
	"github.com/tu-usuario/facturacion-sv/internal/domain/entity"
	"github.com/tu-usuario/facturacion-sv/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type fakeNotifier struct {
	calls []notifyCall
}

type notifyCall struct {
	Kind    string
	Title   string
	Message string
}

func (f *fakeNotifier) Notify(kind, title, message string) {
	f.calls = append(f.calls, notifyCall{Kind: kind, Title: title, Message: message})
}

type fakeExporter struct{}

func (fakeExporter) ExportSale(sale *entity.Sale, client *entity.Client) ([]byte, error) {
	return []byte("%PDF-venta"), nil
}

func (fakeExporter) ExportDTE(doc *entity.DTEDocument) ([]byte, error) {
	return []byte("%PDF-dte"), nil
}

// newDTEUseCase arma el caso de uso sobre los documentos demo:
//
//	1 enviado, 2 procesando, 3 rechazado, 4 pendiente
func newDTEUseCase(t *testing.T) (*dte.DTEUseCase, *memory.DTERepository, *fakeNotifier) {
	t.Helper()
	repo := memory.NewDTERepository(memory.SeedDTEDocuments())
	notifier := &fakeNotifier{}
	return dte.NewDTEUseCase(repo, notifier, fakeExporter{}), repo, notifier
}

// ──────────────────────────────────────────────────────────────────────────────
// ApplyEvent — transiciones válidas
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyEvent_InvalidarEnviado(t *testing.T) {
	uc, repo, notifier := newDTEUseCase(t)

	out, err := uc.ApplyEvent("1", entity.DTEActionInvalidate)
	require.NoError(t, err)
	assert.Equal(t, entity.DTEStatusRechazado, out.Status)

	doc, _ := repo.GetByID("1")
	assert.Equal(t, entity.DTEStatusRechazado, doc.Status, "el nuevo estado debe persistir")

	require.Len(t, notifier.calls, 1)
	assert.Equal(t, "warning", notifier.calls[0].Kind)
	assert.Equal(t, "DTE Invalidado", notifier.calls[0].Title)
	assert.Contains(t, notifier.calls[0].Message, "DTE001-001")
}

func TestApplyEvent_ContingenciaDesdeRechazado(t *testing.T) {
	uc, _, notifier := newDTEUseCase(t)

	out, err := uc.ApplyEvent("3", entity.DTEActionContingency)
	require.NoError(t, err)
	assert.Equal(t, entity.DTEStatusPendiente, out.Status)

	require.Len(t, notifier.calls, 1)
	assert.Equal(t, "DTE en Contingencia", notifier.calls[0].Title)
}

func TestApplyEvent_ContingenciaDesdePendiente_SeQuedaPendiente(t *testing.T) {
	uc, _, _ := newDTEUseCase(t)

	out, err := uc.ApplyEvent("4", entity.DTEActionContingency)
	require.NoError(t, err)
	assert.Equal(t, entity.DTEStatusPendiente, out.Status)
}

// El reenvío se acepta desde cualquier estado, incluso donde la UI no pinta la
// acción. Comportamiento documentado del original.
func TestApplyEvent_ReenvioDesdeCualquierEstado(t *testing.T) {
	uc, _, notifier := newDTEUseCase(t)

	for _, id := range []string{"1", "2", "3", "4"} {
		out, err := uc.ApplyEvent(id, entity.DTEActionResend)
		require.NoError(t, err, "resend debe aceptarse en el documento %s", id)
		assert.Equal(t, entity.DTEStatusProcesando, out.Status)
	}
	assert.Len(t, notifier.calls, 4)
	assert.Equal(t, "DTE Reenviado", notifier.calls[0].Title)
	assert.Equal(t, "info", notifier.calls[0].Kind)
}

// ──────────────────────────────────────────────────────────────────────────────
// ApplyEvent — rechazos
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyEvent_InvalidarProcesando_Rechaza(t *testing.T) {
	uc, repo, notifier := newDTEUseCase(t)

	_, err := uc.ApplyEvent("2", entity.DTEActionInvalidate)
	assert.ErrorIs(t, err, domain.ErrIllegalTransition)

	doc, _ := repo.GetByID("2")
	assert.Equal(t, entity.DTEStatusProcesando, doc.Status,
		"un evento rechazado deja el estado intacto")
	assert.Empty(t, notifier.calls, "un evento rechazado no notifica")
}

func TestApplyEvent_ContingenciaDesdeEnviado_Rechaza(t *testing.T) {
	uc, _, _ := newDTEUseCase(t)

	_, err := uc.ApplyEvent("1", entity.DTEActionContingency)
	assert.ErrorIs(t, err, domain.ErrIllegalTransition)
}

func TestApplyEvent_DownloadNoEsEvento(t *testing.T) {
	uc, _, _ := newDTEUseCase(t)

	_, err := uc.ApplyEvent("1", entity.DTEActionDownload)
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"download no muta estado y no se acepta como evento")
}

func TestApplyEvent_EventoDesconocido(t *testing.T) {
	uc, _, _ := newDTEUseCase(t)

	_, err := uc.ApplyEvent("1", "archivar")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestApplyEvent_DocumentoInexistente(t *testing.T) {
	uc, _, _ := newDTEUseCase(t)

	_, err := uc.ApplyEvent("999", entity.DTEActionResend)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Download
// ──────────────────────────────────────────────────────────────────────────────

func TestDownload_NoMutaEstado(t *testing.T) {
	uc, repo, notifier := newDTEUseCase(t)

	artifact, filename, err := uc.Download("2")
	require.NoError(t, err)
	assert.NotEmpty(t, artifact)
	assert.Equal(t, "DTE-DTE001-002.pdf", filename)

	doc, _ := repo.GetByID("2")
	assert.Equal(t, entity.DTEStatusProcesando, doc.Status, "descargar nunca cambia el estado")

	require.Len(t, notifier.calls, 1)
	assert.Equal(t, "success", notifier.calls[0].Kind)
	assert.Equal(t, "Descarga iniciada", notifier.calls[0].Title)
}

func TestDownload_DocumentoInexistente(t *testing.T) {
	uc, _, _ := newDTEUseCase(t)

	_, _, err := uc.Download("999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Listado y resumen
// ──────────────────────────────────────────────────────────────────────────────

func TestList_IncluyeAccionesDisponibles(t *testing.T) {
	uc, _, _ := newDTEUseCase(t)

	list, err := uc.List()
	require.NoError(t, err)
	require.Len(t, list, 4)

	byID := map[string][]string{}
	for _, doc := range list {
		byID[doc.ID] = doc.Actions
	}
	assert.ElementsMatch(t, []string{"download", "invalidate", "resend"}, byID["1"])
	assert.ElementsMatch(t, []string{"download", "resend"}, byID["2"])
	assert.ElementsMatch(t, []string{"download", "contingency"}, byID["3"])
	assert.ElementsMatch(t, []string{"download", "contingency"}, byID["4"])
}

func TestSummary_CuentaPorEstado(t *testing.T) {
	uc, _, _ := newDTEUseCase(t)

	out, err := uc.Summary()
	require.NoError(t, err)
	assert.Equal(t, 1, out.Enviado)
	assert.Equal(t, 1, out.Procesando)
	assert.Equal(t, 1, out.Pendiente)
	assert.Equal(t, 1, out.Rechazado)
}

func TestSummary_SeActualizaTrasEvento(t *testing.T) {
	uc, _, _ := newDTEUseCase(t)

	_, err := uc.ApplyEvent("1", entity.DTEActionInvalidate)
	require.NoError(t, err)

	out, err := uc.Summary()
	require.NoError(t, err)
	assert.Equal(t, 0, out.Enviado)
	assert.Equal(t, 2, out.Rechazado)
}
