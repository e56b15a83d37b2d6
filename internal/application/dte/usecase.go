package dte

import (
	"fmt"

	"github.com/tu-usuario/facturacion-sv/internal/application/dto"
	"github.com/tu-usuario/facturacion-sv/internal/application/ports"
	"github.com/tu-usuario/facturacion-sv/internal/domain"
	domdte "github.com/tu-usuario/facturacion-sv/internal/domain/dte"
	"github.com/tu-usuario/facturacion-sv/internal/domain/entity"
	"github.com/tu-usuario/facturacion-sv/internal/domain/repository"
)

// DTEUseCase gestión del ciclo de vida de los DTE: listado, resumen por
// estado, aplicación de eventos y descarga. La lista de acciones es estado
// consultivo para la UI; toda transición se revalida aquí contra el motor y
// se aplica con compare-and-swap en el repositorio, de modo que dos eventos
// concurrentes sobre el mismo documento no puedan tener éxito ambos desde
// una lectura obsoleta del estado.
type DTEUseCase struct {
	repo     repository.DTERepository
	notifier ports.Notifier
	exporter ports.DocumentExporter
}

// NewDTEUseCase construye el caso de uso.
func NewDTEUseCase(repo repository.DTERepository, notifier ports.Notifier, exporter ports.DocumentExporter) *DTEUseCase {
	return &DTEUseCase{repo: repo, notifier: notifier, exporter: exporter}
}

// List lista los documentos con sus acciones disponibles.
func (uc *DTEUseCase) List() ([]dto.DTEDocumentResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.DTEDocumentResponse, 0, len(list))
	for _, doc := range list {
		out = append(out, *toDocumentResponse(doc))
	}
	return out, nil
}

// GetByID obtiene un documento.
func (uc *DTEUseCase) GetByID(id string) (*dto.DTEDocumentResponse, error) {
	doc, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrNotFound
	}
	return toDocumentResponse(doc), nil
}

// Summary cuenta documentos por estado (tarjetas del tablero).
func (uc *DTEUseCase) Summary() (*dto.DTESummaryResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	var out dto.DTESummaryResponse
	for _, doc := range list {
		switch doc.Status {
		case entity.DTEStatusEnviado:
			out.Enviado++
		case entity.DTEStatusProcesando:
			out.Procesando++
		case entity.DTEStatusPendiente:
			out.Pendiente++
		case entity.DTEStatusRechazado:
			out.Rechazado++
		}
	}
	return &out, nil
}

// ApplyEvent aplica un evento mutante (invalidate, contingency, resend)
// sobre el documento. Las precondiciones se revalidan en el momento de
// aplicar, no solo donde se pintó la acción; el estado anterior queda
// intacto ante cualquier rechazo.
func (uc *DTEUseCase) ApplyEvent(id, event string) (*dto.DTEDocumentResponse, error) {
	if !domdte.Mutates(event) {
		return nil, fmt.Errorf("%w: evento no aplicable %q", domain.ErrInvalidInput, event)
	}
	doc, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrNotFound
	}
	next, err := domdte.Transition(doc.Status, event)
	if err != nil {
		return nil, err
	}
	updated, err := uc.repo.UpdateStatus(id, doc.Status, next)
	if err != nil {
		return nil, err
	}
	uc.notifyEvent(updated, event)
	return toDocumentResponse(updated), nil
}

// Download solicita el PDF del documento al colaborador de exportación.
// Nunca muta el estado.
func (uc *DTEUseCase) Download(id string) ([]byte, string, error) {
	doc, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, "", err
	}
	if doc == nil {
		return nil, "", domain.ErrNotFound
	}
	artifact, err := uc.exporter.ExportDTE(doc)
	if err != nil {
		return nil, "", err
	}
	uc.notifier.Notify(ports.NotifySuccess, "Descarga iniciada",
		fmt.Sprintf("Descargando documento %s", doc.DocumentNumber))
	return artifact, fmt.Sprintf("DTE-%s.pdf", doc.DocumentNumber), nil
}

// notifyEvent emite la notificación de cada transición exitosa. El envío es
// fire-and-forget: no forma parte de la máquina de estados.
func (uc *DTEUseCase) notifyEvent(doc *entity.DTEDocument, event string) {
	switch event {
	case entity.DTEActionInvalidate:
		uc.notifier.Notify(ports.NotifyWarning, "DTE Invalidado",
			fmt.Sprintf("El documento %s ha sido invalidado", doc.DocumentNumber))
	case entity.DTEActionContingency:
		uc.notifier.Notify(ports.NotifyWarning, "DTE en Contingencia",
			fmt.Sprintf("El documento %s ha sido marcado como contingencia", doc.DocumentNumber))
	case entity.DTEActionResend:
		uc.notifier.Notify(ports.NotifyInfo, "DTE Reenviado",
			fmt.Sprintf("El documento %s ha sido reenviado al MH", doc.DocumentNumber))
	}
}

func toDocumentResponse(doc *entity.DTEDocument) *dto.DTEDocumentResponse {
	return &dto.DTEDocumentResponse{
		ID:             doc.ID,
		DocumentNumber: doc.DocumentNumber,
		Type:           doc.Type,
		ClientName:     doc.ClientName,
		Date:           doc.Date.Format("2006-01-02"),
		Total:          doc.Total,
		Status:         doc.Status,
		GenerationCode: doc.GenerationCode,
		ReceptionSeal:  doc.ReceptionSeal,
		Actions:        domdte.AvailableActions(doc.Status),
	}
}
