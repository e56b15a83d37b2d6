// Package dte contiene el motor de estados de los Documentos Tributarios
// Electrónicos (El Salvador). Las acciones disponibles y las transiciones son
// funciones puras del estado actual; la persistencia y las notificaciones
// quedan fuera (servicio de dominio, sin I/O).
package dte

import (
	"fmt"

	"github.com/tu-usuario/facturacion-sv/internal/domain"
	"github.com/tu-usuario/facturacion-sv/internal/domain/entity"
)

// AvailableActions devuelve las acciones permitidas para un estado.
// La lista es consultiva para la capa de presentación: toda transición se
// revalida en Transition al momento de aplicarla.
//
//	enviado    -> download, invalidate, resend
//	procesando -> download, resend
//	pendiente  -> download, contingency
//	rechazado  -> download, contingency
func AvailableActions(status string) []string {
	base := []string{entity.DTEActionDownload} // descargar siempre es posible

	switch status {
	case entity.DTEStatusEnviado:
		// Solo los DTE procesados por el MH pueden invalidarse
		return append(base, entity.DTEActionInvalidate, entity.DTEActionResend)
	case entity.DTEStatusProcesando:
		return append(base, entity.DTEActionResend)
	case entity.DTEStatusPendiente, entity.DTEStatusRechazado:
		return append(base, entity.DTEActionContingency)
	default:
		return base
	}
}

// Transition aplica un evento sobre un estado y devuelve el estado resultante.
// Revalida las precondiciones aquí, no solo donde se pintó el botón:
//
//   - invalidate:  solo desde enviado; resulta rechazado.
//   - contingency: solo desde pendiente o rechazado; resulta pendiente.
//   - resend:      permitido desde cualquier estado; resulta procesando.
//     (La UI lo limita a enviado/procesando; el motor es permisivo a
//     propósito, el comportamiento está marcado como pregunta abierta.)
//   - download:    nunca muta el estado; siempre legal.
func Transition(status, event string) (string, error) {
	switch event {
	case entity.DTEActionInvalidate:
		if status != entity.DTEStatusEnviado {
			return status, fmt.Errorf("%w: solo se pueden invalidar DTE enviados", domain.ErrIllegalTransition)
		}
		return entity.DTEStatusRechazado, nil

	case entity.DTEActionContingency:
		if status != entity.DTEStatusPendiente && status != entity.DTEStatusRechazado {
			return status, fmt.Errorf("%w: solo se pueden marcar como contingencia los DTE rechazados o pendientes", domain.ErrIllegalTransition)
		}
		return entity.DTEStatusPendiente, nil

	case entity.DTEActionResend:
		return entity.DTEStatusProcesando, nil

	case entity.DTEActionDownload:
		return status, nil

	default:
		return status, fmt.Errorf("%w: evento desconocido %q", domain.ErrInvalidInput, event)
	}
}

// Mutates indica si el evento cambia el estado del documento.
func Mutates(event string) bool {
	return event == entity.DTEActionInvalidate ||
		event == entity.DTEActionContingency ||
		event == entity.DTEActionResend
}
