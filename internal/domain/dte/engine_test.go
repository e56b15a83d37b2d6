package dte_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/facturacion-sv/internal/domain"
	"github.com/tu-usuario/facturacion-sv/internal/domain/dte"
	"github.com/tu-usuario/facturacion-sv/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tabla estado → acciones disponibles
// ──────────────────────────────────────────────────────────────────────────────

func TestAvailableActions_TablaCompleta(t *testing.T) {
	cases := []struct {
		status   string
		expected []string
	}{
		{entity.DTEStatusEnviado, []string{"download", "invalidate", "resend"}},
		{entity.DTEStatusProcesando, []string{"download", "resend"}},
		{entity.DTEStatusPendiente, []string{"download", "contingency"}},
		{entity.DTEStatusRechazado, []string{"download", "contingency"}},
	}
	for _, tc := range cases {
		t.Run(tc.status, func(t *testing.T) {
			assert.ElementsMatch(t, tc.expected, dte.AvailableActions(tc.status))
		})
	}
}

func TestAvailableActions_EstadoDesconocidoSoloDescarga(t *testing.T) {
	assert.Equal(t, []string{"download"}, dte.AvailableActions("otro"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Transiciones
// ──────────────────────────────────────────────────────────────────────────────

// Invalidar solo es legal desde enviado y siempre produce rechazado.
func TestTransition_Invalidate(t *testing.T) {
	next, err := dte.Transition(entity.DTEStatusEnviado, entity.DTEActionInvalidate)
	require.NoError(t, err)
	assert.Equal(t, entity.DTEStatusRechazado, next)

	for _, status := range []string{
		entity.DTEStatusProcesando,
		entity.DTEStatusPendiente,
		entity.DTEStatusRechazado,
	} {
		next, err := dte.Transition(status, entity.DTEActionInvalidate)
		assert.ErrorIs(t, err, domain.ErrIllegalTransition, "estado %s", status)
		assert.Equal(t, status, next, "el estado no debe cambiar al rechazar la transición")
	}
}

// Contingencia solo es legal desde pendiente o rechazado y produce pendiente.
func TestTransition_Contingency(t *testing.T) {
	for _, status := range []string{entity.DTEStatusPendiente, entity.DTEStatusRechazado} {
		next, err := dte.Transition(status, entity.DTEActionContingency)
		require.NoError(t, err, "estado %s", status)
		assert.Equal(t, entity.DTEStatusPendiente, next)
	}

	for _, status := range []string{entity.DTEStatusEnviado, entity.DTEStatusProcesando} {
		next, err := dte.Transition(status, entity.DTEActionContingency)
		assert.ErrorIs(t, err, domain.ErrIllegalTransition, "estado %s", status)
		assert.Equal(t, status, next)
	}
}

// El motor acepta resend desde cualquier estado aunque la UI solo lo ofrezca
// para enviado/procesando; la asimetría es deliberada y este test la fija.
func TestTransition_ResendPermisivo(t *testing.T) {
	for _, status := range []string{
		entity.DTEStatusEnviado,
		entity.DTEStatusProcesando,
		entity.DTEStatusPendiente,
		entity.DTEStatusRechazado,
	} {
		next, err := dte.Transition(status, entity.DTEActionResend)
		require.NoError(t, err, "estado %s", status)
		assert.Equal(t, entity.DTEStatusProcesando, next)
	}
}

// Descargar nunca muta el estado.
func TestTransition_DownloadNoMuta(t *testing.T) {
	for _, status := range []string{
		entity.DTEStatusEnviado,
		entity.DTEStatusProcesando,
		entity.DTEStatusPendiente,
		entity.DTEStatusRechazado,
	} {
		next, err := dte.Transition(status, entity.DTEActionDownload)
		require.NoError(t, err)
		assert.Equal(t, status, next)
	}
}

func TestTransition_EventoDesconocido(t *testing.T) {
	next, err := dte.Transition(entity.DTEStatusEnviado, "imprimir")
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Equal(t, entity.DTEStatusEnviado, next)
}

// Toda acción mutante anunciada como disponible debe ser aceptada por
// Transition, y toda acción no anunciada (salvo resend, permisivo) debe ser
// rechazada: la tabla consultiva y el motor autoritativo son coherentes.
func TestAvailableActions_CoherenteConTransition(t *testing.T) {
	statuses := []string{
		entity.DTEStatusEnviado,
		entity.DTEStatusProcesando,
		entity.DTEStatusPendiente,
		entity.DTEStatusRechazado,
	}
	events := []string{
		entity.DTEActionInvalidate,
		entity.DTEActionContingency,
		entity.DTEActionResend,
	}
	for _, status := range statuses {
		available := dte.AvailableActions(status)
		has := func(a string) bool {
			for _, x := range available {
				if x == a {
					return true
				}
			}
			return false
		}
		for _, event := range events {
			_, err := dte.Transition(status, event)
			if has(event) {
				assert.NoError(t, err, "estado %s evento %s", status, event)
			} else if event != entity.DTEActionResend {
				assert.ErrorIs(t, err, domain.ErrIllegalTransition, "estado %s evento %s", status, event)
			}
		}
	}
}

func TestMutates(t *testing.T) {
	assert.True(t, dte.Mutates(entity.DTEActionInvalidate))
	assert.True(t, dte.Mutates(entity.DTEActionContingency))
	assert.True(t, dte.Mutates(entity.DTEActionResend))
	assert.False(t, dte.Mutates(entity.DTEActionDownload))
}
