package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/facturacion-sv/internal/application/auth"
	"github.com/tu-usuario/facturacion-sv/internal/application/catalog"
	appdte "github.com/tu-usuario/facturacion-sv/internal/application/dte"
	appsales "github.com/tu-usuario/facturacion-sv/internal/application/sales"
	"github.com/tu-usuario/facturacion-sv/internal/domain/entity"
	"github.com/tu-usuario/facturacion-sv/internal/infrastructure/memory"
	"github.com/tu-usuario/facturacion-sv/internal/infrastructure/notify"
	apphttp "github.com/tu-usuario/facturacion-sv/internal/interfaces/http"
	pkgjwt "github.com/tu-usuario/facturacion-sv/pkg/jwt"
	"github.com/tu-usuario/facturacion-sv/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "facturacion-sv-test"
	testExpMin    = 60
)

type fakeExporter struct{}

func (fakeExporter) ExportSale(sale *entity.Sale, client *entity.Client) ([]byte, error) {
	return []byte("%PDF-venta"), nil
}

func (fakeExporter) ExportDTE(doc *entity.DTEDocument) ([]byte, error) {
	return []byte("%PDF-dte"), nil
}

// buildTestApp levanta la aplicación completa sobre repositorios en memoria
// con los datos demo sembrados, igual que en el arranque real.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()

	log := logger.New(logger.Config{Env: "test", Level: "error"})
	productRepo := memory.NewProductRepository()
	clientRepo := memory.NewClientRepository()
	saleRepo := memory.NewSaleRepository()
	dteRepo := memory.NewDTERepository(memory.SeedDTEDocuments())
	userRepo := memory.NewUserRepository()
	require.NoError(t, memory.SeedCatalog(productRepo, clientRepo))

	feed := notify.NewFeed(log)
	exporter := fakeExporter{}

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC: auth.NewAuthUseCase(userRepo, auth.JWTConfig{
			Secret:     testJWTSecret,
			ExpMinutes: testExpMin,
			Issuer:     testIssuer,
		}),
		ProductUC: catalog.NewProductUseCase(productRepo),
		ClientUC:  catalog.NewClientUseCase(clientRepo),
		SaleUC:    appsales.NewSaleUseCase(saleRepo, productRepo, clientRepo, feed, exporter),
		DTEUC:     appdte.NewDTEUseCase(dteRepo, feed, exporter),
		Feed:      feed,
		JWTSecret: testJWTSecret,
	})
	return app
}

func authToken(t *testing.T) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, entity.RoleAdmin, testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", authToken(t))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// ──────────────────────────────────────────────────────────────────────────────
// Autenticación del grupo protegido
// ──────────────────────────────────────────────────────────────────────────────

func TestDTE_SinToken_Retorna401(t *testing.T) {
	app := buildTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/dte/", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Listado y resumen
// ──────────────────────────────────────────────────────────────────────────────

func TestDTE_List_DevuelveDocumentosConAcciones(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/dte/", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var docs []map[string]interface{}
	decodeBody(t, resp, &docs)
	require.Len(t, docs, 4)
	assert.Equal(t, "DTE001-001", docs[0]["document_number"])
	assert.Contains(t, docs[0]["actions"], "invalidate",
		"un DTE enviado debe ofrecer invalidate")
}

func TestDTE_Summary(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/dte/summary", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var summary map[string]int
	decodeBody(t, resp, &summary)
	assert.Equal(t, 1, summary["enviado"])
	assert.Equal(t, 1, summary["procesando"])
	assert.Equal(t, 1, summary["pendiente"])
	assert.Equal(t, 1, summary["rechazado"])
}

func TestDTE_GetByID_Inexistente_Retorna404(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/dte/999", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Eventos
// ──────────────────────────────────────────────────────────────────────────────

func TestDTE_InvalidarEnviado_Retorna200(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/dte/1/events",
		map[string]string{"event": "invalidate"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var doc map[string]interface{}
	decodeBody(t, resp, &doc)
	assert.Equal(t, "rechazado", doc["status"])
}

func TestDTE_InvalidarProcesando_Retorna409(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/dte/2/events",
		map[string]string{"event": "invalidate"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "ILLEGAL_TRANSITION", body["code"])

	// El estado no debe haber cambiado.
	again := doJSON(t, app, http.MethodGet, "/api/dte/2", nil)
	var doc map[string]interface{}
	decodeBody(t, again, &doc)
	assert.Equal(t, "procesando", doc["status"])
}

func TestDTE_EventoDesconocido_Retorna400(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/dte/1/events",
		map[string]string{"event": "archivar"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Descarga
// ──────────────────────────────────────────────────────────────────────────────

func TestDTE_Download_DevuelvePDF(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/dte/1/download", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "DTE-DTE001-001.pdf")

	// Descargar no debe mutar el estado.
	again := doJSON(t, app, http.MethodGet, "/api/dte/1", nil)
	var doc map[string]interface{}
	decodeBody(t, again, &doc)
	assert.Equal(t, "enviado", doc["status"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Notificaciones
// ──────────────────────────────────────────────────────────────────────────────

func TestDTE_EventoEmiteNotificacion(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/dte/1/events",
		map[string]string{"event": "resend"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	feedResp := doJSON(t, app, http.MethodGet, "/api/notifications", nil)
	var notifications []map[string]string
	decodeBody(t, feedResp, &notifications)
	require.NotEmpty(t, notifications)
	assert.Equal(t, "DTE Reenviado", notifications[0]["title"])
	assert.Equal(t, "info", notifications[0]["kind"])
}
