package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/costo-promedio/internal/application/dto"
	"github.com/jhoicas/costo-promedio/internal/application/pricing"
	"github.com/jhoicas/costo-promedio/internal/domain/inventory"
	apphttp "github.com/jhoicas/costo-promedio/internal/interfaces/http"
	"github.com/jhoicas/costo-promedio/pkg/logger"
)

// buildTestApp construye la aplicación Fiber con el router completo.
func buildTestApp() *fiber.App {
	return buildTestAppWithLogger(logger.Nop())
}

func buildTestAppWithLogger(log *logger.Logger) *fiber.App {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		PriceAverager: pricing.NewPriceAveragerUseCase(inventory.DefaultBaseInventory(), logger.Nop()),
		Logger:        log,
		AppName:       "costo-promedio-test",
	})
	return app
}

func doRequest(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, []byte) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func TestGetAverage_OK(t *testing.T) {
	app := buildTestApp()
	req := httptest.NewRequest(http.MethodGet, "/api/pricing/average?unit_price=10&purchase_amount=1000", nil)

	resp, body := doRequest(t, app, req)
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(body))

	var out dto.AveragePriceResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "28.22", out.AveragePrice)
	assert.Equal(t, "23100", out.TotalQuantity.String())
}

func TestGetAverage_Errores(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantCode   string
	}{
		{"falta monto", "unit_price=10", fiber.StatusBadRequest, "MISSING_ARGUMENT"},
		{"sin parametros", "", fiber.StatusBadRequest, "MISSING_ARGUMENT"},
		{"no numerico", "unit_price=x&purchase_amount=1000", fiber.StatusBadRequest, "INVALID_NUMBER"},
		{"precio cero", "unit_price=0&purchase_amount=1000", fiber.StatusUnprocessableEntity, "DIVISION_BY_ZERO"},
		{"cantidad total cero", "unit_price=1&purchase_amount=-23000", fiber.StatusUnprocessableEntity, "DIVISION_BY_ZERO"},
		{"exponente enorme", "unit_price=1&purchase_amount=1e20000000", fiber.StatusBadRequest, "INVALID_NUMBER"},
		{"exponente negativo enorme", "unit_price=1e-20000000&purchase_amount=1", fiber.StatusBadRequest, "INVALID_NUMBER"},
	}
	app := buildTestApp()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/pricing/average?"+tt.query, nil)
			resp, body := doRequest(t, app, req)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			var e dto.ErrorResponse
			require.NoError(t, json.Unmarshal(body, &e))
			assert.Equal(t, tt.wantCode, e.Code)
			assert.Equal(t, resp.Header.Get(apphttp.HeaderRequestID), e.RequestID)
		})
	}
}

func TestPostAverage_Errores(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCode   string
	}{
		{"falta campo", `{"unit_price": "10"}`, fiber.StatusBadRequest, "MISSING_ARGUMENT"},
		{"no numerico", `{"unit_price": "abc", "purchase_amount": "1"}`, fiber.StatusBadRequest, "INVALID_NUMBER"},
		{"exponente enorme", `{"unit_price": 1, "purchase_amount": 1e20000000}`, fiber.StatusBadRequest, "INVALID_NUMBER"},
		{"cantidad total cero", `{"unit_price": "1", "purchase_amount": "-23000"}`, fiber.StatusUnprocessableEntity, "DIVISION_BY_ZERO"},
	}
	app := buildTestApp()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/pricing/average", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			resp, body := doRequest(t, app, req)
			assert.Equal(t, tt.wantStatus, resp.StatusCode, string(body))

			var e dto.ErrorResponse
			require.NoError(t, json.Unmarshal(body, &e))
			assert.Equal(t, tt.wantCode, e.Code)
		})
	}
}

// El log de acceso debe reflejar el status final aunque el handler devuelva error.
func TestRequestID_LogStatusRutaInexistente(t *testing.T) {
	var buf bytes.Buffer
	app := buildTestAppWithLogger(logger.New(logger.Config{Env: "production", Level: "info", Out: &buf}))

	resp, _ := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/no-existe", nil))
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, float64(fiber.StatusNotFound), entry["status"])
	assert.Equal(t, "/no-existe", entry["path"])
}

func TestPostAverage(t *testing.T) {
	app := buildTestApp()

	req := httptest.NewRequest(http.MethodPost, "/api/pricing/average",
		strings.NewReader(`{"unit_price": "10", "purchase_amount": 0}`))
	req.Header.Set("Content-Type", "application/json")
	resp, body := doRequest(t, app, req)
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(body))

	var out dto.AveragePriceResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "28.30", out.AveragePrice)
}

func TestRequestID(t *testing.T) {
	app := buildTestApp()

	resp, _ := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/health", nil))
	_, err := uuid.Parse(resp.Header.Get(apphttp.HeaderRequestID))
	assert.NoError(t, err, "debe generarse un UUID")

	incoming := uuid.New().String()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(apphttp.HeaderRequestID, incoming)
	resp, _ = doRequest(t, app, req)
	assert.Equal(t, incoming, resp.Header.Get(apphttp.HeaderRequestID))
}
