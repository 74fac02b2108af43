package router

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/solvex/cotizaciones/internal/server/http/handlers"
	testhelpers "github.com/solvex/cotizaciones/internal/test"
)

func TestSetupRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	engine := Setup(testhelpers.ServiceFacadeStub{}, logger)

	body, _ := json.Marshal(map[string]string{"username": "user", "password": "pass"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201 for register, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/cotizaciones", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for quote list, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/health", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for health, got %d", resp.Code)
	}
}

func TestSetupRejectsUnauthenticatedQuotes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	engine := Setup(testhelpers.ServiceFacadeStub{}, logger)

	for _, route := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/cotizaciones"},
		{http.MethodPost, "/api/cotizaciones"},
		{http.MethodGet, "/api/cotizaciones/1"},
		{http.MethodPut, "/api/cotizaciones/1"},
		{http.MethodDelete, "/api/cotizaciones/1"},
	} {
		req := httptest.NewRequest(route.method, route.path, nil)
		resp := httptest.NewRecorder()
		engine.ServeHTTP(resp, req)
		if resp.Code != http.StatusUnauthorized {
			t.Fatalf("expected status 401 for %s %s, got %d", route.method, route.path, resp.Code)
		}
	}
}

func TestSetupServesOpenAPIDocument(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	engine := Setup(testhelpers.ServiceFacadeStub{}, logger)

	req := httptest.NewRequest(http.MethodGet, "/api-docs/openapi.yaml", nil)
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for openapi document, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "Cotizaciones API") {
		t.Fatal("expected served document to describe the API")
	}
}

var _ handlers.ServiceFacade = (*testhelpers.ServiceFacadeStub)(nil)
