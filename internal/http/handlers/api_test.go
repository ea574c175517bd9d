package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/devheloisa/Cadastro-Produtos/internal/http/handlers"
	"github.com/devheloisa/Cadastro-Produtos/internal/repos"
	"github.com/devheloisa/Cadastro-Produtos/internal/services"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	path := filepath.Join(t.TempDir(), "produtos.csv")
	catalog, err := services.NewCatalogService(repos.NewFileStore(path))
	if err != nil {
		t.Fatal(err)
	}
	deps := handlers.NewDeps(catalog)

	app := fiber.New()
	app.Use(requestid.New())
	api := app.Group("/api/v1")
	api.Get("/products", deps.ProductHandler.List)
	api.Post("/products", deps.ProductHandler.Create)
	api.Get("/products/:code", deps.ProductHandler.Get)
	api.Put("/products/:code", deps.ProductHandler.Replace)
	api.Delete("/products/:code", deps.ProductHandler.Delete)
	api.Get("/reports/expiring", deps.ReportHandler.Expiring)
	api.Get("/reports/low-stock", deps.ReportHandler.LowStock)
	api.Get("/reports/margins", deps.ReportHandler.Margins)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body map[string]any) (int, string) {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("test request failed: %v", err)
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(raw)
}

func beverage(code string) map[string]any {
	return map[string]any{
		"code":          code,
		"name":          "Guarana Soda",
		"purchasePrice": "10.00",
		"salePrice":     "12.00",
		"stockQuantity": 5,
		"category": map[string]any{
			"id": 1, "name": "Beverages", "sector": "Grocery",
		},
	}
}

func TestProductLifecycle(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, "POST", "/api/v1/products", beverage("BEV00001"))
	if status != fiber.StatusCreated {
		t.Fatalf("create: want 201, got %d (%s)", status, body)
	}

	status, body = doJSON(t, app, "GET", "/api/v1/products/bev00001", nil)
	if status != fiber.StatusOK || !strings.Contains(body, "Guarana Soda") {
		t.Fatalf("get: %d (%s)", status, body)
	}

	// Same code again: conflict.
	status, body = doJSON(t, app, "POST", "/api/v1/products", beverage("bev00001"))
	if status != fiber.StatusConflict {
		t.Fatalf("duplicate: want 409, got %d (%s)", status, body)
	}

	// Explicit replace path.
	repl := beverage("BEV00001")
	repl["name"] = "Replacement Soda"
	status, body = doJSON(t, app, "PUT", "/api/v1/products/BEV00001", repl)
	if status != fiber.StatusOK {
		t.Fatalf("replace: want 200, got %d (%s)", status, body)
	}
	status, body = doJSON(t, app, "GET", "/api/v1/products/BEV00001", nil)
	if !strings.Contains(body, "Replacement Soda") {
		t.Fatalf("replace did not take: %d (%s)", status, body)
	}

	status, body = doJSON(t, app, "DELETE", "/api/v1/products/BEV00001", nil)
	if status != fiber.StatusOK || !strings.Contains(body, `"deleted":true`) {
		t.Fatalf("delete: %d (%s)", status, body)
	}

	status, _ = doJSON(t, app, "GET", "/api/v1/products/BEV00001", nil)
	if status != fiber.StatusNotFound {
		t.Fatalf("want 404 after delete, got %d", status)
	}

	status, body = doJSON(t, app, "DELETE", "/api/v1/products/BEV00001", nil)
	if status != fiber.StatusOK || !strings.Contains(body, `"deleted":false`) {
		t.Fatalf("delete missing must report false: %d (%s)", status, body)
	}
}

func TestValidationErrorSurfacesVerbatim(t *testing.T) {
	app := newTestApp(t)

	bad := beverage("BAD")
	status, body := doJSON(t, app, "POST", "/api/v1/products", bad)
	if status != fiber.StatusUnprocessableEntity {
		t.Fatalf("want 422, got %d (%s)", status, body)
	}
	if !strings.Contains(body, "code must be exactly 8 alphanumeric characters") {
		t.Fatalf("validation message must surface verbatim: %s", body)
	}
}

func TestUnparsablePriceRejectedByShell(t *testing.T) {
	app := newTestApp(t)

	bad := beverage("BEV00001")
	bad["purchasePrice"] = "ten bucks"
	status, body := doJSON(t, app, "POST", "/api/v1/products", bad)
	if status != fiber.StatusBadRequest {
		t.Fatalf("want 400, got %d (%s)", status, body)
	}
	if !strings.Contains(body, "purchasePrice") {
		t.Fatalf("error should name the field: %s", body)
	}
}

func TestSectorFilterAndReports(t *testing.T) {
	app := newTestApp(t)

	grocery := beverage("BEV00001")
	electronics := beverage("ELE00001")
	electronics["name"] = "Pocket Radio"
	electronics["stockQuantity"] = 2
	electronics["category"] = map[string]any{"id": 2, "name": "Gadgets", "sector": "Electronics"}
	for _, p := range []map[string]any{grocery, electronics} {
		if status, body := doJSON(t, app, "POST", "/api/v1/products", p); status != fiber.StatusCreated {
			t.Fatalf("seed failed: %d (%s)", status, body)
		}
	}

	status, body := doJSON(t, app, "GET", "/api/v1/products?sector=electronics", nil)
	if status != fiber.StatusOK || !strings.Contains(body, "Pocket Radio") || strings.Contains(body, "Guarana") {
		t.Fatalf("sector filter: %d (%s)", status, body)
	}

	status, body = doJSON(t, app, "GET", "/api/v1/reports/low-stock?threshold=3", nil)
	if status != fiber.StatusOK || !strings.Contains(body, "ELE00001") || strings.Contains(body, "BEV00001") {
		t.Fatalf("low stock report: %d (%s)", status, body)
	}

	status, body = doJSON(t, app, "GET", "/api/v1/reports/margins", nil)
	if status != fiber.StatusOK || !strings.Contains(body, "0.2000") {
		t.Fatalf("margins report: %d (%s)", status, body)
	}
}
