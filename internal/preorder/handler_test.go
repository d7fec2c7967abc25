package preorder

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v2"

	"github.com/JuelHossain/import-goods-sub000/internal/auth"
)

const testSecret = "test-secret"

func testApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	handler := NewHandler(demoService())
	app.Use(jwtware.New(jwtware.Config{SigningKey: []byte(testSecret)}))
	handler.RegisterProtectedRoutes(app)
	handler.RegisterAdminRoutes(app, auth.RequireRole(auth.RoleAdmin))
	return app
}

func bearer(t *testing.T, userID int, role string) string {
	t.Helper()
	token, err := auth.IssueToken(testSecret, userID, "t@example.com", role)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return "Bearer " + token
}

func TestGetMyPreOrders(t *testing.T) {
	app := testApp(t)
	req := httptest.NewRequest("GET", "/api/v1/preorders", nil)
	req.Header.Set("Authorization", bearer(t, 2, auth.RoleCustomer))
	resp, err := app.Test(req, int(time.Second.Milliseconds()))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var out []preOrderResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("customer 2 has 2 fixture pre-orders, got %d", len(out))
	}
}

func TestCreatePreOrderStartsPendingWithTBDShipping(t *testing.T) {
	app := testApp(t)
	body := `{"customer":"Amina Rahman","items":[{"productName":"Hand-carved Chess Set","quantity":1,"price":350.00}],"shippingAddress":"14 Gulshan Ave"}`
	req := httptest.NewRequest("POST", "/api/v1/preorders", strings.NewReader(body))
	req.Header.Set("Authorization", bearer(t, 2, auth.RoleCustomer))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, int(time.Second.Milliseconds()))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	var out preOrderResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Status != StatusPending || out.EstimatedShipping != EstimatedShippingTBD {
		t.Fatalf("unexpected lifecycle start: %+v", out.PreOrder)
	}
	if out.CustomerID != 2 {
		t.Fatalf("customer id must come from the token, got %d", out.CustomerID)
	}
	if out.Amount != 350.00 || out.AmountDisplay != "$350.00" {
		t.Fatalf("unexpected amounts: %v / %q", out.Amount, out.AmountDisplay)
	}
}

func TestCreatePreOrderRejectsEmptyItems(t *testing.T) {
	app := testApp(t)
	req := httptest.NewRequest("POST", "/api/v1/preorders", strings.NewReader(`{"customer":"X","items":[]}`))
	req.Header.Set("Authorization", bearer(t, 2, auth.RoleCustomer))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, int(time.Second.Milliseconds()))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestGetPreOrderEnforcesOwnership(t *testing.T) {
	app := testApp(t)
	req := httptest.NewRequest("GET", "/api/v1/preorder/PRE-001", nil)
	req.Header.Set("Authorization", bearer(t, 3, auth.RoleCustomer))
	resp, err := app.Test(req, int(time.Second.Milliseconds()))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.StatusCode)
	}
}

func TestAdminPreOrdersFilterByStatus(t *testing.T) {
	app := testApp(t)
	req := httptest.NewRequest("GET", "/api/v1/admin/preorders?status=pending", nil)
	req.Header.Set("Authorization", bearer(t, 1, auth.RoleAdmin))
	resp, err := app.Test(req, int(time.Second.Milliseconds()))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	var out []preOrderResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out) != 0 {
		// status matching is exact against the stored enum; the admin UI
		// sends the canonical capitalized form
		t.Fatalf("lowercase status should match nothing in the fixture store, got %d", len(out))
	}

	req = httptest.NewRequest("GET", "/api/v1/admin/preorders?status=Pending", nil)
	req.Header.Set("Authorization", bearer(t, 1, auth.RoleAdmin))
	resp, err = app.Test(req, int(time.Second.Milliseconds()))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out) != 1 || out[0].ID != "PRE-002" {
		t.Fatalf("expected PRE-002, got %+v", out)
	}
}

func TestAdminUpdatePreOrderStatus(t *testing.T) {
	app := testApp(t)
	body := `{"status":"Approved","estimatedShipping":"2026-12-01"}`
	req := httptest.NewRequest("PUT", "/api/v1/admin/preorder/PRE-002/status", strings.NewReader(body))
	req.Header.Set("Authorization", bearer(t, 1, auth.RoleAdmin))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, int(time.Second.Milliseconds()))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var out preOrderResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Status != StatusApproved || out.EstimatedShipping != "2026-12-01" {
		t.Fatalf("unexpected update result: %+v", out.PreOrder)
	}
}

func TestAdminDeleteDistinguishesMissingFromFailed(t *testing.T) {
	app := fiber.New()
	handler := NewHandler(NewService(nil, NewFixtureMemory(), nil, time.Second))
	app.Use(jwtware.New(jwtware.Config{SigningKey: []byte(testSecret)}))
	handler.RegisterAdminRoutes(app, auth.RequireRole(auth.RoleAdmin))

	req := httptest.NewRequest("DELETE", "/api/v1/admin/preorder/PRE-404", nil)
	req.Header.Set("Authorization", bearer(t, 1, auth.RoleAdmin))
	resp, err := app.Test(req, int(time.Second.Milliseconds()))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("deleting an unknown pre-order should be 404, got %d", resp.StatusCode)
	}

	req = httptest.NewRequest("DELETE", "/api/v1/admin/preorder/PRE-003", nil)
	req.Header.Set("Authorization", bearer(t, 1, auth.RoleAdmin))
	resp, err = app.Test(req, int(time.Second.Milliseconds()))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	// a broken backend is a gateway problem, not a missing record
	broken := fiber.New()
	brokenHandler := NewHandler(NewService(failingRepository{}, NewFixtureSnapshot(), nil, time.Second))
	broken.Use(jwtware.New(jwtware.Config{SigningKey: []byte(testSecret)}))
	brokenHandler.RegisterAdminRoutes(broken, auth.RequireRole(auth.RoleAdmin))

	req = httptest.NewRequest("DELETE", "/api/v1/admin/preorder/PRE-001", nil)
	req.Header.Set("Authorization", bearer(t, 1, auth.RoleAdmin))
	resp, err = broken.Test(req, int(time.Second.Milliseconds()))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadGateway {
		t.Fatalf("a failed backend delete should be 502, got %d", resp.StatusCode)
	}
}
