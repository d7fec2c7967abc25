package auth

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v2"

	"github.com/JuelHossain/import-goods-sub000/internal/user"
)

const testSecret = "test-secret"

func testApp(t *testing.T) *fiber.App {
	t.Helper()
	users, err := user.NewDemoService()
	if err != nil {
		t.Fatalf("seed demo accounts: %v", err)
	}
	handler := NewHandler(users, testSecret)

	app := fiber.New()
	handler.RegisterPublicRoutes(app)
	app.Use(jwtware.New(jwtware.Config{SigningKey: []byte(testSecret)}))
	handler.RegisterProtectedRoutes(app)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body, token string) *fiber.Map {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, int(time.Second.Milliseconds()))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode >= 400 {
		t.Fatalf("%s returned %d", path, resp.StatusCode)
	}
	out := new(fiber.Map)
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return out
}

func TestSignInSignUpProfileRoundTrip(t *testing.T) {
	app := testApp(t)

	// register
	req := httptest.NewRequest("POST", "/api/v1/sign-up", strings.NewReader(
		`{"email":"lena@example.com","password":"pw-123","name":"Lena Petrova"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, int(time.Second.Milliseconds()))
	if err != nil {
		t.Fatalf("sign-up failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	// sign in
	body := postJSON(t, app, "/api/v1/sign-in", `{"email":"lena@example.com","password":"pw-123"}`, "")
	token, _ := (*body)["token"].(string)
	if token == "" {
		t.Fatal("sign-in did not return a token")
	}

	// profile
	profileReq := httptest.NewRequest("GET", "/api/v1/profile", nil)
	profileReq.Header.Set("Authorization", "Bearer "+token)
	profileResp, err := app.Test(profileReq, int(time.Second.Milliseconds()))
	if err != nil {
		t.Fatalf("profile failed: %v", err)
	}
	var profile user.User
	if err := json.NewDecoder(profileResp.Body).Decode(&profile); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if profile.Email != "lena@example.com" || profile.Role != user.RoleCustomer {
		t.Fatalf("unexpected profile: %+v", profile)
	}
	if profile.Password != "" {
		t.Fatal("profile response leaked the password hash")
	}
}

func TestSignInRejectsBadCredentials(t *testing.T) {
	app := testApp(t)
	req := httptest.NewRequest("POST", "/api/v1/sign-in", strings.NewReader(
		`{"email":"amina@example.com","password":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, int(time.Second.Milliseconds()))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestSignUpDuplicateEmailConflicts(t *testing.T) {
	app := testApp(t)
	req := httptest.NewRequest("POST", "/api/v1/sign-up", strings.NewReader(
		`{"email":"amina@example.com","password":"pw","name":"A"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, int(time.Second.Milliseconds()))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusConflict {
		t.Fatalf("expected 409, got %d", resp.StatusCode)
	}
}

func TestPasswordResetFlow(t *testing.T) {
	app := testApp(t)

	body := postJSON(t, app, "/api/v1/password-reset", `{"email":"daniel@example.com"}`, "")
	resetToken, _ := (*body)["resetToken"].(string)
	if resetToken == "" {
		t.Fatal("reset request did not return a token")
	}

	postJSON(t, app, "/api/v1/password-reset/confirm",
		`{"token":"`+resetToken+`","newPassword":"brand-new"}`, "")

	// old password dead, new one works
	req := httptest.NewRequest("POST", "/api/v1/sign-in", strings.NewReader(
		`{"email":"daniel@example.com","password":"daniel-demo"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, int(time.Second.Milliseconds()))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("old password still accepted: %d", resp.StatusCode)
	}
	postJSON(t, app, "/api/v1/sign-in", `{"email":"daniel@example.com","password":"brand-new"}`, "")
}

func TestPasswordResetDoesNotRevealAccounts(t *testing.T) {
	app := testApp(t)
	body := postJSON(t, app, "/api/v1/password-reset", `{"email":"ghost@example.com"}`, "")
	if _, ok := (*body)["resetToken"]; ok {
		t.Fatal("reset response revealed that the account does not exist")
	}
}

func TestSessionTokenCannotConfirmReset(t *testing.T) {
	app := testApp(t)
	session, err := IssueToken(testSecret, 2, "amina@example.com", RoleCustomer)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	req := httptest.NewRequest("POST", "/api/v1/password-reset/confirm", strings.NewReader(
		`{"token":"`+session+`","newPassword":"hijacked"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, int(time.Second.Milliseconds()))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("a session token must not pass as a reset token, got %d", resp.StatusCode)
	}
}

func TestWishlistRoutes(t *testing.T) {
	app := testApp(t)
	token, err := IssueToken(testSecret, 3, "daniel@example.com", RoleCustomer)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	body := postJSON(t, app, "/api/v1/wishlist/2", "", token)
	wishlist, _ := (*body)["wishlist"].([]any)
	if len(wishlist) != 2 {
		t.Fatalf("expected wishlist [2 4], got %v", wishlist)
	}

	req := httptest.NewRequest("DELETE", "/api/v1/wishlist/4", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, int(time.Second.Milliseconds()))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	var out struct {
		Wishlist []int `json:"wishlist"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Wishlist) != 1 || out.Wishlist[0] != 2 {
		t.Fatalf("expected [2], got %v", out.Wishlist)
	}
}
