package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"softwify-backend/internal/config"
	"softwify-backend/internal/models"
	"softwify-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

func newTestApp() (*fiber.App, *store.Store, *config.Config) {
	cfg := &config.Config{JWTSecret: "test-secret-test-secret-test-secret!"}
	st := store.NewSeeded()

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{"error": e.Message})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Unexpected server error"})
		},
	})

	api := app.Group("/api")
	api.Post("/auth/login", LoginHandler(cfg, st))

	protected := api.Group("")
	protected.Use(JWTMiddleware(cfg))
	protected.Post("/auth/logout", LogoutHandler(st))
	protected.Get("/auth/me", MeHandler(st))

	adminOnly := protected.Group("/admin")
	adminOnly.Use(RequireRole(models.RoleAdmin))
	adminOnly.Get("/probe", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	return app, st, cfg
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

func loginToken(t *testing.T, app *fiber.App, email, role string) string {
	t.Helper()

	resp := doJSON(t, app, "POST", "/api/auth/login", "", fiber.Map{
		"email": email, "password": "x", "role": role,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login %s as %s: status %d", email, role, resp.StatusCode)
	}
	var body struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	return body.Token
}

func TestLoginHandler(t *testing.T) {
	tests := []struct {
		name       string
		email      string
		password   string
		role       string
		wantStatus int
	}{
		{"admin any password", "admin@softwify.com", "anything", "admin", http.StatusOK},
		{"admin empty password", "admin@softwify.com", "", "admin", http.StatusOK},
		{"role mismatch", "admin@softwify.com", "anything", "employee", http.StatusUnauthorized},
		{"unknown email", "nobody@softwify.com", "x", "admin", http.StatusUnauthorized},
		{"invalid role", "admin@softwify.com", "x", "root", http.StatusBadRequest},
		{"missing email", "", "x", "admin", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _, _ := newTestApp()
			resp := doJSON(t, app, "POST", "/api/auth/login", "", fiber.Map{
				"email": tt.email, "password": tt.password, "role": tt.role,
			})
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
		})
	}
}

func TestLoginResponsePayload(t *testing.T) {
	app, st, _ := newTestApp()
	resp := doJSON(t, app, "POST", "/api/auth/login", "", fiber.Map{
		"email": "admin@softwify.com", "password": "whatever", "role": "admin",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body struct {
		Token string `json:"token"`
		User  struct {
			Name string          `json:"name"`
			Role models.UserRole `json:"role"`
		} `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Token == "" {
		t.Error("token is empty")
	}
	if body.User.Name != "Admin User" || body.User.Role != models.RoleAdmin {
		t.Errorf("user = %+v, want Admin User / admin", body.User)
	}

	if cur, ok := st.CurrentUser(); !ok || cur.Name != "Admin User" {
		t.Errorf("store session = %+v, ok=%v", cur, ok)
	}
}

func TestLoginCaseInsensitiveEmail(t *testing.T) {
	app, _, _ := newTestApp()
	resp := doJSON(t, app, "POST", "/api/auth/login", "", fiber.Map{
		"email": "Admin@Softwify.com", "password": "x", "role": "admin",
	})
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200 (handler lowercases email)", resp.StatusCode)
	}
}

func TestProtectedRoutes(t *testing.T) {
	app, _, _ := newTestApp()
	adminToken := loginToken(t, app, "admin@softwify.com", "admin")
	employeeToken := loginToken(t, app, "john.smith@softwify.com", "employee")

	tests := []struct {
		name       string
		token      string
		path       string
		wantStatus int
	}{
		{"no token", "", "/api/auth/me", http.StatusUnauthorized},
		{"garbage token", "not-a-token", "/api/auth/me", http.StatusUnauthorized},
		{"admin on admin route", adminToken, "/api/admin/probe", http.StatusOK},
		{"employee on admin route", employeeToken, "/api/admin/probe", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doJSON(t, app, "GET", tt.path, tt.token, nil)
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
		})
	}
}

func TestLogoutHandlerIdempotent(t *testing.T) {
	app, st, _ := newTestApp()
	token := loginToken(t, app, "admin@softwify.com", "admin")

	for i := 0; i < 2; i++ {
		resp := doJSON(t, app, "POST", "/api/auth/logout", token, nil)
		if resp.StatusCode != http.StatusNoContent {
			t.Fatalf("logout #%d: status = %d, want 204", i+1, resp.StatusCode)
		}
		if _, ok := st.CurrentUser(); ok {
			t.Errorf("logout #%d left a session behind", i+1)
		}
	}
}

func TestMeHandler(t *testing.T) {
	app, _, _ := newTestApp()
	token := loginToken(t, app, "john.smith@softwify.com", "employee")

	resp := doJSON(t, app, "GET", "/api/auth/me", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var body struct {
		Name       string `json:"name"`
		EmployeeID *int   `json:"employee_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Name != "John Smith" {
		t.Errorf("name = %q, want John Smith", body.Name)
	}
	if body.EmployeeID == nil || *body.EmployeeID != 1 {
		t.Errorf("employee_id = %v, want 1", body.EmployeeID)
	}
}

func TestGenerateTokenRoundTrip(t *testing.T) {
	user := models.User{ID: 2, Name: "John Smith", Email: "john.smith@softwify.com", Role: models.RoleEmployee}
	empID := 1
	user.EmployeeID = &empID

	token, err := GenerateToken("test-secret-test-secret-test-secret!", &user)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if token == "" {
		t.Fatal("empty token")
	}

	// Two tokens for the same user differ because each carries a fresh jti.
	second, err := GenerateToken("test-secret-test-secret-test-secret!", &user)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if token == second {
		t.Error("two tokens are identical, jti claim missing")
	}
}
