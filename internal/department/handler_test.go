package department

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"softwify-backend/internal/auth"
	"softwify-backend/internal/config"
	"softwify-backend/internal/models"
	"softwify-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

func newTestApp() (*fiber.App, *store.Store) {
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
	api.Post("/auth/login", auth.LoginHandler(cfg, st))

	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))
	protected.Get("/departments", ListDepartmentsHandler(st))

	adminRoutes := protected.Group("/admin")
	adminRoutes.Use(auth.RequireRole(models.RoleAdmin))
	adminRoutes.Post("/departments", CreateDepartmentHandler(st))
	adminRoutes.Put("/departments/:id", UpdateDepartmentHandler(st))
	adminRoutes.Delete("/departments/:id", DeleteDepartmentHandler(st))

	return app, st
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

func adminToken(t *testing.T, app *fiber.App) string {
	t.Helper()

	resp := doJSON(t, app, "POST", "/api/auth/login", "", fiber.Map{
		"email": "admin@softwify.com", "password": "x", "role": "admin",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("admin login: status %d", resp.StatusCode)
	}
	var body struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	return body.Token
}

func TestCreateDepartment(t *testing.T) {
	app, st := newTestApp()
	token := adminToken(t, app)

	resp := doJSON(t, app, "POST", "/api/admin/departments", token, fiber.Map{
		"name": "Legal", "description": "Legal Department",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}
	var dept models.Department
	if err := json.NewDecoder(resp.Body).Decode(&dept); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if dept.ID != 8 {
		t.Errorf("id = %d, want 8 (seed has 7 departments)", dept.ID)
	}
	if len(st.Departments()) != 8 {
		t.Errorf("department count = %d, want 8", len(st.Departments()))
	}
}

func TestUpdateDepartmentPartialMerge(t *testing.T) {
	app, _ := newTestApp()
	token := adminToken(t, app)

	resp := doJSON(t, app, "PUT", "/api/admin/departments/1", token, fiber.Map{
		"description": "Updated IT dept",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var dept models.Department
	if err := json.NewDecoder(resp.Body).Decode(&dept); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if dept.Description != "Updated IT dept" {
		t.Errorf("description = %q, want %q", dept.Description, "Updated IT dept")
	}
	if dept.Name != "IT" || dept.Employees != 4 {
		t.Errorf("untouched fields changed: %+v", dept)
	}
}

func TestUpdateDepartmentMissingID(t *testing.T) {
	app, _ := newTestApp()
	token := adminToken(t, app)

	resp := doJSON(t, app, "PUT", "/api/admin/departments/42", token, fiber.Map{"description": "x"})
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestDeleteDepartmentGuard(t *testing.T) {
	app, st := newTestApp()
	token := adminToken(t, app)

	// IT still has employees, the delete must be refused.
	resp := doJSON(t, app, "DELETE", "/api/admin/departments/1", token, nil)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("status = %d, want 409", resp.StatusCode)
	}
	if _, ok := st.DepartmentByID(1); !ok {
		t.Error("guarded delete removed the department")
	}
}

func TestDeleteDepartmentWithoutEmployees(t *testing.T) {
	app, st := newTestApp()
	token := adminToken(t, app)

	dept := st.AddDepartment(store.NewDepartment{Name: "Legal", Description: "Legal Department"})

	resp := doJSON(t, app, "DELETE", "/api/admin/departments/8", token, nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", resp.StatusCode)
	}
	if _, ok := st.DepartmentByID(dept.ID); ok {
		t.Error("department still present after delete")
	}
}

func TestDeleteDepartmentMissingIDIsSilent(t *testing.T) {
	app, st := newTestApp()
	token := adminToken(t, app)

	before := len(st.Departments())
	resp := doJSON(t, app, "DELETE", "/api/admin/departments/42", token, nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("status = %d, want 204 (stale deletes are not errors)", resp.StatusCode)
	}
	if len(st.Departments()) != before {
		t.Error("delete on missing id changed the collection")
	}
}
