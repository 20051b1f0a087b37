package main

import (
	"log"
	"strings"

	"softwify-backend/internal/auth"
	"softwify-backend/internal/config"
	"softwify-backend/internal/dashboard"
	"softwify-backend/internal/department"
	"softwify-backend/internal/employee"
	"softwify-backend/internal/leave"
	"softwify-backend/internal/models"
	"softwify-backend/internal/reports"
	"softwify-backend/internal/store"
	"softwify-backend/internal/weekly"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	st := store.NewSeeded()

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Unexpected server error",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/login", auth.LoginHandler(cfg, st))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Post("/auth/logout", auth.LogoutHandler(st))
	protected.Get("/auth/me", auth.MeHandler(st))

	// Shared reads
	protected.Get("/employees", employee.ListEmployeesHandler(st))
	protected.Get("/employees/me", employee.MyEmployeeHandler(st))
	protected.Get("/departments", department.ListDepartmentsHandler(st))

	// Employee self-service
	protected.Post("/leave-requests", leave.SubmitLeaveHandler(st))
	protected.Get("/leave-requests/me", leave.MyLeaveRequestsHandler(st))
	protected.Post("/weekly-requests", weekly.SubmitWeeklyHandler(st))
	protected.Get("/weekly-requests/me", weekly.MyWeeklyRequestsHandler(st))
	protected.Get("/dashboard/me", dashboard.EmployeeStatsHandler(st))
	protected.Get("/reports/me", reports.PersonalReportHandler(st))
	protected.Get("/reports/me/export", reports.ExportPersonalReportHandler(st))

	// Admin routes
	adminRoutes := protected.Group("/admin")
	adminRoutes.Use(auth.RequireRole(models.RoleAdmin))

	// Employee management
	adminRoutes.Post("/employees", employee.CreateEmployeeHandler(st))
	adminRoutes.Put("/employees/:id", employee.UpdateEmployeeHandler(st))
	adminRoutes.Delete("/employees/:id", employee.DeleteEmployeeHandler(st))

	// Department management
	adminRoutes.Post("/departments", department.CreateDepartmentHandler(st))
	adminRoutes.Put("/departments/:id", department.UpdateDepartmentHandler(st))
	adminRoutes.Delete("/departments/:id", department.DeleteDepartmentHandler(st))

	// Leave triage
	adminRoutes.Get("/leave-requests", leave.ListLeaveRequestsHandler(st))
	adminRoutes.Put("/leave-requests/:id/status", leave.UpdateLeaveStatusHandler(st))

	// Weekly request triage
	adminRoutes.Get("/weekly-requests", weekly.ListWeeklyRequestsHandler(st))
	adminRoutes.Put("/weekly-requests/:id/status", weekly.UpdateWeeklyStatusHandler(st))

	// Dashboard & reporting
	adminRoutes.Get("/dashboard/stats", dashboard.AdminStatsHandler(st))
	adminRoutes.Get("/reports/overview", reports.OverviewHandler(st))
	adminRoutes.Get("/reports/departments", reports.DepartmentReportHandler(st))
	adminRoutes.Get("/reports/salary-distribution", reports.SalaryDistributionHandler(st))
	adminRoutes.Get("/reports/leave-status", reports.LeaveStatusReportHandler(st))
	adminRoutes.Get("/reports/request-status", reports.RequestStatusReportHandler(st))
	adminRoutes.Get("/reports/trends", reports.TrendsHandler(st))
	adminRoutes.Get("/reports/export", reports.ExportCompanyReportHandler(st))

	log.Println("Server running on port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
