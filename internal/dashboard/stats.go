package dashboard

import (
	"softwify-backend/internal/auth"
	"softwify-backend/internal/models"
	"softwify-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

type DepartmentSlice struct {
	Name      string  `json:"name"`
	Employees int     `json:"employees"`
	Salary    float64 `json:"salary"`
}

type AdminStatsResponse struct {
	TotalEmployees   int               `json:"total_employees"`
	TotalDepartments int               `json:"total_departments"`
	TotalSalary      float64           `json:"total_salary"`
	PendingLeaves    int               `json:"pending_leaves"`
	PendingRequests  int               `json:"pending_requests"`
	Departments      []DepartmentSlice `json:"departments"`
}

type EmployeeStatsResponse struct {
	Name          string  `json:"name"`
	Role          string  `json:"role"`
	Department    string  `json:"department"`
	MonthlySalary float64 `json:"monthly_salary"`
	HoursWorked   float64 `json:"hours_worked"`
	TotalLeaves   int     `json:"total_leaves"`
	TotalRequests int     `json:"total_requests"`
}

// GET /api/admin/dashboard/stats
func AdminStatsHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		employees := st.Employees()
		departments := st.Departments()

		var totalSalary float64
		for _, emp := range employees {
			totalSalary += emp.TotalSalary
		}

		pendingLeaves := 0
		for _, req := range st.LeaveRequests() {
			if req.Status == models.LeavePending {
				pendingLeaves++
			}
		}
		pendingRequests := 0
		for _, req := range st.WeeklyRequests() {
			if req.Status == models.WeeklyPending {
				pendingRequests++
			}
		}

		slices := make([]DepartmentSlice, 0, len(departments))
		for _, dept := range departments {
			slice := DepartmentSlice{Name: dept.Name}
			for _, emp := range employees {
				if emp.Department == dept.Name {
					slice.Employees++
					slice.Salary += emp.TotalSalary
				}
			}
			slices = append(slices, slice)
		}

		return c.JSON(AdminStatsResponse{
			TotalEmployees:   len(employees),
			TotalDepartments: len(departments),
			TotalSalary:      totalSalary,
			PendingLeaves:    pendingLeaves,
			PendingRequests:  pendingRequests,
			Departments:      slices,
		})
	}
}

// GET /api/dashboard/me
func EmployeeStatsHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		employeeID, err := auth.EmployeeIDFromContext(c)
		if err != nil {
			return err
		}

		emp, ok := st.EmployeeByID(employeeID)
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "Employee record not found")
		}

		totalLeaves := 0
		for _, req := range st.LeaveRequests() {
			if req.EmployeeID == employeeID {
				totalLeaves++
			}
		}
		totalRequests := 0
		for _, req := range st.WeeklyRequests() {
			if req.EmployeeID == employeeID {
				totalRequests++
			}
		}

		return c.JSON(EmployeeStatsResponse{
			Name:          emp.Name,
			Role:          emp.Role,
			Department:    emp.Department,
			MonthlySalary: emp.TotalSalary,
			HoursWorked:   emp.HoursWorked,
			TotalLeaves:   totalLeaves,
			TotalRequests: totalRequests,
		})
	}
}
