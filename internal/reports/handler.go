package reports

import (
	"time"

	"softwify-backend/internal/auth"
	"softwify-backend/internal/models"
	"softwify-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

type OverviewResponse struct {
	Date             string  `json:"date"`
	TotalEmployees   int     `json:"total_employees"`
	TotalDepartments int     `json:"total_departments"`
	TotalSalary      float64 `json:"total_salary"`
	AverageSalary    float64 `json:"average_salary"`
	HighestSalary    float64 `json:"highest_salary"`
	PendingLeaves    int     `json:"pending_leaves"`
	PendingRequests  int     `json:"pending_requests"`
	ActiveRequests   int     `json:"active_requests"`
}

type DepartmentRow struct {
	Name        string  `json:"name"`
	Employees   int     `json:"employees"`
	TotalSalary float64 `json:"total_salary"`
	AvgSalary   float64 `json:"avg_salary"`
}

type SalaryRange struct {
	Range string `json:"range"`
	Count int    `json:"count"`
}

type StatusCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type TrendPoint struct {
	Month     string  `json:"month"`
	Employees int     `json:"employees"`
	Salary    float64 `json:"salary"`
	Leaves    int     `json:"leaves"`
	Requests  int     `json:"requests"`
}

func totalSalary(employees []models.Employee) float64 {
	var total float64
	for _, emp := range employees {
		total += emp.TotalSalary
	}
	return total
}

func departmentRows(st *store.Store) []DepartmentRow {
	employees := st.Employees()
	departments := st.Departments()

	rows := make([]DepartmentRow, 0, len(departments))
	for _, dept := range departments {
		row := DepartmentRow{Name: dept.Name}
		for _, emp := range employees {
			if emp.Department == dept.Name {
				row.Employees++
				row.TotalSalary += emp.TotalSalary
			}
		}
		if row.Employees > 0 {
			row.AvgSalary = row.TotalSalary / float64(row.Employees)
		}
		rows = append(rows, row)
	}
	return rows
}

func countLeaves(requests []models.LeaveRequest, status models.LeaveStatus) int {
	count := 0
	for _, req := range requests {
		if req.Status == status {
			count++
		}
	}
	return count
}

func countWeekly(requests []models.WeeklyRequest, status models.WeeklyStatus) int {
	count := 0
	for _, req := range requests {
		if req.Status == status {
			count++
		}
	}
	return count
}

func buildOverview(st *store.Store) OverviewResponse {
	employees := st.Employees()
	leaves := st.LeaveRequests()
	weeklies := st.WeeklyRequests()

	total := totalSalary(employees)

	var average, highest float64
	if len(employees) > 0 {
		average = total / float64(len(employees))
	}
	for _, emp := range employees {
		if emp.TotalSalary > highest {
			highest = emp.TotalSalary
		}
	}

	active := 0
	for _, req := range weeklies {
		if req.Status != models.WeeklyCompleted {
			active++
		}
	}

	return OverviewResponse{
		Date:             time.Now().Format("1/2/2006"),
		TotalEmployees:   len(employees),
		TotalDepartments: len(st.Departments()),
		TotalSalary:      total,
		AverageSalary:    average,
		HighestSalary:    highest,
		PendingLeaves:    countLeaves(leaves, models.LeavePending),
		PendingRequests:  countWeekly(weeklies, models.WeeklyPending),
		ActiveRequests:   active,
	}
}

// GET /api/admin/reports/overview
func OverviewHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(buildOverview(st))
	}
}

// GET /api/admin/reports/departments
func DepartmentReportHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(departmentRows(st))
	}
}

// GET /api/admin/reports/salary-distribution
func SalaryDistributionHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		employees := st.Employees()

		ranges := []SalaryRange{
			{Range: "$0-5K"},
			{Range: "$5K-8K"},
			{Range: "$8K-10K"},
			{Range: "$10K-12K"},
			{Range: "$12K+"},
		}
		for _, emp := range employees {
			switch s := emp.TotalSalary; {
			case s <= 5000:
				ranges[0].Count++
			case s <= 8000:
				ranges[1].Count++
			case s <= 10000:
				ranges[2].Count++
			case s <= 12000:
				ranges[3].Count++
			default:
				ranges[4].Count++
			}
		}
		return c.JSON(ranges)
	}
}

// GET /api/admin/reports/leave-status
func LeaveStatusReportHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		leaves := st.LeaveRequests()
		return c.JSON([]StatusCount{
			{Name: "Pending", Value: countLeaves(leaves, models.LeavePending)},
			{Name: "Approved", Value: countLeaves(leaves, models.LeaveApproved)},
			{Name: "Rejected", Value: countLeaves(leaves, models.LeaveRejected)},
		})
	}
}

// GET /api/admin/reports/request-status
func RequestStatusReportHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		weeklies := st.WeeklyRequests()
		return c.JSON([]StatusCount{
			{Name: "Pending", Value: countWeekly(weeklies, models.WeeklyPending)},
			{Name: "Reviewed", Value: countWeekly(weeklies, models.WeeklyReviewed)},
			{Name: "Completed", Value: countWeekly(weeklies, models.WeeklyCompleted)},
		})
	}
}

// GET /api/admin/reports/trends
//
// Six synthetic data points for the dashboard line chart: only the last
// months reflect the live collections, the earlier ones scale the current
// totals the way the web dashboard always has.
func TrendsHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		total := totalSalary(st.Employees())
		leaves := len(st.LeaveRequests())
		requests := len(st.WeeklyRequests())

		return c.JSON([]TrendPoint{
			{Month: "Jan", Employees: 12, Salary: total * 0.8, Leaves: 3, Requests: 5},
			{Month: "Feb", Employees: 13, Salary: total * 0.85, Leaves: 5, Requests: 7},
			{Month: "Mar", Employees: 14, Salary: total * 0.9, Leaves: 4, Requests: 6},
			{Month: "Apr", Employees: 15, Salary: total * 0.95, Leaves: 6, Requests: 8},
			{Month: "May", Employees: 15, Salary: total, Leaves: leaves, Requests: 9},
			{Month: "Jun", Employees: 15, Salary: total, Leaves: leaves, Requests: requests},
		})
	}
}

type PersonalReportResponse struct {
	Date              string                `json:"date"`
	Employee          string                `json:"employee"`
	Department        string                `json:"department"`
	Role              string                `json:"role"`
	MonthlySalary     float64               `json:"monthly_salary"`
	HourlyRate        float64               `json:"hourly_rate"`
	HoursWorked       float64               `json:"hours_worked"`
	TotalLeaves       int                   `json:"total_leaves"`
	ApprovedLeaves    int                   `json:"approved_leaves"`
	TotalRequests     int                   `json:"total_requests"`
	CompletedRequests int                   `json:"completed_requests"`
	RecentLeaves      []models.LeaveRequest `json:"recent_leaves"`
	SalaryHistory     []SalaryHistoryPoint  `json:"salary_history"`
	Attendance        []AttendancePoint     `json:"attendance"`
}

type SalaryHistoryPoint struct {
	Month  string  `json:"month"`
	Salary float64 `json:"salary"`
	Hours  float64 `json:"hours"`
}

type AttendancePoint struct {
	Month   string `json:"month"`
	Present int    `json:"present"`
	Absent  int    `json:"absent"`
	Late    int    `json:"late"`
}

func buildPersonalReport(st *store.Store, employeeID int) (PersonalReportResponse, bool) {
	emp, ok := st.EmployeeByID(employeeID)
	if !ok {
		return PersonalReportResponse{}, false
	}

	var leaves []models.LeaveRequest
	for _, req := range st.LeaveRequests() {
		if req.EmployeeID == employeeID {
			leaves = append(leaves, req)
		}
	}
	var requests []models.WeeklyRequest
	for _, req := range st.WeeklyRequests() {
		if req.EmployeeID == employeeID {
			requests = append(requests, req)
		}
	}

	recent := leaves
	if len(recent) > 5 {
		recent = recent[:5]
	}
	if recent == nil {
		recent = []models.LeaveRequest{}
	}

	return PersonalReportResponse{
		Date:              time.Now().Format("1/2/2006"),
		Employee:          emp.Name,
		Department:        emp.Department,
		Role:              emp.Role,
		MonthlySalary:     emp.TotalSalary,
		HourlyRate:        emp.HourlyRate,
		HoursWorked:       emp.HoursWorked,
		TotalLeaves:       len(leaves),
		ApprovedLeaves:    countLeaves(leaves, models.LeaveApproved),
		TotalRequests:     len(requests),
		CompletedRequests: countWeekly(requests, models.WeeklyCompleted),
		RecentLeaves:      recent,
		SalaryHistory: []SalaryHistoryPoint{
			{Month: "Jan", Salary: emp.TotalSalary * 0.95, Hours: 152},
			{Month: "Feb", Salary: emp.TotalSalary * 0.96, Hours: 156},
			{Month: "Mar", Salary: emp.TotalSalary * 0.98, Hours: 160},
			{Month: "Apr", Salary: emp.TotalSalary * 0.99, Hours: 158},
			{Month: "May", Salary: emp.TotalSalary, Hours: 164},
			{Month: "Jun", Salary: emp.TotalSalary, Hours: emp.HoursWorked},
		},
		Attendance: []AttendancePoint{
			{Month: "Jan", Present: 20, Absent: 2, Late: 1},
			{Month: "Feb", Present: 18, Absent: 1, Late: 2},
			{Month: "Mar", Present: 22, Absent: 1, Late: 0},
			{Month: "Apr", Present: 21, Absent: 2, Late: 1},
			{Month: "May", Present: 23, Absent: 0, Late: 1},
			{Month: "Jun", Present: 22, Absent: 1, Late: 0},
		},
	}, true
}

// GET /api/reports/me
func PersonalReportHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		employeeID, err := auth.EmployeeIDFromContext(c)
		if err != nil {
			return err
		}

		report, ok := buildPersonalReport(st, employeeID)
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "Employee record not found")
		}
		return c.JSON(report)
	}
}
