package reports

import (
	"fmt"
	"math"
	"strings"
	"time"

	"softwify-backend/internal/auth"
	"softwify-backend/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

// formatAmount renders a dollar figure the way the dashboard always has:
// rounded to the nearest whole dollar with thousands separators, no cents.
func formatAmount(v float64) string {
	n := int64(math.Round(v))
	s := fmt.Sprintf("%d", n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

func buildCompanyReportText(st *store.Store) string {
	overview := buildOverview(st)
	rows := departmentRows(st)

	var b strings.Builder
	b.WriteString("SOFTWIFY - Company Report\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", overview.Date)

	b.WriteString("OVERVIEW\n")
	fmt.Fprintf(&b, "Total Employees: %d\n", overview.TotalEmployees)
	fmt.Fprintf(&b, "Total Departments: %d\n", overview.TotalDepartments)
	fmt.Fprintf(&b, "Total Monthly Salary: $%s\n", formatAmount(overview.TotalSalary))
	fmt.Fprintf(&b, "Average Salary: $%s\n", formatAmount(overview.AverageSalary))
	fmt.Fprintf(&b, "Pending Leaves: %d\n", overview.PendingLeaves)
	fmt.Fprintf(&b, "Pending Requests: %d\n\n", overview.PendingRequests)

	b.WriteString("DEPARTMENT BREAKDOWN\n")
	for _, row := range rows {
		fmt.Fprintf(&b, "%s: %d employees, $%s total salary\n", row.Name, row.Employees, formatAmount(row.TotalSalary))
	}
	return b.String()
}

func buildPersonalReportText(report PersonalReportResponse) string {
	var b strings.Builder
	b.WriteString("SOFTWIFY - Personal Employee Report\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", report.Date)

	b.WriteString("EMPLOYEE INFORMATION\n")
	fmt.Fprintf(&b, "Name: %s\n", report.Employee)
	fmt.Fprintf(&b, "Department: %s\n", report.Department)
	fmt.Fprintf(&b, "Role: %s\n\n", report.Role)

	b.WriteString("SALARY INFORMATION\n")
	fmt.Fprintf(&b, "Monthly Salary: $%s\n", formatAmount(report.MonthlySalary))
	fmt.Fprintf(&b, "Hourly Rate: $%v\n", report.HourlyRate)
	fmt.Fprintf(&b, "Hours Worked: %v\n\n", report.HoursWorked)

	b.WriteString("LEAVE SUMMARY\n")
	fmt.Fprintf(&b, "Total Leave Requests: %d\n", report.TotalLeaves)
	fmt.Fprintf(&b, "Approved Leaves: %d\n\n", report.ApprovedLeaves)

	b.WriteString("REQUEST SUMMARY\n")
	fmt.Fprintf(&b, "Total Weekly Requests: %d\n", report.TotalRequests)
	fmt.Fprintf(&b, "Completed Requests: %d\n\n", report.CompletedRequests)

	b.WriteString("RECENT LEAVE HISTORY\n")
	for _, leave := range report.RecentLeaves {
		fmt.Fprintf(&b, "%s to %s - %s - %s\n", leave.StartDate, leave.EndDate, leave.Status, leave.Reason)
	}
	return b.String()
}

func buildCompanyReportXLSX(st *store.Store) (*excelize.File, error) {
	overview := buildOverview(st)
	rows := departmentRows(st)

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	cells := [][]interface{}{
		{"SOFTWIFY - Company Report"},
		{"Generated", overview.Date},
		{},
		{"OVERVIEW"},
		{"Total Employees", overview.TotalEmployees},
		{"Total Departments", overview.TotalDepartments},
		{"Total Monthly Salary", overview.TotalSalary},
		{"Average Salary", overview.AverageSalary},
		{"Pending Leaves", overview.PendingLeaves},
		{"Pending Requests", overview.PendingRequests},
		{},
		{"DEPARTMENT BREAKDOWN"},
		{"Department", "Employees", "Total Salary", "Avg Salary"},
	}
	for _, row := range rows {
		cells = append(cells, []interface{}{row.Name, row.Employees, row.TotalSalary, row.AvgSalary})
	}

	for i, row := range cells {
		for j, value := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}
	return f, nil
}

// GET /api/admin/reports/export[?format=xlsx]
func ExportCompanyReportHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		date := time.Now().Format("2006-01-02")

		if c.Query("format") == "xlsx" {
			f, err := buildCompanyReportXLSX(st)
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Report could not be generated")
			}
			buf, err := f.WriteToBuffer()
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Report could not be generated")
			}
			c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
			c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="SOFTWIFY-Report-%s.xlsx"`, date))
			return c.Send(buf.Bytes())
		}

		c.Set(fiber.HeaderContentType, "text/csv")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="SOFTWIFY-Report-%s.csv"`, date))
		return c.SendString(buildCompanyReportText(st))
	}
}

// GET /api/reports/me/export
func ExportPersonalReportHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		employeeID, err := auth.EmployeeIDFromContext(c)
		if err != nil {
			return err
		}

		report, ok := buildPersonalReport(st, employeeID)
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "Employee record not found")
		}

		date := time.Now().Format("2006-01-02")
		c.Set(fiber.HeaderContentType, "text/csv")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s-Personal-Report-%s.csv"`, report.Employee, date))
		return c.SendString(buildPersonalReportText(report))
	}
}
