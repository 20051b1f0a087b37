package employee

import (
	"fmt"
	"strings"

	"softwify-backend/internal/auth"
	"softwify-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

type CreateEmployeeRequest struct {
	Name        string  `json:"name"`
	Department  string  `json:"department"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	Address     string  `json:"address"`
	Role        string  `json:"role"`
	HourlyRate  float64 `json:"hourly_rate"`
	HoursWorked float64 `json:"hours_worked"`
}

type UpdateEmployeeRequest struct {
	Name        *string  `json:"name"`
	Department  *string  `json:"department"`
	Email       *string  `json:"email"`
	Phone       *string  `json:"phone"`
	Address     *string  `json:"address"`
	Role        *string  `json:"role"`
	HourlyRate  *float64 `json:"hourly_rate"`
	HoursWorked *float64 `json:"hours_worked"`
}

func parseID(c *fiber.Ctx) (int, error) {
	var id int
	if _, err := fmt.Sscan(c.Params("id"), &id); err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "id is invalid")
	}
	return id, nil
}

func ListEmployeesHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(st.Employees())
	}
}

// MyEmployeeHandler returns the roster record behind the logged in account.
func MyEmployeeHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		employeeID, err := auth.EmployeeIDFromContext(c)
		if err != nil {
			return err
		}

		emp, ok := st.EmployeeByID(employeeID)
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "Employee record not found")
		}
		return c.JSON(emp)
	}
}

func CreateEmployeeHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateEmployeeRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Name = strings.TrimSpace(body.Name)
		body.Email = strings.TrimSpace(strings.ToLower(body.Email))

		if body.Name == "" || body.Department == "" || body.Email == "" || body.Role == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Name, department, email and role are required")
		}
		if body.HourlyRate < 0 || body.HoursWorked < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Hourly rate and hours worked cannot be negative")
		}

		emp := st.AddEmployee(store.NewEmployee{
			Name:        body.Name,
			Department:  body.Department,
			Email:       body.Email,
			Phone:       body.Phone,
			Address:     body.Address,
			Role:        body.Role,
			HourlyRate:  body.HourlyRate,
			HoursWorked: body.HoursWorked,
		})

		return c.Status(fiber.StatusCreated).JSON(emp)
	}
}

func UpdateEmployeeHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return err
		}

		var body UpdateEmployeeRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Name cannot be empty")
			}
			body.Name = &name
		}
		if body.HourlyRate != nil && *body.HourlyRate < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Hourly rate cannot be negative")
		}
		if body.HoursWorked != nil && *body.HoursWorked < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Hours worked cannot be negative")
		}

		emp, ok := st.UpdateEmployee(id, store.EmployeeUpdate{
			Name:        body.Name,
			Department:  body.Department,
			Email:       body.Email,
			Phone:       body.Phone,
			Address:     body.Address,
			Role:        body.Role,
			HourlyRate:  body.HourlyRate,
			HoursWorked: body.HoursWorked,
		})
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "Employee not found")
		}

		return c.JSON(emp)
	}
}

// DeleteEmployeeHandler answers 204 whether or not the id existed; a stale
// delete from the UI is not an error. Requests referencing the employee are
// kept.
func DeleteEmployeeHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return err
		}

		st.DeleteEmployee(id)
		return c.SendStatus(fiber.StatusNoContent)
	}
}
