package department

import (
	"fmt"
	"strings"

	"softwify-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

type CreateDepartmentRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Employees   int    `json:"employees"`
}

type UpdateDepartmentRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Employees   *int    `json:"employees"`
}

func parseID(c *fiber.Ctx) (int, error) {
	var id int
	if _, err := fmt.Sscan(c.Params("id"), &id); err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "id is invalid")
	}
	return id, nil
}

func ListDepartmentsHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(st.Departments())
	}
}

func CreateDepartmentHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateDepartmentRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Department name cannot be empty")
		}

		dept := st.AddDepartment(store.NewDepartment{
			Name:        body.Name,
			Description: body.Description,
			Employees:   body.Employees,
		})

		return c.Status(fiber.StatusCreated).JSON(dept)
	}
}

func UpdateDepartmentHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return err
		}

		var body UpdateDepartmentRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Department name cannot be empty")
			}
			body.Name = &name
		}

		dept, ok := st.UpdateDepartment(id, store.DepartmentUpdate{
			Name:        body.Name,
			Description: body.Description,
			Employees:   body.Employees,
		})
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "Department not found")
		}

		return c.JSON(dept)
	}
}

// DeleteDepartmentHandler refuses to remove a department while employee
// records still reference its name. The store does not enforce this, the
// caller does.
func DeleteDepartmentHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return err
		}

		dept, ok := st.DepartmentByID(id)
		if ok {
			count := 0
			for _, emp := range st.Employees() {
				if emp.Department == dept.Name {
					count++
				}
			}
			if count > 0 {
				return fiber.NewError(fiber.StatusConflict, "Cannot delete department with existing employees. Please reassign employees first.")
			}
		}

		st.DeleteDepartment(id)
		return c.SendStatus(fiber.StatusNoContent)
	}
}
