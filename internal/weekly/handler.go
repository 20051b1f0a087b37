package weekly

import (
	"fmt"
	"strings"

	"softwify-backend/internal/auth"
	"softwify-backend/internal/models"
	"softwify-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

type SubmitWeeklyRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

type UpdateWeeklyStatusRequest struct {
	Status string `json:"status"`
}

func parseID(c *fiber.Ctx) (int, error) {
	var id int
	if _, err := fmt.Sscan(c.Params("id"), &id); err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "id is invalid")
	}
	return id, nil
}

func SubmitWeeklyHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		employeeID, err := auth.EmployeeIDFromContext(c)
		if err != nil {
			return err
		}

		emp, ok := st.EmployeeByID(employeeID)
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "Employee record not found")
		}

		var body SubmitWeeklyRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Title = strings.TrimSpace(body.Title)
		body.Description = strings.TrimSpace(body.Description)
		if body.Title == "" || body.Description == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Title and description are required")
		}

		priority := models.Priority(body.Priority)
		if !priority.IsValid() {
			return fiber.NewError(fiber.StatusBadRequest, "Priority must be 'low', 'medium' or 'high'")
		}

		req := st.SubmitWeeklyRequest(emp.ID, emp.Name, body.Title, body.Description, priority)
		return c.Status(fiber.StatusCreated).JSON(req)
	}
}

func MyWeeklyRequestsHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		employeeID, err := auth.EmployeeIDFromContext(c)
		if err != nil {
			return err
		}

		all := st.WeeklyRequests()
		res := make([]models.WeeklyRequest, 0, len(all))
		for _, req := range all {
			if req.EmployeeID == employeeID {
				res = append(res, req)
			}
		}
		return c.JSON(res)
	}
}

func ListWeeklyRequestsHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(st.WeeklyRequests())
	}
}

// UpdateWeeklyStatusHandler accepts reviewed or completed. There is no
// ordering guard, completed can be set on a request that was never
// reviewed.
func UpdateWeeklyStatusHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return err
		}

		var body UpdateWeeklyStatusRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		status := models.WeeklyStatus(body.Status)
		if !status.IsDecision() {
			return fiber.NewError(fiber.StatusBadRequest, "Status must be 'reviewed' or 'completed'")
		}

		req, ok := st.UpdateWeeklyStatus(id, status)
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "Weekly request not found")
		}

		return c.JSON(req)
	}
}
