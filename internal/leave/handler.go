package leave

import (
	"fmt"
	"strings"
	"time"

	"softwify-backend/internal/auth"
	"softwify-backend/internal/models"
	"softwify-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

type SubmitLeaveRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

type UpdateLeaveStatusRequest struct {
	Status string `json:"status"`
}

const dateLayout = "2006-01-02"

func parseID(c *fiber.Ctx) (int, error) {
	var id int
	if _, err := fmt.Sscan(c.Params("id"), &id); err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "id is invalid")
	}
	return id, nil
}

// SubmitLeaveHandler validates the form fields and submits on behalf of the
// logged in employee. The employee name travels into the request as a
// snapshot; the store does not look it up again.
func SubmitLeaveHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		employeeID, err := auth.EmployeeIDFromContext(c)
		if err != nil {
			return err
		}

		emp, ok := st.EmployeeByID(employeeID)
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "Employee record not found")
		}

		var body SubmitLeaveRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Reason = strings.TrimSpace(body.Reason)
		if body.StartDate == "" || body.EndDate == "" || body.Reason == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Start date, end date and reason are required")
		}

		start, err := time.Parse(dateLayout, body.StartDate)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Start date is invalid")
		}
		end, err := time.Parse(dateLayout, body.EndDate)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "End date is invalid")
		}
		if end.Before(start) {
			return fiber.NewError(fiber.StatusBadRequest, "End date cannot be before start date")
		}
		today, _ := time.Parse(dateLayout, time.Now().Format(dateLayout))
		if start.Before(today) {
			return fiber.NewError(fiber.StatusBadRequest, "Start date cannot be in the past")
		}

		req := st.SubmitLeaveRequest(emp.ID, emp.Name, body.StartDate, body.EndDate, body.Reason)
		return c.Status(fiber.StatusCreated).JSON(req)
	}
}

// MyLeaveRequestsHandler lists the requests of the logged in employee.
func MyLeaveRequestsHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		employeeID, err := auth.EmployeeIDFromContext(c)
		if err != nil {
			return err
		}

		all := st.LeaveRequests()
		res := make([]models.LeaveRequest, 0, len(all))
		for _, req := range all {
			if req.EmployeeID == employeeID {
				res = append(res, req)
			}
		}
		return c.JSON(res)
	}
}

func ListLeaveRequestsHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(st.LeaveRequests())
	}
}

// UpdateLeaveStatusHandler sets the triage decision. Only approved and
// rejected are accepted here; the overwrite itself is unconditional, a
// second decision simply replaces the first.
func UpdateLeaveStatusHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return err
		}

		var body UpdateLeaveStatusRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		status := models.LeaveStatus(body.Status)
		if !status.IsDecision() {
			return fiber.NewError(fiber.StatusBadRequest, "Status must be 'approved' or 'rejected'")
		}

		req, ok := st.UpdateLeaveStatus(id, status)
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "Leave request not found")
		}

		return c.JSON(req)
	}
}
