package auth

import (
	"strings"

	"softwify-backend/internal/config"
	"softwify-backend/internal/models"
	"softwify-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// LoginHandler matches the request against the seed account table by email
// and role. The password travels in the body for form compatibility but is
// not checked; there is no server-side credential store to check it against.
func LoginHandler(cfg *config.Config, st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))

		role := models.UserRole(body.Role)
		if body.Email == "" || !role.IsValid() {
			return fiber.NewError(fiber.StatusBadRequest, "Email and a valid role are required")
		}

		user, ok := st.Login(body.Email, body.Password, role)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
		}

		token, err := GenerateToken(cfg.JWTSecret, &user)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Token could not be generated")
		}

		return c.JSON(fiber.Map{
			"token": token,
			"user": fiber.Map{
				"id":          user.ID,
				"name":        user.Name,
				"email":       user.Email,
				"role":        user.Role,
				"employee_id": user.EmployeeID,
			},
		})
	}
}

// LogoutHandler clears the store session. Calling it while already logged
// out is fine.
func LogoutHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		st.Logout()
		return c.SendStatus(fiber.StatusNoContent)
	}
}

func MeHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userIDVal := c.Locals(CtxUserIDKey)

		if userID, ok := userIDVal.(int); ok {
			if user, found := st.UserByID(userID); found {
				return c.JSON(fiber.Map{
					"user_id":     user.ID,
					"name":        user.Name,
					"email":       user.Email,
					"role":        user.Role,
					"employee_id": user.EmployeeID,
				})
			}
		}

		// Fallback: answer from the token claims if the account table has
		// no matching row.
		return c.JSON(fiber.Map{
			"user_id":     userIDVal,
			"role":        c.Locals(CtxUserRoleKey),
			"employee_id": c.Locals(CtxEmployeeIDKey),
		})
	}
}
