package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ruizdev/challenger/internal/webserver/infrastructure"
)

// ResetPassword consumes a recovery token and stores the new password.
func (a *Controller) ResetPassword(c *fiber.Ctx) error {
	if _, ok := a.sender.(*infrastructure.NoEmail); ok {
		return fiber.ErrNotFound
	}

	if err := a.users.ResetPassword(c.FormValue("token"), c.FormValue("password")); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Password changed successfully"})
}
