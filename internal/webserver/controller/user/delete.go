package user

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ruizdev/challenger/internal/webserver/jwtclaimsreader"
)

// Delete removes a user, their submissions and any pending invitation.
// Users cannot delete their own account.
func (u *Controller) Delete(c *fiber.Ctx) error {
	session := jwtclaimsreader.SessionData(c)

	if err := u.users.Delete(session.Email, c.FormValue("email")); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
