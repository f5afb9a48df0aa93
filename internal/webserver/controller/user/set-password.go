package user

import (
	"github.com/gofiber/fiber/v2"
)

// SetPassword replaces a user's password and role in one update.
func (u *Controller) SetPassword(c *fiber.Ctx) error {
	isAdmin := c.FormValue("admin") == "true"

	if err := u.users.SetPassword(c.FormValue("email"), c.FormValue("password"), isAdmin); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
