package auth

import (
	"github.com/gofiber/fiber/v2"
)

// SignOut removes the session cookie.
func (a *Controller) SignOut(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "challenger",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Secure:   false,
		HTTPOnly: true,
	})

	return c.SendStatus(fiber.StatusNoContent)
}
