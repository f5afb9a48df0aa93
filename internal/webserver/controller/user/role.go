package user

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// ChangeRole updates a user's role. Transitions outside the allowed
// table are rejected.
func (u *Controller) ChangeRole(c *fiber.Ctx) error {
	role, err := strconv.Atoi(c.FormValue("role"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	user, err := u.users.ChangeRole(c.FormValue("email"), role)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"email": user.Email,
		"role":  user.Role,
	})
}
