package user

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/ruizdev/challenger/internal/webserver/controller/auth"
)

// Register completes an invitation: the invite token is validated, the
// account is promoted to its final role and a session is established for
// the new user.
func (u *Controller) Register(c *fiber.Ctx) error {
	user, err := u.users.Register(c.FormValue("token"), c.FormValue("password"))
	if err != nil {
		return err
	}

	expiration := time.Now().Add(u.config.SessionTimeout)
	signedToken, err := auth.GenerateToken(user, expiration, u.config.Secret)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	c.Cookie(auth.SessionCookie(signedToken, expiration))

	return c.JSON(fiber.Map{
		"email": user.Email,
		"role":  user.Role,
	})
}
