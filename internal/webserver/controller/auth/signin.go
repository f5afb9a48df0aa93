package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// SignIn checks the submitted credentials and hands out a session JWT.
func (a *Controller) SignIn(c *fiber.Ctx) error {
	user, err := a.users.Authenticate(c.FormValue("email"), c.FormValue("password"))
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if user == nil {
		return fiber.NewError(fiber.StatusUnauthorized, "wrong email or password")
	}

	expiration := time.Now().Add(a.config.SessionTimeout)
	signedToken, err := GenerateToken(user, expiration, a.config.Secret)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	c.Cookie(SessionCookie(signedToken, expiration))

	return c.JSON(fiber.Map{
		"email": user.Email,
		"role":  user.Role,
	})
}
