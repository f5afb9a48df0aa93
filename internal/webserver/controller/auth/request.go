package auth

import (
	"fmt"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/ruizdev/challenger/internal/webserver/infrastructure"
	"github.com/ruizdev/challenger/internal/webserver/model"
)

// Request emails a password recovery link to the given address. Unknown
// addresses get the same response as known ones.
func (a *Controller) Request(c *fiber.Ctx) error {
	if _, ok := a.sender.(*infrastructure.NoEmail); ok {
		return fiber.ErrNotFound
	}

	email := c.FormValue("email")
	if !model.ValidEmail(email) {
		return model.ErrInvalidEmail
	}

	signedToken, err := a.users.RequestReset(email)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	if signedToken != "" {
		recoveryLink := fmt.Sprintf("%s/reset-password?token=%s", a.config.FQDN, signedToken)
		body := fmt.Sprintf(
			"<p>Someone requested a password reset for this address. Follow <a href=\"%s\">this link</a> to choose a new password. The link expires in %s hours.</p>",
			recoveryLink,
			strconv.FormatFloat(a.config.RecoveryTimeout.Hours(), 'f', -1, 64),
		)
		if err := a.sender.Send(email, "Password recovery request", body); err != nil {
			log.Printf("error sending recovery email: %v\n", err)
		}
	}

	return c.JSON(fiber.Map{"message": "If the address has an account, a recovery email is on its way"})
}
