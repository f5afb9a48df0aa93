package user

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/ruizdev/challenger/internal/webserver/infrastructure"
)

// ResendInvite sends a fresh invitation to a user who has not registered
// yet, invalidating the tracked expiry of the previous one.
func (u *Controller) ResendInvite(c *fiber.Ctx) error {
	if _, ok := u.sender.(*infrastructure.NoEmail); ok {
		return fiber.ErrNotFound
	}

	isAdmin := c.FormValue("admin") == "true"
	email := c.FormValue("email")

	signedToken, err := u.users.ResendInvite(email, isAdmin)
	if err != nil {
		return err
	}

	if err := u.sender.Send(email, "You have been invited to a coding challenge", u.invitationEmail(signedToken)); err != nil {
		log.Printf("error sending invitation email: %v\n", err)
	}

	return c.JSON(fiber.Map{"message": "Invitation sent"})
}
