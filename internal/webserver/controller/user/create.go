package user

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/ruizdev/challenger/internal/webserver/infrastructure"
)

// Create invites a new user: the account is created in its initial role,
// non-admin invitees get a submission assigned, and the invite token is
// emailed to the address.
func (u *Controller) Create(c *fiber.Ctx) error {
	if _, ok := u.sender.(*infrastructure.NoEmail); ok {
		return fiber.ErrNotFound
	}

	isAdmin := c.FormValue("admin") == "true"

	user, signedToken, err := u.users.Invite(c.FormValue("email"), isAdmin)
	if err != nil {
		return err
	}

	if err := u.sender.Send(user.Email, "You have been invited to a coding challenge", u.invitationEmail(signedToken)); err != nil {
		log.Printf("error sending invitation email: %v\n", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"email": user.Email,
		"role":  user.Role,
	})
}
