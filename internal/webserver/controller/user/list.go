package user

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/ruizdev/challenger/internal/webserver/model"
)

// List returns a page of users with their derived registration status.
func (u *Controller) List(c *fiber.Ctx) error {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil {
		page = 1
	}

	users, err := u.users.List(page, model.ResultsPerPage, c.Query("filter"))
	if err != nil {
		return fiber.ErrInternalServerError
	}

	entries := make([]fiber.Map, 0, len(users.Hits()))
	for _, user := range users.Hits() {
		status := "UNREGISTERED"
		if user.Registered() {
			status = "REGISTERED"
		}
		entries = append(entries, fiber.Map{
			"email":  user.Email,
			"role":   user.Role,
			"status": status,
		})
	}

	return c.JSON(fiber.Map{
		"users":       entries,
		"page":        users.Page(),
		"total_pages": users.TotalPages(),
		"total":       users.TotalHits(),
	})
}
