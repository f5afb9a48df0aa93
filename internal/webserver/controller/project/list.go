package project

import (
	"github.com/gofiber/fiber/v2"
)

// List returns all projects, active or not.
func (p *Controller) List(c *fiber.Ctx) error {
	projects, err := p.repository.List()
	if err != nil {
		return fiber.ErrInternalServerError
	}

	entries := make([]fiber.Map, 0, len(projects))
	for _, project := range projects {
		entries = append(entries, fiber.Map{
			"id":     project.ID,
			"name":   project.Name,
			"active": project.Active,
		})
	}
	return c.JSON(fiber.Map{"projects": entries})
}
