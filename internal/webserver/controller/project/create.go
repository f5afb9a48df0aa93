package project

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ruizdev/challenger/internal/webserver/model"
)

// Create registers a new project eligible for assignment.
func (p *Controller) Create(c *fiber.Ctx) error {
	if c.FormValue("name") == "" {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "name cannot be empty")
	}

	project := model.Project{
		Name:         c.FormValue("name"),
		TemplatePath: c.FormValue("template_path"),
		Active:       c.FormValue("active") != "false",
	}
	if workflow := c.FormValue("workflow"); workflow != "" {
		project.Workflow = workflow
	}

	if err := p.repository.Create(&project); err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":     project.ID,
		"name":   project.Name,
		"active": project.Active,
	})
}
