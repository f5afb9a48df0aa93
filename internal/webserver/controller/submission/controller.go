package submission

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ruizdev/challenger/internal/webserver/model"
	"github.com/ruizdev/challenger/internal/webserver/service"
)

type Controller struct {
	submissions *service.Submissions
}

func NewController(submissions *service.Submissions) *Controller {
	return &Controller{submissions: submissions}
}

func render(c *fiber.Ctx, submission *model.Submission) error {
	return c.JSON(fiber.Map{
		"project_id":      submission.ProjectID,
		"status":          submission.Status,
		"repository":      submission.Repository,
		"expiration_date": submission.ExpirationDate,
		"turn_in_date":    submission.TurnInDate,
	})
}
