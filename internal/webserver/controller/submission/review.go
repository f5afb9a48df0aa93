package submission

import (
	"github.com/gofiber/fiber/v2"
)

// Review marks a turned-in submission as reviewed.
func (s *Controller) Review(c *fiber.Ctx) error {
	submission, err := s.submissions.Review(c.FormValue("email"))
	if err != nil {
		return err
	}
	return render(c, submission)
}
