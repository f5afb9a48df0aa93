package submission

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ruizdev/challenger/internal/webserver/jwtclaimsreader"
)

// Show returns the authenticated applicant's submission.
func (s *Controller) Show(c *fiber.Ctx) error {
	session := jwtclaimsreader.SessionData(c)

	submission, err := s.submissions.ForUser(session.Email)
	if err != nil {
		return err
	}
	return render(c, submission)
}
