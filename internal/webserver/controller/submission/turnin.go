package submission

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ruizdev/challenger/internal/webserver/jwtclaimsreader"
)

// TurnIn hands in the authenticated applicant's challenge and triggers
// the project's workflow on the remote repository.
func (s *Controller) TurnIn(c *fiber.Ctx) error {
	session := jwtclaimsreader.SessionData(c)

	submission, err := s.submissions.TurnIn(session.Email)
	if err != nil {
		return err
	}
	return render(c, submission)
}
