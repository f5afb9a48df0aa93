package submission

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ruizdev/challenger/internal/webserver/jwtclaimsreader"
)

// Start begins the authenticated applicant's challenge, creating the
// remote repository seeded with the project's starter files.
func (s *Controller) Start(c *fiber.Ctx) error {
	session := jwtclaimsreader.SessionData(c)

	submission, err := s.submissions.Start(session.Email)
	if err != nil {
		return err
	}
	return render(c, submission)
}
