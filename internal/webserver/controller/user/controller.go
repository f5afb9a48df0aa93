package user

import (
	"fmt"
	"strconv"
	"time"

	"github.com/ruizdev/challenger/internal/webserver/service"
)

type Sender interface {
	From() string
	Send(address, subject, body string) error
}

type Config struct {
	Secret            []byte
	SessionTimeout    time.Duration
	InvitationTimeout time.Duration
	FQDN              string
}

type Controller struct {
	users  *service.Users
	sender Sender
	config Config
}

// NewController returns a new instance of the users controller
func NewController(users *service.Users, sender Sender, cfg Config) *Controller {
	return &Controller{
		users:  users,
		sender: sender,
		config: cfg,
	}
}

func (u *Controller) invitationEmail(signedToken string) string {
	invitationLink := fmt.Sprintf("%s/register?token=%s", u.config.FQDN, signedToken)

	return fmt.Sprintf(
		"<p>You have been invited to take a coding challenge. Follow <a href=\"%s\">this link</a> to register. The invitation expires in %s hours.</p>",
		invitationLink,
		strconv.FormatFloat(u.config.InvitationTimeout.Hours(), 'f', -1, 64),
	)
}
