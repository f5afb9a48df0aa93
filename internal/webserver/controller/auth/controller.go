package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/ruizdev/challenger/internal/webserver/model"
	"github.com/ruizdev/challenger/internal/webserver/service"
)

type Sender interface {
	From() string
	Send(address, subject, body string) error
}

type Config struct {
	Secret          []byte
	SessionTimeout  time.Duration
	RecoveryTimeout time.Duration
	FQDN            string
}

type Controller struct {
	users  *service.Users
	sender Sender
	config Config
}

func NewController(users *service.Users, sender Sender, cfg Config) *Controller {
	return &Controller{
		users:  users,
		sender: sender,
		config: cfg,
	}
}

// GenerateToken mints the session JWT handed out as a cookie after a
// successful login or registration.
func GenerateToken(user *model.User, expiration time.Time, secret []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userdata": map[string]interface{}{
			"ID":    user.ID,
			"Uuid":  user.Uuid,
			"Email": user.Email,
			"Role":  user.Role,
		},
		"exp": jwt.NewNumericDate(expiration),
	},
	)

	return token.SignedString(secret)
}

// SessionCookie wraps a signed session token in the cookie the jwtware
// middleware looks up.
func SessionCookie(signedToken string, expiration time.Time) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     "challenger",
		Value:    signedToken,
		Path:     "/",
		Expires:  expiration,
		Secure:   false,
		HTTPOnly: true,
	}
}
