package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/ruizdev/challenger/internal/webserver/model"
)

const (
	kindInvite = "invite"
	kindReset  = "reset"
)

// InviteClaims is the payload of an invite token: who was invited and
// whether registering it yields an admin account.
type InviteClaims struct {
	Email   string `json:"email"`
	IsAdmin bool   `json:"admin"`
	Kind    string `json:"kind"`
	jwt.RegisteredClaims
}

// ResetClaims is the payload of a password reset token. ID identifies the
// token for single-use tracking.
type ResetClaims struct {
	Email string `json:"email"`
	Kind  string `json:"kind"`
	jwt.RegisteredClaims
}

// Service issues and decodes signed, time-bounded claims tokens over a
// process-wide secret. Expiry is enforced at decode time by the JWT
// library, independently of any application bookkeeping.
type Service struct {
	secret []byte
}

func NewService(secret []byte) *Service {
	return &Service{secret: secret}
}

func (s *Service) IssueInvite(email string, isAdmin bool, expiration time.Time) (string, error) {
	claims := &InviteClaims{
		Email:   email,
		IsAdmin: isAdmin,
		Kind:    kindInvite,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(time.Now().UTC()),
			ExpiresAt: jwt.NewNumericDate(expiration),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *Service) IssueReset(email string, expiration time.Time) (string, error) {
	claims := &ResetClaims{
		Email: email,
		Kind:  kindReset,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(time.Now().UTC()),
			ExpiresAt: jwt.NewNumericDate(expiration),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *Service) DecodeInvite(tokenString string) (*InviteClaims, error) {
	claims := &InviteClaims{}
	if err := s.decode(tokenString, claims); err != nil {
		return nil, err
	}
	if claims.Kind != kindInvite {
		return nil, fmt.Errorf("%w: not an invite token", model.ErrInvalidToken)
	}
	return claims, nil
}

func (s *Service) DecodeReset(tokenString string) (*ResetClaims, error) {
	claims := &ResetClaims{}
	if err := s.decode(tokenString, claims); err != nil {
		return nil, err
	}
	if claims.Kind != kindReset {
		return nil, fmt.Errorf("%w: not a reset token", model.ErrInvalidToken)
	}
	return claims, nil
}

func (s *Service) decode(tokenString string, claims jwt.Claims) error {
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return fmt.Errorf("%w: %v", model.ErrInvalidToken, err)
	}
	return nil
}
