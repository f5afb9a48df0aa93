package model

import (
	"crypto/sha256"
	"net/mail"
	"time"

	"golang.org/x/exp/slices"
)

const (
	// RoleInit marks a user who has been invited but not yet registered
	RoleInit = iota + 1
	RoleApplicant
	RoleAdmin
)

// roleTransitions holds the only role changes the system accepts. Invited
// accounts move forward to applicant or admin once, never back.
var roleTransitions = map[int][]int{
	RoleInit: {RoleApplicant, RoleAdmin},
}

type User struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Uuid      string `gorm:"uniqueIndex"`
	Email     string `gorm:"uniqueIndex; not null"`
	Password  string
	Role      int
}

// Registered tells whether the user completed registration. It is derived
// from the role, there is no stored flag.
func (u User) Registered() bool {
	return u.Role == RoleApplicant || u.Role == RoleAdmin
}

// CanChangeRoleTo checks the requested role change against the transition table
func (u User) CanChangeRoleTo(role int) bool {
	return slices.Contains(roleTransitions[u.Role], role)
}

func ValidEmail(email string) bool {
	if len(email) > 100 {
		return false
	}
	_, err := mail.ParseAddress(email)
	return err == nil
}

func Hash(s string) string {
	h := sha256.New()
	h.Write([]byte(s))
	return string(h.Sum(nil))
}
