package model

import (
	"time"

	"golang.org/x/exp/slices"
)

const (
	SubmissionInit     = "INIT"
	SubmissionStarted  = "STARTED"
	SubmissionTurnedIn = "TURNED_IN"
	SubmissionReviewed = "REVIEWED"
)

// submissionTransitions is the forward-only status chain. Any transition
// not listed here is rejected, never coerced.
var submissionTransitions = map[string][]string{
	SubmissionInit:     {SubmissionStarted},
	SubmissionStarted:  {SubmissionTurnedIn},
	SubmissionTurnedIn: {SubmissionReviewed},
}

type Submission struct {
	ID             uint `gorm:"primarykey"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	UserEmail      string `gorm:"index; not null"`
	ProjectID      uint   `gorm:"not null"`
	Status         string `gorm:"not null; default:'INIT'"`
	Repository     string
	ExpirationDate time.Time
	TurnInDate     time.Time
}

// CanTransitionTo checks the requested status change against the transition table
func (s Submission) CanTransitionTo(status string) bool {
	return slices.Contains(submissionTransitions[s.Status], status)
}
