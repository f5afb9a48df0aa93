package model_test

import (
	"testing"

	"github.com/ruizdev/challenger/internal/webserver/model"
)

func TestRoleTransitions(t *testing.T) {
	var cases = []struct {
		name    string
		from    int
		to      int
		allowed bool
	}{
		{"Invited user can become an applicant", model.RoleInit, model.RoleApplicant, true},
		{"Invited user can become an admin", model.RoleInit, model.RoleAdmin, true},
		{"Applicant cannot go back to invited", model.RoleApplicant, model.RoleInit, false},
		{"Applicant cannot be promoted to admin", model.RoleApplicant, model.RoleAdmin, false},
		{"Admin cannot be demoted to applicant", model.RoleAdmin, model.RoleApplicant, false},
		{"Admin cannot go back to invited", model.RoleAdmin, model.RoleInit, false},
	}

	for _, tcase := range cases {
		t.Run(tcase.name, func(t *testing.T) {
			user := model.User{Role: tcase.from}
			if user.CanChangeRoleTo(tcase.to) != tcase.allowed {
				t.Errorf("Expected transition %d -> %d allowed to be %t", tcase.from, tcase.to, tcase.allowed)
			}
		})
	}
}

func TestSubmissionTransitions(t *testing.T) {
	var cases = []struct {
		name    string
		from    string
		to      string
		allowed bool
	}{
		{"New submissions can be started", model.SubmissionInit, model.SubmissionStarted, true},
		{"Started submissions can be turned in", model.SubmissionStarted, model.SubmissionTurnedIn, true},
		{"Turned-in submissions can be reviewed", model.SubmissionTurnedIn, model.SubmissionReviewed, true},
		{"New submissions cannot be reviewed", model.SubmissionInit, model.SubmissionReviewed, false},
		{"New submissions cannot be turned in", model.SubmissionInit, model.SubmissionTurnedIn, false},
		{"Started submissions cannot be reviewed", model.SubmissionStarted, model.SubmissionReviewed, false},
		{"Reviewed submissions cannot be reopened", model.SubmissionReviewed, model.SubmissionStarted, false},
		{"Turned-in submissions cannot be restarted", model.SubmissionTurnedIn, model.SubmissionStarted, false},
	}

	for _, tcase := range cases {
		t.Run(tcase.name, func(t *testing.T) {
			submission := model.Submission{Status: tcase.from}
			if submission.CanTransitionTo(tcase.to) != tcase.allowed {
				t.Errorf("Expected transition %s -> %s allowed to be %t", tcase.from, tcase.to, tcase.allowed)
			}
		})
	}
}

func TestRegisteredIsDerivedFromRole(t *testing.T) {
	if (model.User{Role: model.RoleInit}).Registered() {
		t.Error("Invited users must not count as registered")
	}
	if !(model.User{Role: model.RoleApplicant}).Registered() {
		t.Error("Applicants must count as registered")
	}
	if !(model.User{Role: model.RoleAdmin}).Registered() {
		t.Error("Admins must count as registered")
	}
}
