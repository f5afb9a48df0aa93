package model

import "errors"

var (
	ErrResourceNotFound       = errors.New("resource not found")
	ErrUserAlreadyExists      = errors.New("a user with this email address already exists")
	ErrUserAlreadyRegistered  = errors.New("user has already completed registration")
	ErrInvalidToken           = errors.New("invalid token")
	ErrTokenAlreadyUsed       = errors.New("token has already been used")
	ErrSelfDelete             = errors.New("users cannot delete their own account")
	ErrWeakPassword           = errors.New("password does not meet the minimum length")
	ErrInvalidEmail           = errors.New("incorrect email address")
	ErrInvalidRoleTransition  = errors.New("role transition not allowed")
	ErrInvalidSubmissionState = errors.New("submission is not in a state allowing this transition")
	ErrNoActiveProjects       = errors.New("no active projects available for assignment")
)
