package service

import "time"

// Config carries the knobs shared by the lifecycle managers.
type Config struct {
	MinPasswordLength int
	InvitationTimeout time.Duration
	RecoveryTimeout   time.Duration
	ChallengeDuration time.Duration
	TemplatesPath     string
}

// RepoHost is the remote repository-hosting API the submission flows talk
// to. It is an opaque collaborator; every operation just succeeds or fails.
type RepoHost interface {
	CreateRepository(name string) error
	PushFile(repository, path string, content []byte) error
	GetRepository(name string) (bool, error)
	DeleteRepository(name string) error
	TriggerWorkflow(repository, workflow string) error
}
