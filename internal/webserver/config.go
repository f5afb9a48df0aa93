package webserver

import "time"

type Config struct {
	Version           string
	JwtSecret         []byte
	FQDN              string
	MinPasswordLength int
	SessionTimeout    time.Duration
	InvitationTimeout time.Duration
	RecoveryTimeout   time.Duration
	ChallengeDuration time.Duration
	TemplatesPath     string
}
