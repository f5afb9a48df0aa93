package main

import "time"

type Config struct {
	Port              string        `env:"PORT" env-default:"3000"`
	DatabasePath      string        `env:"DB_PATH" env-default:""`
	JwtSecret         string        `env:"JWT_SECRET" env-required:"true"`
	FQDN              string        `env:"FQDN" env-default:"localhost:3000"`
	MinPasswordLength int           `env:"MIN_PASSWORD_LENGTH" env-default:"8"`
	SessionTimeout    time.Duration `env:"SESSION_TIMEOUT" env-default:"24h"`
	InvitationTimeout time.Duration `env:"INVITATION_TIMEOUT" env-default:"72h"`
	RecoveryTimeout   time.Duration `env:"RECOVERY_TIMEOUT" env-default:"2h"`
	ChallengeDuration time.Duration `env:"CHALLENGE_DURATION" env-default:"168h"`
	TemplatesPath     string        `env:"TEMPLATES_PATH" env-default:"templates"`
	SmtpServer        string        `env:"SMTP_SERVER"`
	SmtpPort          int           `env:"SMTP_PORT" env-default:"587"`
	SmtpUser          string        `env:"SMTP_USER"`
	SmtpPassword      string        `env:"SMTP_PASSWORD"`
	RepoHostURL       string        `env:"REPOHOST_URL"`
	RepoHostToken     string        `env:"REPOHOST_TOKEN"`
}
