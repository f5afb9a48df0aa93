package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/spf13/afero"

	"github.com/ruizdev/challenger/internal/webserver"
	"github.com/ruizdev/challenger/internal/webserver/infrastructure"
)

var version string = "unknown"

func main() {
	var cfg Config

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("Error parsing configuration from environment variables: %s", err)
	}

	if cfg.DatabasePath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			log.Fatal("Error retrieving user home dir")
		}
		if err = os.MkdirAll(filepath.Join(homeDir, "challenger"), os.ModePerm); err != nil {
			log.Fatalf("Couldn't create %s, exiting", filepath.Join(homeDir, "challenger"))
		}
		cfg.DatabasePath = filepath.Join(homeDir, "challenger", "database.db")
	}

	run(cfg, afero.NewOsFs())
}

func run(cfg Config, appFs afero.Fs) {
	var sender webserver.Sender

	db := infrastructure.Connect(cfg.DatabasePath)

	sender = &infrastructure.NoEmail{}
	if cfg.SmtpServer != "" && cfg.SmtpUser != "" && cfg.SmtpPassword != "" {
		sender = &infrastructure.SMTP{
			Server:   cfg.SmtpServer,
			Port:     cfg.SmtpPort,
			User:     cfg.SmtpUser,
			Password: cfg.SmtpPassword,
		}
	}

	var repoHost webserver.RepoHost = infrastructure.NoRepoHost{}
	if cfg.RepoHostURL != "" {
		repoHost = infrastructure.NewGitHost(cfg.RepoHostURL, cfg.RepoHostToken)
	}

	webserverConfig := webserver.Config{
		Version:           version,
		JwtSecret:         []byte(cfg.JwtSecret),
		FQDN:              cfg.FQDN,
		MinPasswordLength: cfg.MinPasswordLength,
		SessionTimeout:    cfg.SessionTimeout,
		InvitationTimeout: cfg.InvitationTimeout,
		RecoveryTimeout:   cfg.RecoveryTimeout,
		ChallengeDuration: cfg.ChallengeDuration,
		TemplatesPath:     cfg.TemplatesPath,
	}

	controllers := webserver.SetupControllers(webserverConfig, db, sender, repoHost, appFs)
	app := webserver.New(webserverConfig, controllers)
	fmt.Printf("Challenger version %s started listening on port %s\n\n", version, cfg.Port)
	if err := app.Listen(fmt.Sprintf(":%s", cfg.Port)); err != nil {
		log.Fatal(err)
	}
}
