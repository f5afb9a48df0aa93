package webserver

import (
	"github.com/ruizdev/challenger/internal/webserver/controller/auth"
	"github.com/ruizdev/challenger/internal/webserver/controller/project"
	"github.com/ruizdev/challenger/internal/webserver/controller/submission"
	"github.com/ruizdev/challenger/internal/webserver/controller/user"
	"github.com/ruizdev/challenger/internal/webserver/guard"
	"github.com/ruizdev/challenger/internal/webserver/model"
	"github.com/ruizdev/challenger/internal/webserver/service"
	"github.com/ruizdev/challenger/internal/webserver/token"
	"github.com/spf13/afero"
	"gorm.io/gorm"
)

type Sender interface {
	From() string
	Send(address, subject, body string) error
}

// RepoHost mirrors the remote repository-hosting operations the
// submission flows need.
type RepoHost interface {
	CreateRepository(name string) error
	PushFile(repository, path string, content []byte) error
	GetRepository(name string) (bool, error)
	DeleteRepository(name string) error
	TriggerWorkflow(repository, workflow string) error
}

type Controllers struct {
	Auth        *auth.Controller
	Users       *user.Controller
	Submissions *submission.Controller
	Projects    *project.Controller
}

func SetupControllers(cfg Config, db *gorm.DB, sender Sender, repoHost RepoHost, appFs afero.Fs) Controllers {
	serviceCfg := service.Config{
		MinPasswordLength: cfg.MinPasswordLength,
		InvitationTimeout: cfg.InvitationTimeout,
		RecoveryTimeout:   cfg.RecoveryTimeout,
		ChallengeDuration: cfg.ChallengeDuration,
		TemplatesPath:     cfg.TemplatesPath,
	}

	tokens := token.NewService(cfg.JwtSecret)
	resetGuard := guard.NewResetGuard()
	submissions := service.NewSubmissions(db, repoHost, appFs, serviceCfg)
	users := service.NewUsers(db, tokens, resetGuard, submissions, serviceCfg)

	authController := auth.NewController(users, sender, auth.Config{
		Secret:          cfg.JwtSecret,
		SessionTimeout:  cfg.SessionTimeout,
		RecoveryTimeout: cfg.RecoveryTimeout,
		FQDN:            cfg.FQDN,
	})

	usersController := user.NewController(users, sender, user.Config{
		Secret:            cfg.JwtSecret,
		SessionTimeout:    cfg.SessionTimeout,
		InvitationTimeout: cfg.InvitationTimeout,
		FQDN:              cfg.FQDN,
	})

	submissionsController := submission.NewController(submissions)
	projectsController := project.NewController(&model.ProjectRepository{DB: db})

	return Controllers{
		Auth:        authController,
		Users:       usersController,
		Submissions: submissionsController,
		Projects:    projectsController,
	}
}
