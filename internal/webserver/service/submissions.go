package service

import (
	"fmt"
	"log"
	"math/rand"
	"path"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/ruizdev/challenger/internal/webserver/model"
	"github.com/spf13/afero"
	"gorm.io/gorm"
)

// Submissions manages the submission lifecycle: assignment at invite
// time, challenge start, turn-in and review.
type Submissions struct {
	submissions *model.SubmissionRepository
	projects    *model.ProjectRepository
	repoHost    RepoHost
	appFs       afero.Fs
	cfg         Config
}

func NewSubmissions(db *gorm.DB, repoHost RepoHost, appFs afero.Fs, cfg Config) *Submissions {
	return &Submissions{
		submissions: &model.SubmissionRepository{DB: db},
		projects:    &model.ProjectRepository{DB: db},
		repoHost:    repoHost,
		appFs:       appFs,
		cfg:         cfg,
	}
}

// assign binds a new submission to a randomly chosen active project,
// within the caller's transaction. No active project is a hard failure
// which aborts the whole invite.
func (s *Submissions) assign(tx *gorm.DB, email string) error {
	projects, err := s.projects.Active()
	if err != nil {
		return err
	}
	if len(projects) == 0 {
		return model.ErrNoActiveProjects
	}

	chosen := projects[rand.Intn(len(projects))]
	submission := &model.Submission{
		UserEmail: email,
		ProjectID: chosen.ID,
		Status:    model.SubmissionInit,
	}
	return tx.Create(submission).Error
}

// ForUser returns the submission assigned to the given applicant.
func (s *Submissions) ForUser(email string) (*model.Submission, error) {
	submission, err := s.submissions.FindByUserEmail(email)
	if err != nil {
		return nil, err
	}
	if submission == nil {
		return nil, model.ErrResourceNotFound
	}
	return submission, nil
}

// Start moves a submission to STARTED, creates its remote repository and
// seeds it with the project's starter files.
func (s *Submissions) Start(email string) (*model.Submission, error) {
	submission, err := s.ForUser(email)
	if err != nil {
		return nil, err
	}
	if !submission.CanTransitionTo(model.SubmissionStarted) {
		return nil, model.ErrInvalidSubmissionState
	}

	project, err := s.projects.FindByID(submission.ProjectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, model.ErrResourceNotFound
	}

	repository := fmt.Sprintf("challenge-%d", submission.ID)
	if err := s.repoHost.CreateRepository(repository); err != nil {
		return nil, err
	}
	if err := s.pushStarterFiles(repository, project.TemplatePath); err != nil {
		return nil, err
	}

	submission.Status = model.SubmissionStarted
	submission.Repository = repository
	submission.ExpirationDate = time.Now().UTC().Add(s.cfg.ChallengeDuration)
	if err := s.submissions.Update(submission); err != nil {
		return nil, err
	}
	return submission, nil
}

// TurnIn moves a submission to TURNED_IN, stamps the turn-in date and
// triggers the project's workflow on the remote repository.
func (s *Submissions) TurnIn(email string) (*model.Submission, error) {
	submission, err := s.ForUser(email)
	if err != nil {
		return nil, err
	}
	if !submission.CanTransitionTo(model.SubmissionTurnedIn) {
		return nil, model.ErrInvalidSubmissionState
	}

	project, err := s.projects.FindByID(submission.ProjectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, model.ErrResourceNotFound
	}

	exists, err := s.repoHost.GetRepository(submission.Repository)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: repository %s no longer exists", model.ErrResourceNotFound, submission.Repository)
	}
	if err := s.repoHost.TriggerWorkflow(submission.Repository, project.Workflow); err != nil {
		return nil, err
	}

	submission.Status = model.SubmissionTurnedIn
	submission.TurnInDate = time.Now().UTC()
	if err := s.submissions.Update(submission); err != nil {
		return nil, err
	}
	return submission, nil
}

// Review moves a submission to REVIEWED. Only turned-in submissions can
// be reviewed.
func (s *Submissions) Review(email string) (*model.Submission, error) {
	submission, err := s.ForUser(email)
	if err != nil {
		return nil, err
	}
	if !submission.CanTransitionTo(model.SubmissionReviewed) {
		return nil, model.ErrInvalidSubmissionState
	}

	submission.Status = model.SubmissionReviewed
	if err := s.submissions.Update(submission); err != nil {
		return nil, err
	}
	return submission, nil
}

func (s *Submissions) allForUser(email string) ([]model.Submission, error) {
	return s.submissions.AllByUserEmail(email)
}

// cleanupRemote deletes the remote repositories left behind by removed
// submissions. Failures are logged, not propagated.
func (s *Submissions) cleanupRemote(submissions []model.Submission) {
	for _, submission := range submissions {
		if submission.Repository == "" {
			continue
		}
		if err := s.repoHost.DeleteRepository(submission.Repository); err != nil {
			log.Printf("error deleting repository %s: %s\n", submission.Repository, err)
		}
	}
}

func (s *Submissions) pushStarterFiles(repository, templatePath string) error {
	root := path.Join(s.cfg.TemplatesPath, templatePath)

	matches, err := doublestar.Glob(afero.NewIOFS(s.appFs), path.Join(root, "**/*"))
	if err != nil {
		return err
	}

	for _, match := range matches {
		info, err := s.appFs.Stat(match)
		if err != nil {
			return err
		}
		if info.IsDir() {
			continue
		}
		content, err := afero.ReadFile(s.appFs, match)
		if err != nil {
			return err
		}
		if err := s.repoHost.PushFile(repository, strings.TrimPrefix(match, root+"/"), content); err != nil {
			return err
		}
	}
	return nil
}
