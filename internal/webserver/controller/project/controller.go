package project

import (
	"github.com/ruizdev/challenger/internal/webserver/model"
)

type projectsRepository interface {
	List() ([]model.Project, error)
	Create(project *model.Project) error
}

type Controller struct {
	repository projectsRepository
}

func NewController(repository projectsRepository) *Controller {
	return &Controller{repository: repository}
}
