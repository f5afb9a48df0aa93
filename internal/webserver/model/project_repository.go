package model

import (
	"errors"
	"log"

	"gorm.io/gorm"
)

type ProjectRepository struct {
	DB *gorm.DB
}

func (p *ProjectRepository) Active() ([]Project, error) {
	var projects []Project

	result := p.DB.Where("active = ?", true).Find(&projects)
	if result.Error != nil {
		log.Printf("error listing active projects: %s\n", result.Error)
		return nil, result.Error
	}
	return projects, nil
}

func (p *ProjectRepository) List() ([]Project, error) {
	var projects []Project

	result := p.DB.Order("name ASC").Find(&projects)
	if result.Error != nil {
		log.Printf("error listing projects: %s\n", result.Error)
		return nil, result.Error
	}
	return projects, nil
}

func (p *ProjectRepository) FindByID(id uint) (*Project, error) {
	var project Project

	result := p.DB.First(&project, id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &project, result.Error
}

func (p *ProjectRepository) Create(project *Project) error {
	if result := p.DB.Create(project); result.Error != nil {
		log.Printf("error creating project: %s\n", result.Error)
		return result.Error
	}
	return nil
}
