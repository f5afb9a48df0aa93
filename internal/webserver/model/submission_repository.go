package model

import (
	"errors"
	"log"

	"gorm.io/gorm"
)

type SubmissionRepository struct {
	DB *gorm.DB
}

func (s *SubmissionRepository) FindByUserEmail(email string) (*Submission, error) {
	var submission Submission

	result := s.DB.Where("user_email = ?", email).First(&submission)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &submission, result.Error
}

func (s *SubmissionRepository) AllByUserEmail(email string) ([]Submission, error) {
	var submissions []Submission

	result := s.DB.Where("user_email = ?", email).Find(&submissions)
	if result.Error != nil {
		log.Printf("error listing submissions: %s\n", result.Error)
		return nil, result.Error
	}
	return submissions, nil
}

func (s *SubmissionRepository) Update(submission *Submission) error {
	if result := s.DB.Save(submission); result.Error != nil {
		log.Printf("error updating submission: %s\n", result.Error)
		return result.Error
	}
	return nil
}
