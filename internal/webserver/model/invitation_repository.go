package model

import (
	"errors"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InvitationRepository struct {
	DB *gorm.DB
}

// Upsert overwrites any previous invitation record for the given address,
// so a resend invalidates the tracked expiry of the prior invite.
func (i *InvitationRepository) Upsert(invitation *Invitation) error {
	result := i.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"valid_until", "updated_at"}),
	}).Create(invitation)
	if result.Error != nil {
		log.Printf("error upserting invitation: %s\n", result.Error)
		return result.Error
	}
	return nil
}

func (i *InvitationRepository) FindByEmail(email string) (*Invitation, error) {
	var invitation Invitation

	result := i.DB.Where("email = ?", email).First(&invitation)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &invitation, result.Error
}

func (i *InvitationRepository) DeleteByEmail(email string) error {
	var invitation Invitation

	result := i.DB.Where("email = ?", email).Delete(&invitation)
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		log.Printf("error deleting invitation: %s\n", result.Error)
	}
	return nil
}
