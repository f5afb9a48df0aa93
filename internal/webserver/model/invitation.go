package model

import "time"

// Invitation tracks the expiry of the last invite token sent to an email
// address. The token itself carries the authoritative expiry; this record
// only supports resend and cleanup bookkeeping.
type Invitation struct {
	ID         uint `gorm:"primarykey"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Email      string `gorm:"uniqueIndex; not null"`
	ValidUntil time.Time
}
