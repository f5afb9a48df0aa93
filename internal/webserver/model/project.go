package model

import "time"

type Project struct {
	ID           uint `gorm:"primarykey"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Name         string `gorm:"uniqueIndex; not null"`
	TemplatePath string
	Workflow     string `gorm:"not null; default:'ci.yml'"`
	Active       bool   `gorm:"not null; default:true"`
}
