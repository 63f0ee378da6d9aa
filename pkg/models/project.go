package models

import (
	"time"
)

// Project represents a published project on the site
type Project struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`

	// Tag names, resolved through the project_tags link table
	Tags []string `json:"tags" gorm:"-"`
}
