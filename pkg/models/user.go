package models

import (
	"time"
)

// User represents a registered community member. Password holds the bcrypt
// hash, never the plaintext.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"not null;uniqueIndex:idx_users_username"`
	Email     string    `json:"email" gorm:"not null;uniqueIndex:idx_users_email"`
	Password  string    `json:"-" gorm:"not null"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}
