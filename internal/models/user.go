package models

import "time"

// User represents application user.
type User struct {
	ID           uint      `gorm:"primaryKey"`
	Name         string    `gorm:"size:64;not null"`
	Email        string    `gorm:"size:128;uniqueIndex;not null"`
	Phone        string    `gorm:"size:32;uniqueIndex;not null"`
	PasswordHash string    `gorm:"size:255;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	LastLoginAt *time.Time // most recent successful login
	LastLoginIP string     `gorm:"size:64"`
}
