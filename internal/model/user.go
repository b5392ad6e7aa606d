package model

import (
	"strings"
	"time"
)

// User represents a registered account in the catalog.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:255;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NormalizeUsername collapses internal whitespace and lowercases the
// username so "  Machado   de Assis " and "machado de assis" collide on
// the unique index.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.Join(strings.Fields(username), " "))
}
