package model

import "time"

// Book represents a book ("livro") in the catalog.
type Book struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Title      string    `json:"title" gorm:"uniqueIndex;size:255;not null"`
	Year       int       `json:"year" gorm:"not null"`
	NovelistID uint      `json:"novelist_id" gorm:"not null;index"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Relations
	Novelist Novelist `json:"-" gorm:"foreignKey:NovelistID"`
}
