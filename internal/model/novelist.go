package model

import "time"

// Novelist represents an author ("romancista") in the catalog.
type Novelist struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;size:255;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations. Books are removed together with their novelist.
	Books []Book `json:"books,omitempty" gorm:"foreignKey:NovelistID;constraint:OnDelete:CASCADE"`
}
