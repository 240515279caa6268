package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Venue is a physical location that can host events. Owner holds the
// creating user's id as a bare column, not an association; it is stamped
// once at creation and never touched by the update path.
type Venue struct {
	gorm.Model
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	Name         string    `gorm:"not null"`
	Address      string    `gorm:"not null"`
	Telephone    string    `gorm:"not null"`
	Website      string    `gorm:"not null"`
	EmailAddress string    `gorm:"not null"`
	VenueImage   string
	Owner        uuid.UUID `gorm:"type:uuid"`
	Events       []Event   `json:"-"`
}

func (venue *Venue) BeforeCreate(tx *gorm.DB) (err error) {
	if venue.ID == uuid.Nil {
		venue.ID = uuid.New()
	}
	return
}
