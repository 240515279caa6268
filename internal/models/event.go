package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Event struct {
	gorm.Model
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	Name        string    `gorm:"not null"`
	EventDate   time.Time `gorm:"not null"`
	Description string    `gorm:"not null"`
	VenueID     uuid.UUID
	Venue       Venue
	ManagerID   uuid.UUID
	Manager     User
	Attendees   []User `gorm:"many2many:event_attendees;"`
}

func (event *Event) BeforeCreate(tx *gorm.DB) (err error) {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	return
}
