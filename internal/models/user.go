package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Email     string    `gorm:"unique;not null"`
	Password  string    `gorm:"not null" json:"-"`
	FirstName string
	LastName  string
	RoleID    uuid.UUID
	Role      Role
	Events    []Event `gorm:"many2many:event_attendees;" json:"-"`
}

func (user *User) BeforeCreate(tx *gorm.DB) (err error) {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	return
}

// FullName is the display name shown in the home page greeting.
func (user *User) FullName() string {
	if user.FirstName == "" && user.LastName == "" {
		return ""
	}
	return user.FirstName + " " + user.LastName
}
