package services

import (
	"clubhub/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Refs implements forms.ReferenceChecker over the store.
type Refs struct {
	DB *gorm.DB
}

func (r Refs) VenueExists(id uuid.UUID) bool {
	var count int64
	r.DB.Model(&models.Venue{}).Where("id = ?", id).Count(&count)
	return count > 0
}

func (r Refs) UserExists(id uuid.UUID) bool {
	var count int64
	r.DB.Model(&models.User{}).Where("id = ?", id).Count(&count)
	return count > 0
}
