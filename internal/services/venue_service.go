package services

import (
	"errors"

	"clubhub/internal/forms"
	"clubhub/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VenueService covers the venue read and write operations. The owner
// check on update/delete is off unless EnforceOwnerCheck is set.
type VenueService struct {
	DB                *gorm.DB
	EnforceOwnerCheck bool
}

// List returns the complete venue collection together with a clamped
// 1-based page slice of it.
func (s *VenueService) List(page int) ([]models.Venue, []models.Venue, Pagination, error) {
	var all []models.Venue
	if err := s.DB.Find(&all).Error; err != nil {
		return nil, nil, Pagination{}, err
	}

	total := int64(len(all))
	page, totalPages := clampPage(page, total, DefaultPageSize)

	start := (page - 1) * DefaultPageSize
	end := start + DefaultPageSize
	if start > len(all) {
		start = len(all)
	}
	if end > len(all) {
		end = len(all)
	}

	p := Pagination{Page: page, PageSize: DefaultPageSize, Total: total, TotalPages: totalPages}
	return all, all[start:end], p, nil
}

func (s *VenueService) Get(id uuid.UUID) (*models.Venue, error) {
	var venue models.Venue
	if err := s.DB.Where("id = ?", id).First(&venue).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &venue, nil
}

// Search returns the venues whose name contains the substring. The
// empty string matches everything; matching is case-sensitive.
func (s *VenueService) Search(substring string) ([]models.Venue, error) {
	var venues []models.Venue
	err := s.DB.Where("name LIKE ?", "%"+substring+"%").Find(&venues).Error
	if err != nil {
		return nil, err
	}
	return venues, nil
}

// Create persists a venue with the acting user stamped as owner. The
// raw submission cannot forge the owner; it is not a form field.
func (s *VenueService) Create(form *forms.VenueForm, actingUser uuid.UUID) (*models.Venue, error) {
	venue := models.Venue{Owner: actingUser}
	form.Apply(&venue)
	if err := s.DB.Create(&venue).Error; err != nil {
		return nil, err
	}
	return &venue, nil
}

// Update replaces every field except the owner.
func (s *VenueService) Update(id uuid.UUID, form *forms.VenueForm, actingUser uuid.UUID) (*models.Venue, error) {
	venue, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if s.EnforceOwnerCheck && venue.Owner != actingUser {
		return nil, ErrForbidden
	}

	form.Apply(venue)
	if err := s.DB.Save(venue).Error; err != nil {
		return nil, err
	}
	return venue, nil
}

func (s *VenueService) Delete(id uuid.UUID, actingUser uuid.UUID) error {
	venue, err := s.Get(id)
	if err != nil {
		return err
	}
	if s.EnforceOwnerCheck && venue.Owner != actingUser {
		return ErrForbidden
	}
	return s.DB.Delete(venue).Error
}
