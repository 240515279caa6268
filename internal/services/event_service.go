package services

import (
	"errors"

	"clubhub/internal/forms"
	"clubhub/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventService covers the event read and write operations, including
// the manager-assignment rule for privileged callers.
type EventService struct {
	DB *gorm.DB
}

// resolveManager applies the manager-assignment rule: a privileged
// caller may assign any manager, everyone else manages what they create.
func resolveManager(submitted, actingUser uuid.UUID, isPrivileged bool) uuid.UUID {
	if isPrivileged && submitted != uuid.Nil {
		return submitted
	}
	return actingUser
}

func (s *EventService) Get(id uuid.UUID) (*models.Event, error) {
	var event models.Event
	err := s.DB.Preload("Venue").Preload("Manager").Preload("Attendees").Where("id = ?", id).First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &event, nil
}

// AllOrderedByName lists every event sorted by name.
func (s *EventService) AllOrderedByName() ([]models.Event, error) {
	var events []models.Event
	err := s.DB.Preload("Venue").Preload("Manager").Order("name").Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

// Search returns the events whose description contains the substring.
func (s *EventService) Search(substring string) ([]models.Event, error) {
	var events []models.Event
	err := s.DB.Preload("Venue").Where("description LIKE ?", "%"+substring+"%").Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

// ForAttendee lists the events a user is attending.
func (s *EventService) ForAttendee(userID uuid.UUID) ([]models.Event, error) {
	var events []models.Event
	err := s.DB.Preload("Venue").
		Joins("JOIN event_attendees ON event_attendees.event_id = events.id").
		Where("event_attendees.user_id = ?", userID).
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

// Create persists an event from a validated form. submittedManager is
// uuid.Nil for the standard form variant.
func (s *EventService) Create(form *forms.EventForm, submittedManager, actingUser uuid.UUID, isPrivileged bool) (*models.Event, error) {
	event := models.Event{
		Name:        form.Name,
		EventDate:   form.Date(),
		VenueID:     form.VenueID(),
		Description: form.Description,
		ManagerID:   resolveManager(submittedManager, actingUser, isPrivileged),
	}

	if err := s.DB.Create(&event).Error; err != nil {
		return nil, err
	}
	if err := s.replaceAttendees(&event, form.AttendeeIDs()); err != nil {
		return nil, err
	}
	return &event, nil
}

// Update replaces the event's fields, applying the same manager rule as
// Create to the existing record.
func (s *EventService) Update(id uuid.UUID, form *forms.EventForm, submittedManager, actingUser uuid.UUID, isPrivileged bool) (*models.Event, error) {
	event, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	event.Name = form.Name
	event.EventDate = form.Date()
	event.VenueID = form.VenueID()
	event.Description = form.Description
	event.ManagerID = resolveManager(submittedManager, actingUser, isPrivileged)

	if err := s.DB.Save(event).Error; err != nil {
		return nil, err
	}
	if err := s.replaceAttendees(event, form.AttendeeIDs()); err != nil {
		return nil, err
	}
	return event, nil
}

// Delete removes the event only when the acting user is its manager.
func (s *EventService) Delete(id uuid.UUID, actingUser uuid.UUID) error {
	event, err := s.Get(id)
	if err != nil {
		return err
	}
	if event.ManagerID != actingUser {
		return ErrForbidden
	}
	return s.DB.Delete(event).Error
}

func (s *EventService) replaceAttendees(event *models.Event, ids []uuid.UUID) error {
	attendees := make([]models.User, 0, len(ids))
	for _, id := range ids {
		attendees = append(attendees, models.User{ID: id})
	}
	return s.DB.Model(event).Association("Attendees").Replace(attendees)
}
