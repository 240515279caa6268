package forms

import (
	"strings"
	"time"

	"clubhub/internal/models"
	"github.com/google/uuid"
)

// EventDateLayout is the submission format for event_date.
const EventDateLayout = "2006-01-02 15:04:05"

// EventForm is the standard event submission. The manager is never a
// field here; it is stamped from the acting user.
type EventForm struct {
	Name        string   `form:"name" validate:"required"`
	EventDate   string   `form:"event_date" validate:"required"`
	Venue       string   `form:"venue" validate:"required"`
	Description string   `form:"description" validate:"required"`
	Attendees   []string `form:"attendees" validate:"-"`

	date      time.Time
	venueID   uuid.UUID
	attendees []uuid.UUID
}

// EventFormAdmin additionally exposes the manager as an editable field.
type EventFormAdmin struct {
	EventForm
	Manager string `form:"manager" validate:"required"`

	managerID uuid.UUID
}

// Validate checks field syntax and that every referenced venue and user
// exists. Returns nil when the submission is valid.
func (f *EventForm) Validate(refs ReferenceChecker) FieldErrors {
	errs := FieldErrors{}
	if err := validate.Struct(f); err != nil {
		collect(err, errs)
	}

	if f.EventDate != "" {
		date, err := time.Parse(EventDateLayout, f.EventDate)
		if err != nil {
			errs["event_date"] = "Enter a valid date in YYYY-MM-DD HH:MM:SS format."
		} else {
			f.date = date
		}
	}

	if f.Venue != "" {
		id, err := uuid.Parse(f.Venue)
		if err != nil || !refs.VenueExists(id) {
			errs["venue"] = "Select a valid venue."
		} else {
			f.venueID = id
		}
	}

	f.attendees = f.attendees[:0]
	for _, raw := range f.Attendees {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		id, err := uuid.Parse(raw)
		if err != nil || !refs.UserExists(id) {
			errs["attendees"] = "Select valid attendees."
			break
		}
		f.attendees = append(f.attendees, id)
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (f *EventFormAdmin) Validate(refs ReferenceChecker) FieldErrors {
	errs := f.EventForm.Validate(refs)
	if errs == nil {
		errs = FieldErrors{}
	}

	if f.Manager == "" {
		errs["manager"] = msgRequired
	} else {
		id, err := uuid.Parse(f.Manager)
		if err != nil || !refs.UserExists(id) {
			errs["manager"] = "Select a valid manager."
		} else {
			f.managerID = id
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Date, VenueID and AttendeeIDs are only meaningful after a successful
// Validate.
func (f *EventForm) Date() time.Time          { return f.date }
func (f *EventForm) VenueID() uuid.UUID       { return f.venueID }
func (f *EventForm) AttendeeIDs() []uuid.UUID { return f.attendees }

func (f *EventFormAdmin) ManagerID() uuid.UUID { return f.managerID }

// EventFormFromModel pre-fills the standard form from a record.
func EventFormFromModel(event *models.Event) EventForm {
	attendees := make([]string, 0, len(event.Attendees))
	for _, user := range event.Attendees {
		attendees = append(attendees, user.ID.String())
	}
	return EventForm{
		Name:        event.Name,
		EventDate:   event.EventDate.Format(EventDateLayout),
		Venue:       event.VenueID.String(),
		Description: event.Description,
		Attendees:   attendees,
	}
}

// EventFormAdminFromModel pre-fills the privileged form, manager
// included.
func EventFormAdminFromModel(event *models.Event) EventFormAdmin {
	return EventFormAdmin{
		EventForm: EventFormFromModel(event),
		Manager:   event.ManagerID.String(),
	}
}
