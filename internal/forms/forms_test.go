package forms

import (
	"testing"
	"time"

	"clubhub/internal/models"
	"github.com/google/uuid"
)

// stubRefs is a canned ReferenceChecker for form tests.
type stubRefs struct {
	venues map[uuid.UUID]bool
	users  map[uuid.UUID]bool
}

func (s stubRefs) VenueExists(id uuid.UUID) bool { return s.venues[id] }
func (s stubRefs) UserExists(id uuid.UUID) bool  { return s.users[id] }

func TestVenueFormRequiredFields(t *testing.T) {
	form := VenueForm{}
	errs := form.Validate()
	if errs == nil {
		t.Fatal("empty form validated")
	}
	for _, field := range []string{"name", "address", "telephone", "website", "email_address"} {
		if _, ok := errs[field]; !ok {
			t.Errorf("missing error for %s: %v", field, errs)
		}
	}
}

func TestVenueFormRejectsMalformedEmail(t *testing.T) {
	form := VenueForm{
		Name:         "Hall",
		Address:      "1 Main St",
		Telephone:    "555-1234",
		Website:      "http://x",
		EmailAddress: "not-an-email",
	}
	errs := form.Validate()
	if errs == nil {
		t.Fatal("malformed email validated")
	}
	if len(errs) != 1 || errs["email_address"] == "" {
		t.Errorf("expected only email_address error, got %v", errs)
	}
}

func TestVenueFormValid(t *testing.T) {
	form := VenueForm{
		Name:         "Hall",
		Address:      "1 Main St",
		Telephone:    "555-1234",
		Website:      "http://x",
		EmailAddress: "a@x.com",
	}
	if errs := form.Validate(); errs != nil {
		t.Fatalf("valid form rejected: %v", errs)
	}
}

func TestVenueFormApplyLeavesOwner(t *testing.T) {
	owner := uuid.New()
	venue := models.Venue{Owner: owner, Name: "Old"}
	form := VenueForm{Name: "New", Address: "a", Telephone: "t", Website: "w", EmailAddress: "a@x.com"}
	form.Apply(&venue)
	if venue.Name != "New" {
		t.Errorf("name not applied")
	}
	if venue.Owner != owner {
		t.Errorf("owner changed by Apply")
	}
}

func TestEventFormDateParsing(t *testing.T) {
	venueID := uuid.New()
	refs := stubRefs{venues: map[uuid.UUID]bool{venueID: true}}

	form := EventForm{
		Name:        "Meetup",
		EventDate:   "2024-02-29 18:30:00",
		Venue:       venueID.String(),
		Description: "monthly",
	}
	if errs := form.Validate(refs); errs != nil {
		t.Fatalf("valid event rejected: %v", errs)
	}
	want := time.Date(2024, 2, 29, 18, 30, 0, 0, time.UTC)
	if !form.Date().Equal(want) {
		t.Errorf("Date() = %v, want %v", form.Date(), want)
	}
	if form.VenueID() != venueID {
		t.Errorf("VenueID() = %v, want %v", form.VenueID(), venueID)
	}

	form.EventDate = "29/02/2024"
	errs := form.Validate(refs)
	if errs == nil || errs["event_date"] == "" {
		t.Errorf("bad date accepted: %v", errs)
	}
}

func TestEventFormUnknownVenue(t *testing.T) {
	form := EventForm{
		Name:        "Meetup",
		EventDate:   "2024-02-29 18:30:00",
		Venue:       uuid.New().String(),
		Description: "monthly",
	}
	errs := form.Validate(stubRefs{})
	if errs == nil || errs["venue"] == "" {
		t.Errorf("unknown venue accepted: %v", errs)
	}
}

func TestEventFormAttendeesMustExist(t *testing.T) {
	venueID := uuid.New()
	known := uuid.New()
	refs := stubRefs{
		venues: map[uuid.UUID]bool{venueID: true},
		users:  map[uuid.UUID]bool{known: true},
	}

	form := EventForm{
		Name:        "Meetup",
		EventDate:   "2024-02-29 18:30:00",
		Venue:       venueID.String(),
		Description: "monthly",
		Attendees:   []string{known.String(), uuid.New().String()},
	}
	errs := form.Validate(refs)
	if errs == nil || errs["attendees"] == "" {
		t.Errorf("unknown attendee accepted: %v", errs)
	}

	form.Attendees = []string{known.String()}
	if errs := form.Validate(refs); errs != nil {
		t.Fatalf("valid attendees rejected: %v", errs)
	}
	if len(form.AttendeeIDs()) != 1 || form.AttendeeIDs()[0] != known {
		t.Errorf("AttendeeIDs() = %v", form.AttendeeIDs())
	}
}

func TestEventFormAdminRequiresManager(t *testing.T) {
	venueID := uuid.New()
	manager := uuid.New()
	refs := stubRefs{
		venues: map[uuid.UUID]bool{venueID: true},
		users:  map[uuid.UUID]bool{manager: true},
	}

	form := EventFormAdmin{
		EventForm: EventForm{
			Name:        "Gala",
			EventDate:   "2024-06-01 19:00:00",
			Venue:       venueID.String(),
			Description: "annual",
		},
	}
	errs := form.Validate(refs)
	if errs == nil || errs["manager"] == "" {
		t.Errorf("missing manager accepted: %v", errs)
	}

	form.Manager = manager.String()
	if errs := form.Validate(refs); errs != nil {
		t.Fatalf("valid admin form rejected: %v", errs)
	}
	if form.ManagerID() != manager {
		t.Errorf("ManagerID() = %v, want %v", form.ManagerID(), manager)
	}
}

func TestEventFormFromModelPrefills(t *testing.T) {
	venueID := uuid.New()
	managerID := uuid.New()
	event := models.Event{
		Name:        "Gala",
		EventDate:   time.Date(2024, 6, 1, 19, 0, 0, 0, time.UTC),
		VenueID:     venueID,
		ManagerID:   managerID,
		Description: "annual",
	}

	form := EventFormFromModel(&event)
	if form.EventDate != "2024-06-01 19:00:00" {
		t.Errorf("EventDate = %q", form.EventDate)
	}
	if form.Venue != venueID.String() {
		t.Errorf("Venue = %q", form.Venue)
	}

	admin := EventFormAdminFromModel(&event)
	if admin.Manager != managerID.String() {
		t.Errorf("Manager = %q", admin.Manager)
	}
}
