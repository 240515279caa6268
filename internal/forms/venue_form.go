package forms

import "clubhub/internal/models"

// VenueForm carries a venue submission. VenueImage is optional and set
// by the handler after the upload succeeds, so it carries no validation.
type VenueForm struct {
	Name         string `form:"name" validate:"required"`
	Address      string `form:"address" validate:"required"`
	Telephone    string `form:"telephone" validate:"required"`
	Website      string `form:"website" validate:"required"`
	EmailAddress string `form:"email_address" validate:"required,email"`
	VenueImage   string `form:"-" validate:"-"`
}

func (f *VenueForm) Validate() FieldErrors {
	errs := FieldErrors{}
	if err := validate.Struct(f); err != nil {
		collect(err, errs)
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Apply copies the submitted fields onto the record. Owner is not a
// form field and is left alone.
func (f *VenueForm) Apply(venue *models.Venue) {
	venue.Name = f.Name
	venue.Address = f.Address
	venue.Telephone = f.Telephone
	venue.Website = f.Website
	venue.EmailAddress = f.EmailAddress
	if f.VenueImage != "" {
		venue.VenueImage = f.VenueImage
	}
}

// VenueFormFromModel pre-fills a form with a record's current values for
// the update page's unsubmitted render.
func VenueFormFromModel(venue *models.Venue) VenueForm {
	return VenueForm{
		Name:         venue.Name,
		Address:      venue.Address,
		Telephone:    venue.Telephone,
		Website:      venue.Website,
		EmailAddress: venue.EmailAddress,
		VenueImage:   venue.VenueImage,
	}
}
