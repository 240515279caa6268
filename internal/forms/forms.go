package forms

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

// FieldErrors maps a form field name to a user-facing message. An empty
// map means the submission is valid.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for field, msg := range e {
		parts = append(parts, field+": "+msg)
	}
	return strings.Join(parts, "; ")
}

// ReferenceChecker answers whether a submitted id points at an existing
// record. Implemented over the store by the services package.
type ReferenceChecker interface {
	VenueExists(id uuid.UUID) bool
	UserExists(id uuid.UUID) bool
}

const (
	msgRequired     = "This field is required."
	msgInvalidEmail = "Enter a valid email address."
)

// collect turns validator errors into per-field messages keyed by the
// form tag name.
func collect(err error, errs FieldErrors) {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		errs["__all__"] = err.Error()
		return
	}
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			errs[fe.Field()] = msgRequired
		case "email":
			errs[fe.Field()] = msgInvalidEmail
		default:
			errs[fe.Field()] = "Invalid value."
		}
	}
}

func init() {
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		tag := fld.Tag.Get("form")
		if tag == "" || tag == "-" {
			return fld.Name
		}
		return tag
	})
}
