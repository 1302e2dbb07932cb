package triage

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// validate caches struct metadata, so one instance serves the package.
var validate = validator.New()

// AdmissionForm is raw admission input before it reaches the desk. Input
// policy lives here: the line itself accepts any record as given.
type AdmissionForm struct {
	Name     string `validate:"required"`
	ID       int
	Severity int `validate:"gte=1,lte=5"`
}

// Validate checks the form against the admission rules and returns a
// message suitable for showing at the prompt.
func (f AdmissionForm) Validate() error {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}

	if ferrs, ok := err.(validator.ValidationErrors); ok && len(ferrs) > 0 {
		switch ferrs[0].Field() {
		case "Name":
			return errors.New("name must not be empty")
		case "Severity":
			return errors.Errorf("severity must be between %d and %d", SeverityMin, SeverityMax)
		}
	}
	return errors.Wrap(err, "validate admission form")
}

// Admit runs the form through validation and, if it passes, admits the
// patient at the desk. A full line is not an error: it is reported through
// the bool exactly as Desk.Admit reports it.
func (f AdmissionForm) Admit(d *Desk) (Patient, bool, error) {
	if err := f.Validate(); err != nil {
		return Patient{}, false, err
	}
	p, ok := d.Admit(f.ID, f.Name, f.Severity)
	return p, ok, nil
}
