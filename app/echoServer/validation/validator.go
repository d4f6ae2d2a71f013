package validation

import (
	"boardcamp/util/validate"
)

// Validator plugs the shared rule set into echo so c.Validate reports the
// same field errors the services do.
type Validator struct{}

func New() *Validator {
	return &Validator{}
}

func (v *Validator) Validate(i interface{}) error {
	return validate.Struct(i)
}
