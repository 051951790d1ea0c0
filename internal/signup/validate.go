package signup

import (
	"github.com/annusingmar/signup-backend/internal/validator"
	"golang.org/x/exp/slices"
)

// messages shown after a full validation pass
const (
	MsgNameRequired     = "Name is required"
	MsgEmailRequired    = "Email is required"
	MsgEmailInvalid     = "Please enter a valid email"
	MsgMobileRequired   = "Mobile number is required"
	MsgMobileInvalid    = "Please enter a valid mobile number"
	MsgGenderRequired   = "Gender is required"
	MsgGenderInvalid    = "Please select a valid gender"
	MsgPasswordRequired = "Password is required"
	MsgPasswordInvalid  = "Password must be 8-15 characters starting with a letter"
)

// messages shown while a field is being edited
const (
	MsgEmailFormat    = "Please enter a valid email address"
	MsgMobileFormat   = "Please enter a valid mobile number (10-15 digits)"
	MsgPasswordFormat = "Password must be 8-15 characters starting with a letter"
)

// Validate checks every field of d and returns a fresh error map. All fields
// are checked so that every applicable error is reported at once.
func Validate(d UserDraft) map[string]string {
	v := validator.NewValidator()

	v.Check(d.Name != "", FieldName, MsgNameRequired)

	if d.Email == "" {
		v.Add(FieldEmail, MsgEmailRequired)
	} else {
		v.Check(validator.ValidEmail(d.Email), FieldEmail, MsgEmailInvalid)
	}

	if d.Mobile == "" {
		v.Add(FieldMobile, MsgMobileRequired)
	} else {
		v.Check(validator.ValidMobile(d.Mobile), FieldMobile, MsgMobileInvalid)
	}

	if d.Gender == "" {
		v.Add(FieldGender, MsgGenderRequired)
	} else {
		v.Check(slices.Contains(Genders, d.Gender), FieldGender, MsgGenderInvalid)
	}

	if d.Password == "" {
		v.Add(FieldPassword, MsgPasswordRequired)
	} else {
		v.Check(validator.ValidPassword(d.Password), FieldPassword, MsgPasswordInvalid)
	}

	return v.Errors
}

// Check applies the per-edit rule to a single field: a non-empty value that
// fails its format check sets the field's error, anything else clears it.
// Empty values and fields without a format rule are never flagged here.
func Check(v *validator.Validator, field, value string) error {
	var valid func(string) bool
	var msg string

	switch field {
	case FieldEmail:
		valid, msg = validator.ValidEmail, MsgEmailFormat
	case FieldMobile:
		valid, msg = validator.ValidMobile, MsgMobileFormat
	case FieldPassword:
		valid, msg = validator.ValidPassword, MsgPasswordFormat
	case FieldName, FieldGender:
	default:
		return ErrUnknownField
	}

	if valid != nil && value != "" && !valid(value) {
		v.Remove(field)
		v.Add(field, msg)
		return nil
	}

	v.Remove(field)
	return nil
}
