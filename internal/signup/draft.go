package signup

import (
	"errors"
	"strings"
)

const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldMobile   = "mobile"
	FieldGender   = "gender"
	FieldPassword = "password"
)

const (
	GenderMale   = "Male"
	GenderFemale = "Female"
)

var ErrUnknownField = errors.New("unknown field")

// Fields lists the form fields in the order they are validated.
var Fields = []string{FieldName, FieldEmail, FieldMobile, FieldGender, FieldPassword}

var Genders = []string{GenderMale, GenderFemale}

// UserDraft is registration data that has not been submitted yet.
type UserDraft struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Mobile   string `json:"mobile"`
	Gender   string `json:"gender"`
	Password string `json:"password"`
}

func (d *UserDraft) Set(field, value string) error {
	switch field {
	case FieldName:
		d.Name = value
	case FieldEmail:
		d.Email = value
	case FieldMobile:
		d.Mobile = value
	case FieldGender:
		d.Gender = value
	case FieldPassword:
		d.Password = value
	default:
		return ErrUnknownField
	}
	return nil
}

func (d UserDraft) Get(field string) (string, error) {
	switch field {
	case FieldName:
		return d.Name, nil
	case FieldEmail:
		return d.Email, nil
	case FieldMobile:
		return d.Mobile, nil
	case FieldGender:
		return d.Gender, nil
	case FieldPassword:
		return d.Password, nil
	default:
		return "", ErrUnknownField
	}
}

// Key identifies the draft for duplicate submission checks.
func (d UserDraft) Key() string {
	return strings.ToLower(d.Email)
}
