package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/annusingmar/signup-backend/internal/signup"
)

var labels = map[string]string{
	signup.FieldName:     "Name:",
	signup.FieldEmail:    "Email - ID:",
	signup.FieldMobile:   "Mobile - No.:",
	signup.FieldGender:   "Gender:",
	signup.FieldPassword: "Password:",
}

// prompter asks for a single field. validate is called with every answer
// before it is accepted.
type prompter interface {
	Ask(field string, validate func(string) error) (string, error)
	Confirm(message string) (bool, error)
}

type surveyPrompter struct{}

func (surveyPrompter) Ask(field string, validate func(string) error) (string, error) {
	var prompt survey.Prompt

	switch field {
	case signup.FieldGender:
		prompt = &survey.Select{Message: labels[field], Options: signup.Genders}
	case signup.FieldPassword:
		prompt = &survey.Password{Message: labels[field]}
	default:
		prompt = &survey.Input{Message: labels[field]}
	}

	var out string
	err := survey.AskOne(prompt, &out, survey.WithValidator(func(ans interface{}) error {
		switch v := ans.(type) {
		case string:
			return validate(v)
		case survey.OptionAnswer:
			return validate(v.Value)
		default:
			return fmt.Errorf("unexpected answer type %T", ans)
		}
	}))
	return out, err
}

func (surveyPrompter) Confirm(message string) (bool, error) {
	var out bool
	err := survey.AskOne(&survey.Confirm{Message: message, Default: true}, &out)
	return out, err
}

// fieldValidator feeds every answer through the form's per-edit check.
func fieldValidator(form *signup.Form, field string) func(string) error {
	return func(value string) error {
		if err := form.Change(field, value); err != nil {
			return err
		}
		if msg, ok := form.Errors()[field]; ok {
			return errors.New(msg)
		}
		return nil
	}
}

// run asks for every field, then keeps submitting until registration
// succeeds or the user gives up. After a blocked submit only the fields
// with errors are asked again.
func run(ctx context.Context, form *signup.Form, p prompter) error {
	pending := signup.Fields

	for {
		for _, field := range pending {
			if _, err := p.Ask(field, fieldValidator(form, field)); err != nil {
				return err
			}
		}

		err := form.Submit(ctx)
		if err == nil {
			return nil
		}

		var validationErr *signup.ValidationError
		switch {
		case errors.As(err, &validationErr):
			pending = pending[:0:0]
			for _, field := range signup.Fields {
				if msg, ok := validationErr.Errors[field]; ok {
					fmt.Println(msg)
					pending = append(pending, field)
				}
			}
		case errors.Is(err, signup.ErrRegistrationFailed):
			fmt.Println(form.Failure())
			retry, err := p.Confirm("Retry?")
			if err != nil {
				return err
			}
			if !retry {
				return form.SignIn(ctx)
			}
			pending = nil
		default:
			return err
		}
	}
}
