package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/annusingmar/signup-backend/internal/data"
	"github.com/annusingmar/signup-backend/internal/registration"
	"github.com/annusingmar/signup-backend/internal/signup"
	"github.com/annusingmar/signup-backend/internal/validator"
	"golang.org/x/exp/maps"
)

func (app *application) checkSignupField(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Field  string            `json:"field"`
		Value  string            `json:"value"`
		Errors map[string]string `json:"errors"`
	}

	err := app.inputJSON(w, r, &input)
	if err != nil {
		app.writeErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	v := validator.NewValidator()
	maps.Copy(v.Errors, input.Errors)

	err = signup.Check(v, input.Field, input.Value)
	if err != nil {
		app.writeErrorResponse(w, r, http.StatusBadRequest, envelope{input.Field: err.Error()})
		return
	}

	err = app.outputJSON(w, http.StatusOK, envelope{"errors": v.Errors})
	if err != nil {
		app.writeInternalServerError(w, r, err)
	}
}

func (app *application) submitSignup(w http.ResponseWriter, r *http.Request) {
	var input signup.UserDraft

	err := app.inputJSON(w, r, &input)
	if err != nil {
		app.writeErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	input.Name = data.SanitizeName(input.Name)

	var redirect string
	nav := signup.NavigatorFunc(func(_ context.Context, path string) error {
		redirect = path
		return nil
	})

	form := signup.NewForm(app.registrar, nav, app.logger)
	for _, field := range signup.Fields {
		value, err := input.Get(field)
		if err != nil {
			app.writeInternalServerError(w, r, err)
			return
		}

		err = form.Change(field, value)
		if err != nil {
			app.writeInternalServerError(w, r, err)
			return
		}
	}

	key := input.Key()
	if key != "" {
		if !app.inflight.Acquire(key) {
			app.writeErrorResponse(w, r, http.StatusConflict, signup.ErrSubmitInProgress.Error())
			return
		}
		defer app.inflight.Release(key)
	}

	err = form.Submit(r.Context())
	if err != nil {
		var validationErr *signup.ValidationError
		switch {
		case errors.As(err, &validationErr):
			app.writeErrorResponse(w, r, http.StatusBadRequest, validationErr.Errors)
		case errors.Is(err, data.ErrEmailAlreadyExists), errors.Is(err, registration.ErrEmailTaken):
			app.writeErrorResponse(w, r, http.StatusConflict, envelope{signup.FieldEmail: data.ErrEmailAlreadyExists.Error()})
		case errors.Is(err, signup.ErrRegistrationFailed):
			app.writeErrorResponse(w, r, http.StatusBadGateway, form.Failure())
		default:
			app.writeInternalServerError(w, r, err)
		}
		return
	}

	err = app.outputJSON(w, http.StatusCreated, envelope{"redirect": redirect})
	if err != nil {
		app.writeInternalServerError(w, r, err)
	}
}
