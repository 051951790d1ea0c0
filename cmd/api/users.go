package main

import (
	"errors"
	"net/http"

	"github.com/annusingmar/signup-backend/internal/data"
	"github.com/annusingmar/signup-backend/internal/signup"
)

// userStore is the part of data.UserModel the handlers use.
type userStore interface {
	InsertUser(u *data.User) error
	GetUserByEmail(email string) (*data.User, error)
}

func (app *application) createUser(w http.ResponseWriter, r *http.Request) {
	var input signup.UserDraft

	err := app.inputJSON(w, r, &input)
	if err != nil {
		app.writeErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	input.Name = data.SanitizeName(input.Name)

	if errs := signup.Validate(input); len(errs) > 0 {
		app.writeErrorResponse(w, r, http.StatusBadRequest, errs)
		return
	}

	user, err := newUserFromDraft(input)
	if err != nil {
		app.writeInternalServerError(w, r, err)
		return
	}

	err = app.users.InsertUser(user)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrEmailAlreadyExists):
			app.writeErrorResponse(w, r, http.StatusConflict, envelope{signup.FieldEmail: err.Error()})
		default:
			app.writeInternalServerError(w, r, err)
		}
		return
	}

	err = app.outputJSON(w, http.StatusCreated, envelope{"user": user})
	if err != nil {
		app.writeInternalServerError(w, r, err)
	}
}
