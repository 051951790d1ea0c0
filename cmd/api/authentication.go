package main

import (
	"errors"
	"net/http"

	"github.com/annusingmar/signup-backend/internal/data"
	"github.com/annusingmar/signup-backend/internal/validator"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
)

func (app *application) authenticateUser(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	err := app.inputJSON(w, r, &input)
	if err != nil {
		app.writeErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	v := validator.NewValidator()

	v.Check(input.Email != "", "email", "must be provided")
	v.Check(input.Password != "", "password", "must be provided")

	if !v.Valid() {
		app.writeErrorResponse(w, r, http.StatusBadRequest, v.Errors)
		return
	}

	user, err := app.users.GetUserByEmail(input.Email)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrNoSuchUser):
			app.writeErrorResponse(w, r, http.StatusForbidden, ErrInvalidCredentials.Error())
		default:
			app.writeInternalServerError(w, r, err)
		}
		return
	}

	correct, err := data.ComparePassword(user.Password.Hashed, input.Password)
	if err != nil {
		app.writeInternalServerError(w, r, err)
		return
	}

	if !correct {
		app.writeErrorResponse(w, r, http.StatusForbidden, ErrInvalidCredentials.Error())
		return
	}

	err = app.outputJSON(w, http.StatusAccepted, envelope{"user": user})
	if err != nil {
		app.writeInternalServerError(w, r, err)
	}
}
