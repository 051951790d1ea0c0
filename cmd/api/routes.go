package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (app *application) routes() http.Handler {
	mux := chi.NewRouter()

	mux.Use(middleware.Logger)
	mux.Use(middleware.Recoverer)
	mux.Use(middleware.StripSlashes)
	mux.Use(app.enableCORS)

	mux.MethodNotAllowed(app.methodNotAllowed)
	mux.NotFound(app.notFound)

	// liveness
	mux.Get("/healthz", app.healthcheck)

	// check a single field while it is being edited
	mux.Post("/signup/check", app.checkSignupField)

	// submit the signup form
	mux.Post("/signup", app.submitSignup)

	// registration endpoint
	mux.Post("/users", app.createUser)

	// authenticate user
	mux.Post("/authenticate", app.authenticateUser)

	return mux
}

func (app *application) healthcheck(w http.ResponseWriter, r *http.Request) {
	err := app.outputJSON(w, http.StatusOK, envelope{"status": "available"})
	if err != nil {
		app.writeInternalServerError(w, r, err)
	}
}
