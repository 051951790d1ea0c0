package signup

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/annusingmar/signup-backend/internal/validator"
	"github.com/charmbracelet/log"
	"golang.org/x/exp/maps"
)

const LoginPath = "/login"

const MsgRegistrationFailed = "Registration failed, please retry"

var (
	ErrSubmitInProgress   = errors.New("submission already in progress")
	ErrRegistrationFailed = errors.New("registration failed")
)

// Registrar performs the actual registration of a validated draft.
type Registrar interface {
	Register(ctx context.Context, draft UserDraft) error
}

type RegistrarFunc func(ctx context.Context, draft UserDraft) error

func (f RegistrarFunc) Register(ctx context.Context, draft UserDraft) error {
	return f(ctx, draft)
}

// Navigator moves the user to another view.
type Navigator interface {
	Navigate(ctx context.Context, path string) error
}

type NavigatorFunc func(ctx context.Context, path string) error

func (f NavigatorFunc) Navigate(ctx context.Context, path string) error {
	return f(ctx, path)
}

type ValidationError struct {
	Errors map[string]string
}

func (e *ValidationError) Error() string {
	v := validator.Validator{Errors: e.Errors}
	return "invalid fields: " + strings.Join(v.Fields(), ", ")
}

type State int

const (
	StateEditing State = iota
	StateValidating
	StateBlocked
	StateSubmitting
	StateSuccess
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateEditing:
		return "editing"
	case StateValidating:
		return "validating"
	case StateBlocked:
		return "blocked"
	case StateSubmitting:
		return "submitting"
	case StateSuccess:
		return "success"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Form is a single signup session. It owns the draft and its errors and is
// safe for concurrent use.
type Form struct {
	mu        sync.Mutex
	draft     UserDraft
	v         *validator.Validator
	state     State
	failure   string
	registrar Registrar
	navigator Navigator
	logger    *log.Logger
}

func NewForm(registrar Registrar, navigator Navigator, logger *log.Logger) *Form {
	return &Form{
		v:         validator.NewValidator(),
		registrar: registrar,
		navigator: navigator,
		logger:    logger,
	}
}

// Change stores the new value of field and re-checks only that field.
func (f *Form) Change(field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.draft.Set(field, value); err != nil {
		return err
	}

	if err := Check(f.v, field, value); err != nil {
		return err
	}

	if f.state != StateSubmitting {
		f.state = StateEditing
		f.failure = ""
	}

	return nil
}

// Submit validates the whole draft and, if it is valid, registers it and
// navigates to the login view. A submit made while another one is still
// pending returns ErrSubmitInProgress without calling the registrar.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()

	if f.state == StateSubmitting {
		f.mu.Unlock()
		return ErrSubmitInProgress
	}

	f.state = StateValidating
	f.v = &validator.Validator{Errors: Validate(f.draft)}

	if !f.v.Valid() {
		f.state = StateBlocked
		errs := maps.Clone(f.v.Errors)
		f.mu.Unlock()
		return &ValidationError{Errors: errs}
	}

	f.state = StateSubmitting
	f.failure = ""
	draft := f.draft
	f.mu.Unlock()

	returned := false
	defer func() {
		if !returned {
			f.mu.Lock()
			f.state = StateFailed
			f.failure = MsgRegistrationFailed
			f.mu.Unlock()
		}
	}()

	err := f.registrar.Register(ctx, draft)
	returned = true

	f.mu.Lock()
	if err != nil {
		f.state = StateFailed
		f.failure = MsgRegistrationFailed
		f.mu.Unlock()

		f.logger.Error("registration failed", "email", draft.Email, "err", err)
		return fmt.Errorf("%w: %w", ErrRegistrationFailed, err)
	}

	f.state = StateSuccess
	f.draft = UserDraft{}
	f.v = validator.NewValidator()
	f.mu.Unlock()

	f.logger.Info("registered user", "email", draft.Email)
	return f.navigator.Navigate(ctx, LoginPath)
}

// SignIn leaves the form for the login view without submitting.
func (f *Form) SignIn(ctx context.Context) error {
	return f.navigator.Navigate(ctx, LoginPath)
}

func (f *Form) Draft() UserDraft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

func (f *Form) Errors() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return maps.Clone(f.v.Errors)
}

func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Failure returns the message to show after a failed registration, or "".
func (f *Form) Failure() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.failure
}
