package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/annusingmar/signup-backend/internal/data"
	"github.com/annusingmar/signup-backend/internal/signup"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryUsers struct {
	mu    sync.Mutex
	users map[string]*data.User
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{users: make(map[string]*data.User)}
}

func (m *memoryUsers) InsertUser(u *data.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := strings.ToLower(u.Email)
	if _, exists := m.users[key]; exists {
		return data.ErrEmailAlreadyExists
	}
	u.ID = len(m.users) + 1
	m.users[key] = u
	return nil
}

func (m *memoryUsers) GetUserByEmail(email string) (*data.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[strings.ToLower(email)]
	if !ok {
		return nil, data.ErrNoSuchUser
	}
	return u, nil
}

func newTestApplication(registrar signup.Registrar, users userStore) *application {
	return &application{
		config:    defaultConfig(),
		logger:    log.New(io.Discard),
		users:     users,
		registrar: registrar,
		inflight:  signup.NewGuard(),
	}
}

func doJSON(t *testing.T, h http.Handler, method, target, body string) (int, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return rec.Code, out
}

const validSignup = `{"name":"A","email":"a@b.co","mobile":"1234567890","gender":"Male","password":"abcdefgh"}`

func TestCheckSignupField(t *testing.T) {
	app := newTestApplication(nil, newMemoryUsers())
	h := app.routes()

	status, out := doJSON(t, h, http.MethodPost, "/signup/check",
		`{"field":"email","value":"bad","errors":{"name":"Name is required"}}`)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, map[string]any{
		"name":  signup.MsgNameRequired,
		"email": signup.MsgEmailFormat,
	}, out["errors"])

	status, out = doJSON(t, h, http.MethodPost, "/signup/check",
		`{"field":"email","value":"ok@ex.com","errors":{"name":"Name is required","email":"x"}}`)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, map[string]any{"name": signup.MsgNameRequired}, out["errors"])

	status, _ = doJSON(t, h, http.MethodPost, "/signup/check", `{"field":"age","value":"3"}`)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestSubmitSignup(t *testing.T) {
	t.Run("invalid_draft_never_registers", func(t *testing.T) {
		called := false
		reg := signup.RegistrarFunc(func(ctx context.Context, d signup.UserDraft) error {
			called = true
			return nil
		})
		app := newTestApplication(reg, newMemoryUsers())

		status, out := doJSON(t, app.routes(), http.MethodPost, "/signup", `{}`)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Len(t, out["error"], 5)
		assert.False(t, called)
	})

	t.Run("success_redirects_to_login", func(t *testing.T) {
		users := newMemoryUsers()
		app := newTestApplication(localRegistrar{users: users}, users)

		status, out := doJSON(t, app.routes(), http.MethodPost, "/signup", validSignup)
		assert.Equal(t, http.StatusCreated, status)
		assert.Equal(t, signup.LoginPath, out["redirect"])

		u, err := users.GetUserByEmail("a@b.co")
		require.NoError(t, err)
		assert.Equal(t, "A", u.Name)
		assert.NotEmpty(t, u.Password.Hashed)
	})

	t.Run("duplicate_email", func(t *testing.T) {
		users := newMemoryUsers()
		app := newTestApplication(localRegistrar{users: users}, users)

		status, _ := doJSON(t, app.routes(), http.MethodPost, "/signup", validSignup)
		require.Equal(t, http.StatusCreated, status)

		status, out := doJSON(t, app.routes(), http.MethodPost, "/signup", validSignup)
		assert.Equal(t, http.StatusConflict, status)
		assert.Equal(t, map[string]any{"email": data.ErrEmailAlreadyExists.Error()}, out["error"])
	})

	t.Run("registrar_failure_is_surfaced", func(t *testing.T) {
		reg := signup.RegistrarFunc(func(ctx context.Context, d signup.UserDraft) error {
			return errors.New("boom")
		})
		app := newTestApplication(reg, newMemoryUsers())

		status, out := doJSON(t, app.routes(), http.MethodPost, "/signup", validSignup)
		assert.Equal(t, http.StatusBadGateway, status)
		assert.Equal(t, signup.MsgRegistrationFailed, out["error"])
	})

	t.Run("concurrent_submit_is_refused", func(t *testing.T) {
		entered := make(chan struct{})
		release := make(chan struct{})
		reg := signup.RegistrarFunc(func(ctx context.Context, d signup.UserDraft) error {
			close(entered)
			<-release
			return nil
		})
		app := newTestApplication(reg, newMemoryUsers())
		h := app.routes()

		first := make(chan int)
		go func() {
			req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(validSignup))
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			first <- rec.Code
		}()

		<-entered
		status, out := doJSON(t, h, http.MethodPost, "/signup",
			strings.Replace(validSignup, "a@b.co", "A@B.CO", 1))
		assert.Equal(t, http.StatusConflict, status)
		assert.Equal(t, signup.ErrSubmitInProgress.Error(), out["error"])

		close(release)
		assert.Equal(t, http.StatusCreated, <-first)
	})
}

func TestCreateUser(t *testing.T) {
	users := newMemoryUsers()
	app := newTestApplication(nil, users)
	h := app.routes()

	status, out := doJSON(t, h, http.MethodPost, "/users",
		`{"name":"A","email":"bad","mobile":"1234567890","gender":"Male","password":"abcdefgh"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, map[string]any{"email": signup.MsgEmailInvalid}, out["error"])

	status, out = doJSON(t, h, http.MethodPost, "/users", validSignup)
	assert.Equal(t, http.StatusCreated, status)
	user := out["user"].(map[string]any)
	assert.Equal(t, "a@b.co", user["email"])
	assert.NotContains(t, user, "password")

	status, _ = doJSON(t, h, http.MethodPost, "/users", validSignup)
	assert.Equal(t, http.StatusConflict, status)

	status, _ = doJSON(t, h, http.MethodPost, "/users", `{"nickname":"x"}`)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestAuthenticateUser(t *testing.T) {
	users := newMemoryUsers()
	app := newTestApplication(nil, users)
	h := app.routes()

	status, _ := doJSON(t, h, http.MethodPost, "/users", validSignup)
	require.Equal(t, http.StatusCreated, status)

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"correct_password", `{"email":"a@b.co","password":"abcdefgh"}`, http.StatusAccepted},
		{"wrong_password", `{"email":"a@b.co","password":"abcdefgx"}`, http.StatusForbidden},
		{"unknown_email", `{"email":"x@b.co","password":"abcdefgh"}`, http.StatusForbidden},
		{"missing_fields", `{"email":""}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, _ := doJSON(t, h, http.MethodPost, "/authenticate", tt.body)
			assert.Equal(t, tt.status, status)
		})
	}
}

func TestHealthcheckAndNotFound(t *testing.T) {
	h := newTestApplication(nil, newMemoryUsers()).routes()

	status, out := doJSON(t, h, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "available", out["status"])

	status, _ = doJSON(t, h, http.MethodGet, "/nowhere", "")
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = doJSON(t, h, http.MethodGet, "/signup", "")
	assert.Equal(t, http.StatusMethodNotAllowed, status)
}

func TestMarkupOnlyNameIsRequired(t *testing.T) {
	markupNames := []string{"<b></b>", "<script>x</script>"}

	for _, name := range markupNames {
		t.Run(name, func(t *testing.T) {
			users := newMemoryUsers()
			called := false
			reg := signup.RegistrarFunc(func(ctx context.Context, d signup.UserDraft) error {
				called = true
				return nil
			})
			app := newTestApplication(reg, users)
			h := app.routes()

			body, err := json.Marshal(signup.UserDraft{
				Name:     name,
				Email:    "a@b.co",
				Mobile:   "1234567890",
				Gender:   signup.GenderMale,
				Password: "abcdefgh",
			})
			require.NoError(t, err)

			status, out := doJSON(t, h, http.MethodPost, "/users", string(body))
			assert.Equal(t, http.StatusBadRequest, status)
			assert.Equal(t, map[string]any{"name": signup.MsgNameRequired}, out["error"])

			status, out = doJSON(t, h, http.MethodPost, "/signup", string(body))
			assert.Equal(t, http.StatusBadRequest, status)
			assert.Equal(t, map[string]any{"name": signup.MsgNameRequired}, out["error"])

			assert.False(t, called)
			_, err = users.GetUserByEmail("a@b.co")
			assert.ErrorIs(t, err, data.ErrNoSuchUser)
		})
	}
}

func TestStoredNameIsSanitized(t *testing.T) {
	users := newMemoryUsers()
	app := newTestApplication(localRegistrar{users: users}, users)

	body := strings.Replace(validSignup, `"name":"A"`, `"name":"<b>Jaan</b> Tamm"`, 1)

	status, _ := doJSON(t, app.routes(), http.MethodPost, "/signup", body)
	require.Equal(t, http.StatusCreated, status)

	u, err := users.GetUserByEmail("a@b.co")
	require.NoError(t, err)
	assert.Equal(t, "Jaan Tamm", u.Name)
}
