package data

import (
	"context"
	"errors"
	"html"
	"time"

	"github.com/annusingmar/signup-backend/internal/types"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/microcosm-cc/bluemonday"
)

var (
	ErrEmailAlreadyExists = errors.New("an user with specified email already exists")
	ErrNoSuchUser         = errors.New("no such user")
)

var namePolicy = bluemonday.StrictPolicy()

type User struct {
	ID        int            `json:"id"`
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	Mobile    string         `json:"mobile"`
	Gender    string         `json:"gender"`
	Password  types.Password `json:"-"`
	CreatedAt time.Time      `json:"created_at"`
}

// SanitizeName strips any markup from a user supplied name. The policy
// escapes what it keeps, so entities are decoded again afterwards.
func SanitizeName(name string) string {
	return html.UnescapeString(namePolicy.Sanitize(name))
}

type UserModel struct {
	DB *pgxpool.Pool
}

func (m UserModel) InsertUser(u *User) error {
	stmt := `INSERT INTO users
	(name, email, mobile, gender, password)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id, created_at`

	u.Name = SanitizeName(u.Name)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := m.DB.QueryRow(ctx, stmt, u.Name, u.Email, u.Mobile, u.Gender, u.Password).
		Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrEmailAlreadyExists
		}
		return err
	}

	return nil
}

func (m UserModel) GetUserByEmail(email string) (*User, error) {
	query := `SELECT id, name, email, mobile, gender, password, created_at
	FROM users
	WHERE email = $1`

	var user User

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := m.DB.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Mobile,
		&user.Gender,
		&user.Password,
		&user.CreatedAt,
	)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return nil, ErrNoSuchUser
		default:
			return nil, err
		}
	}

	return &user, nil
}
