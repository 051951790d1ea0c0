package types

import (
	"database/sql/driver"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const passwordCost = 12

type Password struct {
	Hashed    []byte
	Plaintext string
}

// Set stores plaintext together with its bcrypt hash.
func (p *Password) Set(plaintext string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), passwordCost)
	if err != nil {
		return err
	}

	p.Plaintext = plaintext
	p.Hashed = hash

	return nil
}

func (p *Password) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		p.Hashed = append([]byte(nil), v...)
		return nil
	case nil:
		return fmt.Errorf("password: cannot scan NULL")
	default:
		return fmt.Errorf("password: cannot scan %T", src)
	}
}

func (p Password) Value() (driver.Value, error) {
	return p.Hashed, nil
}
