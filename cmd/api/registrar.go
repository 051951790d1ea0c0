package main

import (
	"context"

	"github.com/annusingmar/signup-backend/internal/data"
	"github.com/annusingmar/signup-backend/internal/signup"
)

// localRegistrar registers drafts directly into this service's database.
type localRegistrar struct {
	users userStore
}

func (l localRegistrar) Register(ctx context.Context, draft signup.UserDraft) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	user, err := newUserFromDraft(draft)
	if err != nil {
		return err
	}

	return l.users.InsertUser(user)
}

func newUserFromDraft(draft signup.UserDraft) (*data.User, error) {
	user := &data.User{
		Name:   data.SanitizeName(draft.Name),
		Email:  draft.Email,
		Mobile: draft.Mobile,
		Gender: draft.Gender,
	}

	if err := user.Password.Set(draft.Password); err != nil {
		return nil, err
	}

	return user, nil
}
