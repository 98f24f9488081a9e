package user

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyName    = errors.New("user name cannot be empty")
	ErrInvalidEmail = errors.New("invalid email address")
)

type User struct {
	id    uuid.UUID
	name  string
	email string
}

func NewUser(name, email string) (*User, error) {
	u := &User{
		id:    uuid.New(),
		name:  strings.TrimSpace(name),
		email: strings.TrimSpace(email),
	}
	if err := u.validate(); err != nil {
		return nil, err
	}
	return u, nil
}

func Reconstruct(id uuid.UUID, name, email string) *User {
	return &User{id: id, name: name, email: email}
}

func (u *User) ApplyPatch(name, email *string) error {
	if name != nil {
		u.name = strings.TrimSpace(*name)
	}
	if email != nil {
		u.email = strings.TrimSpace(*email)
	}
	return u.validate()
}

func (u *User) validate() error {
	if u.name == "" {
		return ErrEmptyName
	}
	if u.email == "" || !strings.Contains(u.email, "@") {
		return ErrInvalidEmail
	}
	return nil
}

func (u *User) ID() uuid.UUID { return u.id }
func (u *User) Name() string  { return u.name }
func (u *User) Email() string { return u.email }
