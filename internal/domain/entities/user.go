package entities

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
)

type User struct {
	ID        uint
	CreatedAt time.Time
	UpdatedAt time.Time
	Username  string
	Email     string
	FullName  string
	Password  string
}

func NewUser(username, email, fullName, password string) *User {
	now := time.Now()
	return &User{
		CreatedAt: now,
		UpdatedAt: now,
		Username:  username,
		Email:     email,
		FullName:  fullName,
		Password:  password,
	}
}

func (u *User) validate() error {
	if u.Username == "" {
		return errors.New("username must not be empty")
	}
	if u.Email == "" {
		return errors.New("email must not be empty")
	}
	if u.Password == "" {
		return errors.New("password must not be empty")
	}
	if u.CreatedAt.After(u.UpdatedAt) {
		return errors.New("created_at must be before updated_at")
	}
	return nil
}

func (u *User) HashPassword() error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
}

// ApplyPartial overwrites only the fields present in the input; nil fields
// are left untouched. A non-nil password is re-hashed.
func (u *User) ApplyPartial(username, email, fullName, password *string) error {
	if username != nil {
		u.Username = *username
	}
	if email != nil {
		u.Email = *email
	}
	if fullName != nil {
		u.FullName = *fullName
	}
	if password != nil {
		u.Password = *password
		if err := u.HashPassword(); err != nil {
			return err
		}
	}
	u.UpdatedAt = time.Now()
	return u.validate()
}
