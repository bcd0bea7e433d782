package user

import (
	c "blog/internal/core/domain/common"
	e "blog/internal/core/domain/errors"
	"fmt"
	"time"
)

type ID int64

type Username string

type PasswordHash string

func (p PasswordHash) String() string {
	return "***"
}

type RawPassword string

func (p RawPassword) String() string {
	return "***"
}

type SessionToken string

func (t SessionToken) String() string {
	return "***"
}

// ImageFile is the name of a stored profile picture, not a path or URL.
type ImageFile string

const DefaultImageFile = ImageFile("default.jpg")

type User struct {
	ID           ID
	Username     Username
	Email        c.Email
	ImageFile    ImageFile
	PasswordHash PasswordHash
	CreatedAt    time.Time
}

func (u *User) Validate() error {
	if u.Username == "" {
		return e.NewInvalidStateError(fmt.Sprintf("username is not set for user %d", u.ID))
	}
	if u.Email == "" {
		return e.NewInvalidStateError(fmt.Sprintf("email is not set for user %d", u.ID))
	}
	if u.PasswordHash == "" {
		return e.NewInvalidStateError(fmt.Sprintf("password hash is not set for user %d", u.ID))
	}
	if u.ImageFile == "" {
		return e.NewInvalidStateError(fmt.Sprintf("image file is not set for user %d", u.ID))
	}
	return nil
}
