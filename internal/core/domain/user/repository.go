package user

import (
	c "blog/internal/core/domain/common"
	"context"
	"time"
)

type CreateUserInput struct {
	Username     Username
	Email        c.Email
	PasswordHash PasswordHash
	ImageFile    ImageFile
	CreatedAt    time.Time
}

type UpdateUserInput struct {
	ID                ID
	DoUsernameUpdate  bool
	Username          Username
	DoEmailUpdate     bool
	Email             c.Email
	DoImageFileUpdate bool
	ImageFile         ImageFile
}

type UserRepository interface {
	Create(ctx context.Context, input CreateUserInput) (User, error)
	GetByID(ctx context.Context, id ID) (User, error)
	GetByEmail(ctx context.Context, email c.Email) (User, error)
	GetByUsername(ctx context.Context, username Username) (User, error)
	Update(ctx context.Context, input UpdateUserInput) (User, error)
	SetPassword(ctx context.Context, id ID, password PasswordHash) error
}

type CreateSessionInput struct {
	UserID    ID
	Token     SessionToken
	CreatedAt time.Time
	ExpiresAt time.Time
}

type SessionRepository interface {
	Create(ctx context.Context, input CreateSessionInput) error
	GetUserByToken(ctx context.Context, token SessionToken) (User, error)
	Delete(ctx context.Context, token SessionToken) (userID ID, err error)
}
