package user

import (
	c "blog/internal/core/domain/common"
	e "blog/internal/core/domain/errors"
	"blog/internal/core/domain/user"
	"blog/internal/db/queries"
	"context"
	"errors"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
)

const PG_UNIQUE_CONSTRAINT_ERR_CODE = "23505"

const (
	USERNAME_CONSTRAINT_NAME = "user_username_idx"
	EMAIL_CONSTRAINT_NAME    = "user_email_idx"
)

type PgxUserRepository struct {
	queries *queries.Queries
}

func NewPgxRepository(db queries.DBTX) *PgxUserRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxUserRepository{queries: queries.New(db)}
}

func (r *PgxUserRepository) Create(ctx context.Context, input user.CreateUserInput) (u user.User, err error) {
	imageFile := input.ImageFile
	if imageFile == "" {
		imageFile = user.DefaultImageFile
	}
	dbuser, err := r.queries.CreateUser(ctx, queries.CreateUserParams{
		Username:     string(input.Username),
		Email:        string(input.Email),
		ImageFile:    string(imageFile),
		PasswordHash: string(input.PasswordHash),
		CreatedAt:    input.CreatedAt,
	})
	if err != nil {
		return u, translateUniqueError(err)
	}
	return decodeUser(dbuser)
}

func (r *PgxUserRepository) GetByID(ctx context.Context, id user.ID) (u user.User, err error) {
	dbuser, err := r.queries.GetUserByID(ctx, int64(id))
	return decodeUserOrMissing(dbuser, err)
}

func (r *PgxUserRepository) GetByEmail(ctx context.Context, email c.Email) (u user.User, err error) {
	dbuser, err := r.queries.GetUserByEmail(ctx, string(email))
	return decodeUserOrMissing(dbuser, err)
}

func (r *PgxUserRepository) GetByUsername(ctx context.Context, username user.Username) (u user.User, err error) {
	dbuser, err := r.queries.GetUserByUsername(ctx, string(username))
	return decodeUserOrMissing(dbuser, err)
}

func (r *PgxUserRepository) Update(ctx context.Context, input user.UpdateUserInput) (u user.User, err error) {
	dbuser, err := r.queries.UpdateUser(ctx, queries.UpdateUserParams{
		ID:                int64(input.ID),
		DoUsernameUpdate:  input.DoUsernameUpdate,
		Username:          string(input.Username),
		DoEmailUpdate:     input.DoEmailUpdate,
		Email:             string(input.Email),
		DoImageFileUpdate: input.DoImageFileUpdate,
		ImageFile:         string(input.ImageFile),
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	if err != nil {
		return u, translateUniqueError(err)
	}
	return decodeUser(dbuser)
}

func (r *PgxUserRepository) SetPassword(ctx context.Context, id user.ID, password user.PasswordHash) error {
	err := r.queries.SetUserPassword(ctx, int64(id), string(password))
	if errors.Is(err, pgx.ErrNoRows) {
		return user.ErrUserDoesNotExist
	}
	return err
}

func translateUniqueError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != PG_UNIQUE_CONSTRAINT_ERR_CODE {
		return err
	}
	switch pgErr.ConstraintName {
	case USERNAME_CONSTRAINT_NAME:
		return user.ErrUsernameAlreadyExists
	case EMAIL_CONSTRAINT_NAME:
		return user.ErrEmailAlreadyExists
	}
	return err
}

func decodeUserOrMissing(dbuser queries.User, err error) (u user.User, _ error) {
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	if err != nil {
		return u, err
	}
	return decodeUser(dbuser)
}

func decodeUser(dbuser queries.User) (user.User, error) {
	u := user.User{
		ID:           user.ID(dbuser.ID),
		Username:     user.Username(dbuser.Username),
		Email:        c.Email(dbuser.Email),
		ImageFile:    user.ImageFile(dbuser.ImageFile),
		PasswordHash: user.PasswordHash(dbuser.PasswordHash),
		CreatedAt:    dbuser.CreatedAt,
	}
	return u, u.Validate()
}
