package user

import (
	e "blog/internal/core/domain/errors"
	"blog/internal/core/domain/user"
	"blog/internal/db/queries"
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v4"
)

type PgxSessionRepository struct {
	queries *queries.Queries
	now     func() time.Time
}

func NewPgxSessionRepository(db queries.DBTX) *PgxSessionRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxSessionRepository{queries: queries.New(db), now: time.Now}
}

func (r *PgxSessionRepository) Create(ctx context.Context, input user.CreateSessionInput) error {
	return r.queries.CreateSession(ctx, queries.CreateSessionParams{
		Token:     string(input.Token),
		UserID:    int64(input.UserID),
		CreatedAt: input.CreatedAt,
		ExpiresAt: input.ExpiresAt,
	})
}

// GetUserByToken ignores expired sessions.
func (r *PgxSessionRepository) GetUserByToken(ctx context.Context, token user.SessionToken) (u user.User, err error) {
	dbuser, err := r.queries.GetUserBySessionToken(ctx, string(token), r.now())
	return decodeUserOrMissing(dbuser, err)
}

func (r *PgxSessionRepository) Delete(ctx context.Context, token user.SessionToken) (userID user.ID, err error) {
	rawUserID, err := r.queries.DeleteSessionByToken(ctx, string(token))
	if errors.Is(err, pgx.ErrNoRows) {
		return userID, user.ErrSessionDoesNotExist
	}
	if err != nil {
		return userID, err
	}
	return user.ID(rawUserID), nil
}
