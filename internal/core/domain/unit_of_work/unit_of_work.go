package uow

import (
	"blog/internal/core/domain/post"
	"blog/internal/core/domain/user"
	"context"
)

type Context interface {
	Rollback(ctx context.Context) error
	Commit(ctx context.Context) error

	Users() user.UserRepository
	Sessions() user.SessionRepository
	Posts() post.Repository
}

type UnitOfWork interface {
	Begin(ctx context.Context) (Context, error)
}
