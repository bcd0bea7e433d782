package post

import (
	c "blog/internal/core/domain/common"
	"blog/internal/core/domain/user"
	"context"
	"time"
)

type CreateInput struct {
	AuthorID   user.ID
	Title      Title
	Content    Content
	DatePosted time.Time
}

// ReadOptions select posts ordered from newest to oldest.
type ReadOptions struct {
	AuthorIDEquals c.Optional[user.ID]
	Limit          c.Optional[uint]
	Offset         uint
}

type UpdateInput struct {
	ID              ID
	DoTitleUpdate   bool
	Title           Title
	DoContentUpdate bool
	Content         Content
}

type Repository interface {
	Create(ctx context.Context, input CreateInput) (Post, error)
	Lock(ctx context.Context, id ID) error
	GetByID(ctx context.Context, id ID) (PostWithAuthor, error)
	Read(ctx context.Context, options ReadOptions) ([]PostWithAuthor, error)
	Count(ctx context.Context, options ReadOptions) (uint, error)
	Update(ctx context.Context, input UpdateInput) (Post, error)
	Delete(ctx context.Context, id ID) error
}
