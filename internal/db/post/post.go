package post

import (
	e "blog/internal/core/domain/errors"
	"blog/internal/core/domain/post"
	"blog/internal/core/domain/user"
	"blog/internal/db/queries"
	"context"
	"errors"

	"github.com/jackc/pgx/v4"
)

type PgxPostRepository struct {
	queries *queries.Queries
}

func NewPgxPostRepository(db queries.DBTX) *PgxPostRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxPostRepository{queries: queries.New(db)}
}

func (r *PgxPostRepository) Create(ctx context.Context, input post.CreateInput) (p post.Post, err error) {
	dbpost, err := r.queries.CreatePost(ctx, queries.CreatePostParams{
		Title:      string(input.Title),
		Content:    string(input.Content),
		DatePosted: input.DatePosted,
		AuthorID:   int64(input.AuthorID),
	})
	if err != nil {
		return p, err
	}
	return decodePost(dbpost)
}

// Lock must be called inside a transaction.
func (r *PgxPostRepository) Lock(ctx context.Context, id post.ID) error {
	err := r.queries.LockPost(ctx, int64(id))
	if errors.Is(err, pgx.ErrNoRows) {
		return post.ErrPostDoesNotExist
	}
	return err
}

func (r *PgxPostRepository) GetByID(ctx context.Context, id post.ID) (p post.PostWithAuthor, err error) {
	dbpost, err := r.queries.GetPostByID(ctx, int64(id))
	if errors.Is(err, pgx.ErrNoRows) {
		return p, post.ErrPostDoesNotExist
	}
	if err != nil {
		return p, err
	}
	return decodePostWithAuthor(dbpost)
}

func (r *PgxPostRepository) Read(ctx context.Context, options post.ReadOptions) (posts []post.PostWithAuthor, err error) {
	dbposts, err := r.queries.ReadPosts(ctx, queries.ReadPostsParams{
		AnyAuthorID:    !options.AuthorIDEquals.IsPresent,
		AuthorIDEquals: int64(options.AuthorIDEquals.Value),
		AllRows:        !options.Limit.IsPresent,
		Limit:          int64(options.Limit.Value),
		Offset:         int64(options.Offset),
	})
	if err != nil {
		return posts, err
	}

	posts = make([]post.PostWithAuthor, 0, len(dbposts))
	for _, dbpost := range dbposts {
		p, err := decodePostWithAuthor(dbpost)
		if err != nil {
			return posts, err
		}
		posts = append(posts, p)
	}
	return posts, nil
}

func (r *PgxPostRepository) Count(ctx context.Context, options post.ReadOptions) (uint, error) {
	count, err := r.queries.CountPosts(ctx, queries.CountPostsParams{
		AnyAuthorID:    !options.AuthorIDEquals.IsPresent,
		AuthorIDEquals: int64(options.AuthorIDEquals.Value),
	})
	if err != nil {
		return 0, err
	}
	return uint(count), nil
}

func (r *PgxPostRepository) Update(ctx context.Context, input post.UpdateInput) (p post.Post, err error) {
	dbpost, err := r.queries.UpdatePost(ctx, queries.UpdatePostParams{
		ID:              int64(input.ID),
		DoTitleUpdate:   input.DoTitleUpdate,
		Title:           string(input.Title),
		DoContentUpdate: input.DoContentUpdate,
		Content:         string(input.Content),
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return p, post.ErrPostDoesNotExist
	}
	if err != nil {
		return p, err
	}
	return decodePost(dbpost)
}

func (r *PgxPostRepository) Delete(ctx context.Context, id post.ID) error {
	err := r.queries.DeletePost(ctx, int64(id))
	if errors.Is(err, pgx.ErrNoRows) {
		return post.ErrPostDoesNotExist
	}
	return err
}

func decodePost(dbpost queries.Post) (post.Post, error) {
	p := post.Post{
		ID:         post.ID(dbpost.ID),
		Title:      post.Title(dbpost.Title),
		Content:    post.Content(dbpost.Content),
		DatePosted: dbpost.DatePosted,
		AuthorID:   user.ID(dbpost.AuthorID),
	}
	return p, p.Validate()
}

func decodePostWithAuthor(dbpost queries.PostWithAuthor) (p post.PostWithAuthor, err error) {
	p.Post, err = decodePost(dbpost.Post)
	if err != nil {
		return p, err
	}
	p.Author = post.Author{
		ID:        user.ID(dbpost.AuthorID),
		Username:  user.Username(dbpost.AuthorUsername),
		ImageFile: user.ImageFile(dbpost.AuthorImageFile),
	}
	return p, nil
}
