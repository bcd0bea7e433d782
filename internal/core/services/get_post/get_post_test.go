package getpost

import (
	"blog/internal/core/domain/logging"
	"blog/internal/core/domain/post"
	"blog/internal/core/domain/user"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGetPost(t *testing.T) {
	ctx := context.Background()
	log := logging.NewFakeLogger()
	users := user.NewFakeUserRepository()
	posts := post.NewFakeRepository(users)
	u, err := users.Create(ctx, user.CreateUserInput{Username: "john", Email: "john@example.com", PasswordHash: "h"})
	require.Nil(t, err)
	created, err := posts.Create(ctx, post.CreateInput{AuthorID: u.ID, Title: "t", Content: "c", DatePosted: time.Now()})
	require.Nil(t, err)

	service := New(log, posts)

	result, err := service.Run(ctx, Input{PostID: created.ID})
	require.Nil(t, err)
	require.Equal(t, created, result.Post.Post)
	require.Equal(t, u.Username, result.Post.Author.Username)
	require.Equal(t, user.DefaultImageFile, result.Post.Author.ImageFile)

	_, err = service.Run(ctx, Input{PostID: created.ID + 1})
	require.ErrorIs(t, err, post.ErrPostDoesNotExist)
	require.Equal(t, 0, log.CountByLevel(logging.ERROR))

	posts.ReturnError = true
	_, err = service.Run(ctx, Input{PostID: created.ID})
	require.NotNil(t, err)
	require.Equal(t, 1, log.CountByLevel(logging.ERROR))
}
