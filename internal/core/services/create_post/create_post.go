package createpost

import (
	e "blog/internal/core/domain/errors"
	"blog/internal/core/domain/logging"
	"blog/internal/core/domain/post"
	"blog/internal/core/domain/user"
	"blog/internal/core/services"
	"blog/internal/core/services/auth"
	"context"
	"time"
)

type Input struct {
	User    user.User
	Title   string
	Content string
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.User = u
	return i
}

type Result struct {
	Post post.PostWithAuthor
}

type service struct {
	log            logging.Logger
	postRepository post.Repository
	feed           post.Feed
	now            func() time.Time
}

func New(
	log logging.Logger,
	postRepository post.Repository,
	feed post.Feed,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if postRepository == nil {
		panic(e.NewNilArgumentError("postRepository"))
	}
	if feed == nil {
		panic(e.NewNilArgumentError("feed"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:            log,
		postRepository: postRepository,
		feed:           feed,
		now:            now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	title, err := post.NewTitle(input.Title)
	if err != nil {
		return result, err
	}
	content, err := post.NewContent(input.Content)
	if err != nil {
		return result, err
	}

	createdPost, err := s.postRepository.Create(ctx, post.CreateInput{
		AuthorID:   input.User.ID,
		Title:      title,
		Content:    content,
		DatePosted: s.now(),
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userId", input.User.ID))
		return result, err
	}

	result.Post = post.PostWithAuthor{Post: createdPost, Author: post.NewAuthor(input.User)}
	s.log.Info(
		ctx,
		"Post successfully created.",
		logging.Entry("postId", createdPost.ID),
		logging.Entry("userId", input.User.ID),
	)

	event := post.Event{Type: post.EventPostCreated, Post: result.Post}
	if err := s.feed.Publish(ctx, event); err != nil {
		s.log.Warning(ctx, "Could not publish post event.", logging.Entry("postId", createdPost.ID), logging.Entry("err", err))
	}
	return result, nil
}
