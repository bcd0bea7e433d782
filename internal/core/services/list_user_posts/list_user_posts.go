package listuserposts

import (
	c "blog/internal/core/domain/common"
	e "blog/internal/core/domain/errors"
	"blog/internal/core/domain/logging"
	"blog/internal/core/domain/post"
	"blog/internal/core/domain/user"
	"blog/internal/core/services"
	listposts "blog/internal/core/services/list_posts"
	"context"
	"errors"
)

type Input struct {
	Username user.Username
	Page     int
	PerPage  uint
}

type Result struct {
	Author     post.Author
	Posts      []post.PostWithAuthor
	Pagination post.Pagination
}

type service struct {
	log            logging.Logger
	userRepository user.UserRepository
	postRepository post.Repository
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	postRepository post.Repository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if postRepository == nil {
		panic(e.NewNilArgumentError("postRepository"))
	}
	return &service{
		log:            log,
		userRepository: userRepository,
		postRepository: postRepository,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	page, err := post.NewPage(input.Page, input.PerPage)
	if err != nil {
		return result, err
	}
	author, err := s.userRepository.GetByUsername(ctx, input.Username)
	if errors.Is(err, user.ErrUserDoesNotExist) {
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("username", input.Username))
		return result, err
	}

	options := post.ReadOptions{AuthorIDEquals: c.NewOptional(author.ID, true)}
	posts, pagination, err := listposts.ReadPage(ctx, s.postRepository, options, page)
	if err != nil {
		if !errors.Is(err, post.ErrPageNotFound) {
			logging.Error(ctx, s.log, err, logging.Entry("userId", author.ID))
		}
		return result, err
	}
	return Result{Author: post.NewAuthor(author), Posts: posts, Pagination: pagination}, nil
}
