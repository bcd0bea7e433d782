package getpost

import (
	e "blog/internal/core/domain/errors"
	"blog/internal/core/domain/logging"
	"blog/internal/core/domain/post"
	"blog/internal/core/services"
	"context"
	"errors"
)

type Input struct {
	PostID post.ID
}

type Result struct {
	Post post.PostWithAuthor
}

type service struct {
	log            logging.Logger
	postRepository post.Repository
}

func New(log logging.Logger, postRepository post.Repository) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if postRepository == nil {
		panic(e.NewNilArgumentError("postRepository"))
	}
	return &service{log: log, postRepository: postRepository}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	p, err := s.postRepository.GetByID(ctx, input.PostID)
	if errors.Is(err, post.ErrPostDoesNotExist) {
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("postId", input.PostID))
		return result, err
	}
	return Result{Post: p}, nil
}
