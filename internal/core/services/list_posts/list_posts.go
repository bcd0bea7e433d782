package listposts

import (
	c "blog/internal/core/domain/common"
	e "blog/internal/core/domain/errors"
	"blog/internal/core/domain/logging"
	"blog/internal/core/domain/post"
	"blog/internal/core/services"
	"context"
	"errors"
)

type Input struct {
	Page    int
	PerPage uint
}

type Result struct {
	Posts      []post.PostWithAuthor
	Pagination post.Pagination
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
	page, err := post.NewPage(input.Page, input.PerPage)
	if err != nil {
		return result, err
	}
	posts, pagination, err := ReadPage(ctx, s.postRepository, post.ReadOptions{}, page)
	if err != nil {
		if !errors.Is(err, post.ErrPageNotFound) {
			logging.Error(ctx, s.log, err, logging.Entry("page", input.Page))
		}
		return result, err
	}
	return Result{Posts: posts, Pagination: pagination}, nil
}

// ReadPage counts the posts matching the options and reads the requested page.
func ReadPage(
	ctx context.Context,
	repository post.Repository,
	options post.ReadOptions,
	page post.Page,
) ([]post.PostWithAuthor, post.Pagination, error) {
	total, err := repository.Count(ctx, options)
	if err != nil {
		return nil, post.Pagination{}, err
	}
	pagination := post.Pagination{Page: page, Total: total}
	if err := pagination.Check(); err != nil {
		return nil, pagination, err
	}
	options.Limit = c.NewOptional(page.Limit(), true)
	options.Offset = page.Offset()
	posts, err := repository.Read(ctx, options)
	if err != nil {
		return nil, pagination, err
	}
	return posts, pagination, nil
}
