package updatepost

import (
	c "blog/internal/core/domain/common"
	e "blog/internal/core/domain/errors"
	"blog/internal/core/domain/logging"
	"blog/internal/core/domain/post"
	uow "blog/internal/core/domain/unit_of_work"
	"blog/internal/core/domain/user"
	"blog/internal/core/services"
	"blog/internal/core/services/auth"
	"context"
	"errors"
)

type Input struct {
	User    user.User
	PostID  post.ID
	Title   c.Optional[string]
	Content c.Optional[string]
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.User = u
	return i
}

type Result struct {
	Post post.PostWithAuthor
}

type service struct {
	log        logging.Logger
	unitOfWork uow.UnitOfWork
	feed       post.Feed
}

func New(
	log logging.Logger,
	unitOfWork uow.UnitOfWork,
	feed post.Feed,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if unitOfWork == nil {
		panic(e.NewNilArgumentError("unitOfWork"))
	}
	if feed == nil {
		panic(e.NewNilArgumentError("feed"))
	}
	return &service{
		log:        log,
		unitOfWork: unitOfWork,
		feed:       feed,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	updateInput := post.UpdateInput{ID: input.PostID}
	if input.Title.IsPresent {
		updateInput.DoTitleUpdate = true
		if updateInput.Title, err = post.NewTitle(input.Title.Value); err != nil {
			return result, err
		}
	}
	if input.Content.IsPresent {
		updateInput.DoContentUpdate = true
		if updateInput.Content, err = post.NewContent(input.Content.Value); err != nil {
			return result, err
		}
	}

	uow, err := s.unitOfWork.Begin(ctx)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("postId", input.PostID))
		return result, err
	}
	defer uow.Rollback(ctx)

	postRepository := uow.Posts()
	if err := postRepository.Lock(ctx, input.PostID); err != nil {
		if !errors.Is(err, post.ErrPostDoesNotExist) {
			logging.Error(ctx, s.log, err, logging.Entry("postId", input.PostID))
		}
		return result, err
	}
	existing, err := postRepository.GetByID(ctx, input.PostID)
	if errors.Is(err, post.ErrPostDoesNotExist) {
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("postId", input.PostID))
		return result, err
	}
	if !existing.IsWrittenBy(input.User.ID) {
		s.log.Info(
			ctx,
			"User is not allowed to update the post.",
			logging.Entry("userId", input.User.ID),
			logging.Entry("postId", input.PostID),
		)
		return result, post.ErrPostPermission
	}

	updatedPost, err := postRepository.Update(ctx, updateInput)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("postId", input.PostID))
		return result, err
	}
	if err := uow.Commit(ctx); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("postId", input.PostID))
		return result, err
	}

	result.Post = post.PostWithAuthor{Post: updatedPost, Author: existing.Author}
	s.log.Info(ctx, "Post successfully updated.", logging.Entry("postId", input.PostID))

	event := post.Event{Type: post.EventPostUpdated, Post: result.Post}
	if err := s.feed.Publish(ctx, event); err != nil {
		s.log.Warning(ctx, "Could not publish post event.", logging.Entry("postId", input.PostID), logging.Entry("err", err))
	}
	return result, nil
}
