package updateaccount

import (
	c "blog/internal/core/domain/common"
	e "blog/internal/core/domain/errors"
	"blog/internal/core/domain/logging"
	"blog/internal/core/domain/picture"
	uow "blog/internal/core/domain/unit_of_work"
	"blog/internal/core/domain/user"
	"blog/internal/core/services"
	"blog/internal/core/services/auth"
	"context"
	"errors"
	"io"
)

type Input struct {
	User     user.User
	Username c.Optional[user.Username]
	Email    c.Optional[c.Email]
	Picture  io.Reader
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.User = u
	return i
}

type Result struct {
	User user.User
}

type service struct {
	log              logging.Logger
	unitOfWork       uow.UnitOfWork
	pictureProcessor picture.Processor
	pictureStorage   picture.Storage
}

func New(
	log logging.Logger,
	unitOfWork uow.UnitOfWork,
	pictureProcessor picture.Processor,
	pictureStorage picture.Storage,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if unitOfWork == nil {
		panic(e.NewNilArgumentError("unitOfWork"))
	}
	if pictureProcessor == nil {
		panic(e.NewNilArgumentError("pictureProcessor"))
	}
	if pictureStorage == nil {
		panic(e.NewNilArgumentError("pictureStorage"))
	}
	return &service{
		log:              log,
		unitOfWork:       unitOfWork,
		pictureProcessor: pictureProcessor,
		pictureStorage:   pictureStorage,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	updateInput := user.UpdateUserInput{
		ID:               input.User.ID,
		DoUsernameUpdate: input.Username.IsPresent,
		Username:         input.Username.Value,
		DoEmailUpdate:    input.Email.IsPresent,
		Email:            input.Email.Value,
	}

	if input.Picture != nil {
		thumbnail, err := s.pictureProcessor.Thumbnail(input.Picture)
		if err != nil {
			s.log.Info(ctx, "Uploaded picture rejected.", logging.Entry("userId", input.User.ID), logging.Entry("err", err))
			return result, err
		}
		imageFile, err := s.pictureStorage.Save(ctx, thumbnail)
		if err != nil {
			logging.Error(ctx, s.log, err, logging.Entry("userId", input.User.ID))
			return result, err
		}
		updateInput.DoImageFileUpdate = true
		updateInput.ImageFile = imageFile
	}

	updatedUser, err := s.update(ctx, updateInput)
	if err != nil {
		if updateInput.DoImageFileUpdate {
			s.deletePicture(ctx, updateInput.ImageFile)
		}
		return result, err
	}

	if updateInput.DoImageFileUpdate && input.User.ImageFile != user.DefaultImageFile {
		s.deletePicture(ctx, input.User.ImageFile)
	}

	s.log.Info(ctx, "User successfully updated.", logging.Entry("userId", updatedUser.ID))
	return Result{User: updatedUser}, nil
}

func (s *service) update(ctx context.Context, input user.UpdateUserInput) (u user.User, err error) {
	uow, err := s.unitOfWork.Begin(ctx)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userId", input.ID))
		return u, err
	}
	defer uow.Rollback(ctx)

	u, err = uow.Users().Update(ctx, input)
	if errors.Is(err, user.ErrUsernameAlreadyExists) || errors.Is(err, user.ErrEmailAlreadyExists) {
		s.log.Info(ctx, "Could not update user.", logging.Entry("userId", input.ID), logging.Entry("err", err))
		return u, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userId", input.ID))
		return u, err
	}

	if err := uow.Commit(ctx); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userId", input.ID))
		return u, err
	}
	return u, nil
}

func (s *service) deletePicture(ctx context.Context, name user.ImageFile) {
	if name == "" || name == user.DefaultImageFile {
		return
	}
	if err := s.pictureStorage.Delete(ctx, name); err != nil {
		s.log.Warning(ctx, "Could not delete picture.", logging.Entry("picture", name), logging.Entry("err", err))
	}
}
