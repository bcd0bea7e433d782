package signup

import (
	c "blog/internal/core/domain/common"
	e "blog/internal/core/domain/errors"
	"blog/internal/core/domain/logging"
	uow "blog/internal/core/domain/unit_of_work"
	"blog/internal/core/domain/user"
	"blog/internal/core/services"
	"context"
	"errors"
	"time"
)

type Input struct {
	Username user.Username
	Email    c.Email
	Password user.RawPassword
}

type Result struct {
	User user.User
}

type service struct {
	log            logging.Logger
	unitOfWork     uow.UnitOfWork
	passwordHasher user.PasswordHasher
	now            func() time.Time
}

func New(
	log logging.Logger,
	unitOfWork uow.UnitOfWork,
	passwordHasher user.PasswordHasher,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if unitOfWork == nil {
		panic(e.NewNilArgumentError("unitOfWork"))
	}
	if passwordHasher == nil {
		panic(e.NewNilArgumentError("passwordHasher"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:            log,
		unitOfWork:     unitOfWork,
		passwordHasher: passwordHasher,
		now:            now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	passwordHash, err := s.passwordHasher.HashPassword(input.Password)
	if err != nil {
		s.log.Error(ctx, "Could not hash password.", logging.Entry("err", err))
		return result, err
	}
	uow, err := s.unitOfWork.Begin(ctx)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("username", input.Username))
		return result, err
	}
	defer uow.Rollback(ctx)

	createdUser, err := uow.Users().Create(ctx, user.CreateUserInput{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: passwordHash,
		ImageFile:    user.DefaultImageFile,
		CreatedAt:    s.now(),
	})
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUsernameAlreadyExists):
			s.log.Info(ctx, "User with the username already exists.", logging.Entry("username", input.Username))
		case errors.Is(err, user.ErrEmailAlreadyExists):
			s.log.Info(ctx, "User with the email already exists.", logging.Entry("email", input.Email))
		default:
			logging.Error(ctx, s.log, err, logging.Entry("username", input.Username))
		}
		return result, err
	}

	if err := uow.Commit(ctx); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("username", input.Username))
		return result, err
	}

	s.log.Info(ctx, "New user has been created.", logging.Entry("userId", createdUser.ID))
	return Result{User: createdUser}, nil
}
