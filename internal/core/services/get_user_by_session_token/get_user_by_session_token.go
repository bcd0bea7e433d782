package getuserbysessiontoken

import (
	e "blog/internal/core/domain/errors"
	"blog/internal/core/domain/logging"
	"blog/internal/core/domain/user"
	"blog/internal/core/services"
	"context"
	"errors"
)

type Input struct {
	Token user.SessionToken
}

type Result struct {
	User user.User
}

type service struct {
	log               logging.Logger
	sessionRepository user.SessionRepository
}

func New(
	log logging.Logger,
	sessionRepository user.SessionRepository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if sessionRepository == nil {
		panic(e.NewNilArgumentError("sessionRepository"))
	}
	return &service{
		log:               log,
		sessionRepository: sessionRepository,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if input.Token == "" {
		return result, user.ErrUserDoesNotExist
	}
	u, err := s.sessionRepository.GetUserByToken(ctx, input.Token)
	if err != nil && !errors.Is(err, user.ErrUserDoesNotExist) {
		logging.Error(ctx, s.log, err)
	}
	return Result{User: u}, err
}
