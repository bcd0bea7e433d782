package resetpassword

import (
	e "blog/internal/core/domain/errors"
	"blog/internal/core/domain/logging"
	"blog/internal/core/domain/user"
	"blog/internal/core/services"
	"context"
	"errors"
)

type Input struct {
	Token       user.PasswordResetToken
	NewPassword user.RawPassword
}

type Result struct{}

type service struct {
	log              logging.Logger
	userRepository   user.UserRepository
	passwordResetter user.PasswordResetter
	passwordHasher   user.PasswordHasher
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	passwordResetter user.PasswordResetter,
	passwordHasher user.PasswordHasher,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if passwordResetter == nil {
		panic(e.NewNilArgumentError("passwordResetter"))
	}
	if passwordHasher == nil {
		panic(e.NewNilArgumentError("passwordHasher"))
	}
	return &service{
		log:              log,
		userRepository:   userRepository,
		passwordResetter: passwordResetter,
		passwordHasher:   passwordHasher,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	userID, err := s.passwordResetter.Verify(input.Token)
	if err != nil {
		s.log.Info(ctx, "Invalid or expired password reset token.")
		return result, user.ErrInvalidOrExpiredToken
	}

	u, err := s.userRepository.GetByID(ctx, userID)
	if errors.Is(err, user.ErrUserDoesNotExist) {
		s.log.Info(ctx, "User not found for password reset.", logging.Entry("userId", userID))
		return result, user.ErrInvalidOrExpiredToken
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userId", userID))
		return result, err
	}

	newPasswordHash, err := s.passwordHasher.HashPassword(input.NewPassword)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userId", u.ID))
		return result, err
	}
	err = s.userRepository.SetPassword(ctx, u.ID, newPasswordHash)
	if errors.Is(err, user.ErrUserDoesNotExist) {
		return result, user.ErrInvalidOrExpiredToken
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userId", u.ID))
		return result, err
	}

	s.log.Info(ctx, "New password has been successfully set.", logging.Entry("userId", u.ID))
	return result, nil
}
