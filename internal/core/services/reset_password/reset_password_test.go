package resetpassword

import (
	"blog/internal/core/domain/logging"
	"blog/internal/core/domain/user"
	"blog/internal/core/services"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

const (
	TOKEN        = "test-reset-token"
	NEW_PASSWORD = user.RawPassword("new-password")
)

type testSuite struct {
	suite.Suite
	Logger           *logging.FakeLogger
	UserRepository   *user.FakeUserRepository
	PasswordResetter *user.FakePasswordResetter
	PasswordHasher   *user.FakePasswordHasher
	Service          services.Service[Input, Result]
	User             user.User
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.UserRepository = user.NewFakeUserRepository()
	suite.PasswordHasher = user.NewFakePasswordHasher()

	u, err := suite.UserRepository.Create(context.Background(), user.CreateUserInput{
		Username:     "john",
		Email:        "john@example.com",
		PasswordHash: "old-hash",
		CreatedAt:    time.Now(),
	})
	suite.Require().Nil(err)
	suite.User = u

	suite.PasswordResetter = user.NewFakePasswordResetter(TOKEN, u.ID, nil)
	suite.Service = New(
		suite.Logger,
		suite.UserRepository,
		suite.PasswordResetter,
		suite.PasswordHasher,
	)
}

func TestResetPasswordService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestSuccess() {
	_, err := s.Service.Run(context.Background(), Input{Token: TOKEN, NewPassword: NEW_PASSWORD})

	assert := s.Require()
	assert.Nil(err)
	u, err := s.UserRepository.GetByID(context.Background(), s.User.ID)
	assert.Nil(err)
	assert.True(s.PasswordHasher.ValidatePassword(NEW_PASSWORD, u.PasswordHash))
}

func (s *testSuite) TestInvalidToken() {
	s.PasswordResetter.Err = user.ErrInvalidOrExpiredToken

	_, err := s.Service.Run(context.Background(), Input{Token: "bad", NewPassword: NEW_PASSWORD})

	assert := s.Require()
	assert.ErrorIs(err, user.ErrInvalidOrExpiredToken)
	u, _ := s.UserRepository.GetByID(context.Background(), s.User.ID)
	assert.Equal(user.PasswordHash("old-hash"), u.PasswordHash)
}

func (s *testSuite) TestVerifierErrorIsNormalized() {
	s.PasswordResetter.Err = errors.New("unexpected")

	_, err := s.Service.Run(context.Background(), Input{Token: TOKEN, NewPassword: NEW_PASSWORD})

	s.Require().ErrorIs(err, user.ErrInvalidOrExpiredToken)
}

func (s *testSuite) TestUnknownUserReportedAsInvalidToken() {
	s.PasswordResetter.UserID = s.User.ID + 100

	_, err := s.Service.Run(context.Background(), Input{Token: TOKEN, NewPassword: NEW_PASSWORD})

	s.Require().ErrorIs(err, user.ErrInvalidOrExpiredToken)
}

func (s *testSuite) TestRepositoryError() {
	s.UserRepository.ReturnError = true

	_, err := s.Service.Run(context.Background(), Input{Token: TOKEN, NewPassword: NEW_PASSWORD})

	assert := s.Require()
	assert.NotNil(err)
	assert.NotErrorIs(err, user.ErrInvalidOrExpiredToken)
	assert.Equal(1, s.Logger.CountByLevel(logging.ERROR))
}
