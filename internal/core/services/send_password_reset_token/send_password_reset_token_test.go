package sendpasswordresettoken

import (
	c "blog/internal/core/domain/common"
	"blog/internal/core/domain/logging"
	"blog/internal/core/domain/user"
	"blog/internal/core/services"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

const (
	EMAIL = c.Email("john@example.com")
	TOKEN = "test-reset-token"
)

type testSuite struct {
	suite.Suite
	Logger           *logging.FakeLogger
	UserRepository   *user.FakeUserRepository
	PasswordResetter *user.FakePasswordResetter
	Sender           *user.FakePasswordResetTokenSender
	Service          services.Service[Input, Result]
	User             user.User
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.UserRepository = user.NewFakeUserRepository()
	suite.PasswordResetter = user.NewFakePasswordResetter(TOKEN, 0, nil)
	suite.Sender = user.NewFakePasswordResetTokenSender()
	suite.Service = New(
		suite.Logger,
		suite.UserRepository,
		suite.PasswordResetter,
		suite.Sender,
	)

	u, err := suite.UserRepository.Create(context.Background(), user.CreateUserInput{
		Username:     "john",
		Email:        EMAIL,
		PasswordHash: "hash",
		CreatedAt:    time.Now(),
	})
	suite.Require().Nil(err)
	suite.User = u
}

func TestSendPasswordResetTokenService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestSuccess() {
	_, err := s.Service.Run(context.Background(), Input{Email: EMAIL})

	assert := s.Require()
	assert.Nil(err)
	assert.Equal([]user.ID{s.User.ID}, s.PasswordResetter.Issued)
	assert.Equal(1, s.Sender.SentCount())
	assert.Equal(user.PasswordResetToken(TOKEN), s.Sender.Sent[0])
	assert.Equal(s.User.ID, s.Sender.SentTo[0].ID)
}

func (s *testSuite) TestUnknownEmail() {
	_, err := s.Service.Run(context.Background(), Input{Email: "nobody@example.com"})

	assert := s.Require()
	assert.ErrorIs(err, user.ErrUserDoesNotExist)
	assert.Empty(s.PasswordResetter.Issued)
	assert.Equal(0, s.Sender.SentCount())
}

func (s *testSuite) TestSenderError() {
	s.Sender.ReturnError = true

	_, err := s.Service.Run(context.Background(), Input{Email: EMAIL})

	assert := s.Require()
	assert.NotNil(err)
	assert.Equal(1, s.Logger.CountByLevel(logging.ERROR))
}

func (s *testSuite) TestRateLimitKey() {
	s.Equal("send-password-reset-token::john@example.com", Input{Email: EMAIL}.GetRateLimitKey())
}
