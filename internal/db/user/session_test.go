package user

import (
	"blog/internal/core/domain/user"
	"blog/internal/db"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/suite"
)

const (
	SESSION_TOKEN = "test-session-token"
)

type testSessionSuite struct {
	suite.Suite
	pool              *pgxpool.Pool
	userRepository    *PgxUserRepository
	sessionRepository *PgxSessionRepository
}

func (suite *testSessionSuite) SetupSuite() {
	suite.pool = db.CreateTestPool()
	suite.userRepository = NewPgxRepository(suite.pool)
	suite.sessionRepository = NewPgxSessionRepository(suite.pool)
	suite.sessionRepository.now = func() time.Time { return NOW }
}

func (suite *testSessionSuite) TearDownSuite() {
	suite.pool.Close()
}

func (suite *testSessionSuite) TearDownTest() {
	db.TruncateTables(suite.pool)
}

func TestPgxSessionRepository(t *testing.T) {
	db.SkipWithoutTestDB(t)
	suite.Run(t, new(testSessionSuite))
}

func (s *testSessionSuite) TestCreate() {
	createdUser := s.createUser()

	err := s.sessionRepository.Create(
		context.Background(),
		user.CreateSessionInput{
			UserID:    createdUser.ID,
			Token:     user.SessionToken(SESSION_TOKEN),
			CreatedAt: NOW,
			ExpiresAt: NOW.Add(time.Hour),
		},
	)
	u, ok := s.getUserByToken(user.SessionToken(SESSION_TOKEN))
	s.Nil(err)
	s.True(ok)
	s.Equal(createdUser.ID, u.ID)
}

func (s *testSessionSuite) TestExpiredSessionIgnored() {
	createdUser := s.createUser()

	err := s.sessionRepository.Create(
		context.Background(),
		user.CreateSessionInput{
			UserID:    createdUser.ID,
			Token:     user.SessionToken(SESSION_TOKEN),
			CreatedAt: NOW.Add(-2 * time.Hour),
			ExpiresAt: NOW.Add(-time.Hour),
		},
	)
	s.Nil(err)
	_, ok := s.getUserByToken(user.SessionToken(SESSION_TOKEN))
	s.False(ok)
}

func (s *testSessionSuite) TestDeleteSuccess() {
	createdUser := s.createUser()

	err := s.sessionRepository.Create(
		context.Background(),
		user.CreateSessionInput{
			UserID:    createdUser.ID,
			Token:     user.SessionToken(SESSION_TOKEN),
			CreatedAt: NOW,
			ExpiresAt: NOW.Add(time.Hour),
		},
	)
	s.Nil(err)

	userID, err := s.sessionRepository.Delete(context.Background(), user.SessionToken(SESSION_TOKEN))
	s.Nil(err)
	s.Equal(createdUser.ID, userID)
	_, ok := s.getUserByToken(user.SessionToken(SESSION_TOKEN))
	s.False(ok)

	_, err = s.sessionRepository.Delete(context.Background(), user.SessionToken(SESSION_TOKEN))
	s.ErrorIs(err, user.ErrSessionDoesNotExist)
}

func (s *testSessionSuite) createUser() user.User {
	s.T().Helper()
	u, err := s.userRepository.Create(
		context.Background(),
		user.CreateUserInput{
			Username:     USERNAME,
			Email:        EMAIL,
			PasswordHash: PASSWORD_HASH,
			CreatedAt:    NOW,
		},
	)
	if err != nil {
		s.FailNow(err.Error())
	}
	return u
}

func (s *testSessionSuite) getUserByToken(token user.SessionToken) (u user.User, ok bool) {
	u, err := s.sessionRepository.GetUserByToken(context.Background(), token)
	if errors.Is(err, user.ErrUserDoesNotExist) {
		return u, false
	}
	if err != nil {
		s.FailNow(err.Error())
	}
	return u, true
}
