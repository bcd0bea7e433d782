package user

import (
	c "blog/internal/core/domain/common"
	"blog/internal/core/domain/user"
	"blog/internal/db"
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/suite"
)

const (
	USERNAME      = user.Username("john")
	EMAIL         = c.Email("john@example.com")
	PASSWORD_HASH = user.PasswordHash("test-password-hash")
)

var NOW time.Time = time.Date(2020, 6, 6, 15, 30, 30, 0, time.UTC)

type testSuite struct {
	suite.Suite
	pool *pgxpool.Pool
	repo *PgxUserRepository
}

func (suite *testSuite) SetupSuite() {
	suite.pool = db.CreateTestPool()
	suite.repo = NewPgxRepository(suite.pool)
}

func (suite *testSuite) TearDownSuite() {
	suite.pool.Close()
}

func (suite *testSuite) TearDownTest() {
	db.TruncateTables(suite.pool)
}

func TestPgxUserRepository(t *testing.T) {
	db.SkipWithoutTestDB(t)
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestCreateSuccess() {
	u := s.createUser(USERNAME, EMAIL)

	assert := s.Require()
	assert.NotEqual(user.ID(0), u.ID)
	assert.Equal(USERNAME, u.Username)
	assert.Equal(EMAIL, u.Email)
	assert.Equal(PASSWORD_HASH, u.PasswordHash)
	assert.Equal(user.DefaultImageFile, u.ImageFile)
	assert.True(NOW.Equal(u.CreatedAt))
}

func (s *testSuite) TestCreateDuplicates() {
	s.createUser(USERNAME, EMAIL)

	_, err := s.repo.Create(context.Background(), user.CreateUserInput{
		Username:     USERNAME,
		Email:        "other@example.com",
		PasswordHash: PASSWORD_HASH,
		CreatedAt:    NOW,
	})
	s.ErrorIs(err, user.ErrUsernameAlreadyExists)

	_, err = s.repo.Create(context.Background(), user.CreateUserInput{
		Username:     "other",
		Email:        EMAIL,
		PasswordHash: PASSWORD_HASH,
		CreatedAt:    NOW,
	})
	s.ErrorIs(err, user.ErrEmailAlreadyExists)
}

func (s *testSuite) TestGetters() {
	created := s.createUser(USERNAME, EMAIL)
	ctx := context.Background()

	byID, err := s.repo.GetByID(ctx, created.ID)
	s.Nil(err)
	s.Equal(created.ID, byID.ID)

	byEmail, err := s.repo.GetByEmail(ctx, EMAIL)
	s.Nil(err)
	s.Equal(created.ID, byEmail.ID)

	byUsername, err := s.repo.GetByUsername(ctx, USERNAME)
	s.Nil(err)
	s.Equal(created.ID, byUsername.ID)

	_, err = s.repo.GetByID(ctx, created.ID+1)
	s.ErrorIs(err, user.ErrUserDoesNotExist)
	_, err = s.repo.GetByEmail(ctx, "nobody@example.com")
	s.ErrorIs(err, user.ErrUserDoesNotExist)
	_, err = s.repo.GetByUsername(ctx, "nobody")
	s.ErrorIs(err, user.ErrUserDoesNotExist)
}

func (s *testSuite) TestUpdate() {
	created := s.createUser(USERNAME, EMAIL)
	other := s.createUser("jane", "jane@example.com")
	ctx := context.Background()

	updated, err := s.repo.Update(ctx, user.UpdateUserInput{
		ID:                created.ID,
		DoImageFileUpdate: true,
		ImageFile:         "abc.png",
	})
	s.Nil(err)
	s.Equal(USERNAME, updated.Username)
	s.Equal(user.ImageFile("abc.png"), updated.ImageFile)

	_, err = s.repo.Update(ctx, user.UpdateUserInput{
		ID:               created.ID,
		DoUsernameUpdate: true,
		Username:         other.Username,
	})
	s.ErrorIs(err, user.ErrUsernameAlreadyExists)

	_, err = s.repo.Update(ctx, user.UpdateUserInput{
		ID:            created.ID,
		DoEmailUpdate: true,
		Email:         other.Email,
	})
	s.ErrorIs(err, user.ErrEmailAlreadyExists)

	_, err = s.repo.Update(ctx, user.UpdateUserInput{ID: other.ID + 100, DoUsernameUpdate: true, Username: "x"})
	s.ErrorIs(err, user.ErrUserDoesNotExist)
}

func (s *testSuite) TestSetPassword() {
	created := s.createUser(USERNAME, EMAIL)
	ctx := context.Background()

	s.Nil(s.repo.SetPassword(ctx, created.ID, "new-hash"))
	u, err := s.repo.GetByID(ctx, created.ID)
	s.Nil(err)
	s.Equal(user.PasswordHash("new-hash"), u.PasswordHash)

	s.ErrorIs(s.repo.SetPassword(ctx, created.ID+1, "new-hash"), user.ErrUserDoesNotExist)
}

func (s *testSuite) createUser(username user.Username, email c.Email) user.User {
	s.T().Helper()
	u, err := s.repo.Create(context.Background(), user.CreateUserInput{
		Username:     username,
		Email:        email,
		PasswordHash: PASSWORD_HASH,
		CreatedAt:    NOW,
	})
	if err != nil {
		s.FailNow(err.Error())
	}
	return u
}
