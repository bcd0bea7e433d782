package app

import (
	"blog/internal/app/deps"
	"blog/internal/app/services"
	"blog/internal/config"
	"blog/internal/core/domain/logging"
	"blog/internal/core/domain/picture"
	"blog/internal/core/domain/post"
	ratelimiter "blog/internal/core/domain/rate_limiter"
	uow "blog/internal/core/domain/unit_of_work"
	"blog/internal/core/domain/user"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/r3labs/sse/v2"
	"github.com/stretchr/testify/suite"
)

type testSuite struct {
	suite.Suite
	router      http.Handler
	users       *user.FakeUserRepository
	feed        *post.FakeFeed
	resetSender *user.FakePasswordResetTokenSender
	sseServer   *sse.Server
	now         time.Time
}

func (s *testSuite) SetupTest() {
	s.now = time.Date(2020, 4, 21, 10, 0, 0, 0, time.UTC)
	log := logging.NewFakeLogger()

	s.users = user.NewFakeUserRepository()
	sessions := user.NewFakeSessionRepository(s.users)
	posts := post.NewFakeRepository(s.users)
	s.feed = post.NewFakeFeed()
	s.resetSender = user.NewFakePasswordResetTokenSender()
	s.sseServer = sse.New()

	d := &deps.Deps{
		Config: &config.Config{
			SessionTTL:         time.Hour,
			RememberSessionTTL: 24 * time.Hour,
		},
		Logger:     log,
		SseServer:  s.sseServer,
		Now:        func() time.Time { return s.now },
		UnitOfWork: &uow.FakeUnitOfWork{Context: uow.NewFakeUnitOfWorkContext(s.users, sessions, posts)},

		UserRepository:    s.users,
		SessionRepository: sessions,
		PostRepository:    posts,

		RateLimiter: ratelimiter.NewFakeRateLimiter(true),

		UserSessionTokenGenerator: user.NewFakeSessionTokenGenerator("session-token"),
		PasswordHasher:            user.NewFakePasswordHasher(),
		PasswordResetter:          user.NewFakePasswordResetter("reset-token", 1, nil),
		PasswordResetTokenSender:  s.resetSender,

		PictureProcessor: picture.NewFakeProcessor(),
		PictureStorage:   picture.NewFakeStorage(),
		PostFeed:         s.feed,
	}

	s.router = NewRouter(
		RouterOptions{Log: log, SseServer: s.sseServer, AllowedOrigins: []string{"*"}},
		services.InitServices(d),
	)
}

func (s *testSuite) TearDownTest() {
	s.sseServer.Close()
}

func TestApp(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) do(method string, url string, body string, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *testSuite) register() {
	rec := s.do(
		http.MethodPost,
		"/auth/register",
		`{"username":"john","email":"John@Example.com","password":"secret","confirm_password":"secret"}`,
		"",
	)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
}

func (s *testSuite) logIn() string {
	rec := s.do(http.MethodPost, "/auth/login", `{"email":"john@example.com","password":"secret"}`, "")
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	result := struct {
		Token string `json:"token"`
	}{}
	s.Require().Nil(json.Unmarshal(rec.Body.Bytes(), &result))
	return result.Token
}

func (s *testSuite) TestRegisterLogInAndWritePost() {
	s.register()
	token := s.logIn()
	s.Equal("session-token", token)

	rec := s.do(http.MethodGet, "/account", "", token)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"username":"john"`)

	rec = s.do(http.MethodPost, "/posts", `{"title":"Hello","content":"World"}`, token)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	s.Len(s.feed.Events, 1)

	rec = s.do(http.MethodGet, "/posts", "", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"title":"Hello"`)

	rec = s.do(http.MethodGet, "/posts/1", "", "")
	s.Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/users/john/posts", "", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"total":1`)

	rec = s.do(http.MethodPatch, "/posts/1", `{"title":"Hello again"}`, token)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"title":"Hello again"`)

	rec = s.do(http.MethodDelete, "/posts/1", "", token)
	s.Equal(http.StatusOK, rec.Code)
	s.Len(s.feed.Events, 3)

	rec = s.do(http.MethodGet, "/posts/1", "", "")
	s.Equal(http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodPost, "/auth/logout", "", token)
	s.Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/account", "", token)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *testSuite) TestPostsRequireAuthentication() {
	rec := s.do(http.MethodPost, "/posts", `{"title":"Hello","content":"World"}`, "")
	s.Equal(http.StatusUnauthorized, rec.Code)

	rec = s.do(http.MethodDelete, "/posts/1", "", "unknown")
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Empty(s.feed.Events)
}

func (s *testSuite) TestPasswordReset() {
	s.register()

	rec := s.do(http.MethodPost, "/auth/password_reset/token", `{"email":"john@example.com"}`, "")
	s.Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.Equal(1, s.resetSender.SentCount())

	rec = s.do(
		http.MethodPut,
		"/auth/password_reset",
		`{"token":"reset-token","password":"new-secret","confirm_password":"new-secret"}`,
		"",
	)
	s.Equal(http.StatusOK, rec.Code, rec.Body.String())

	rec = s.do(http.MethodPost, "/auth/login", `{"email":"john@example.com","password":"new-secret"}`, "")
	s.Equal(http.StatusOK, rec.Code)
}

func (s *testSuite) TestFallbackRoutes() {
	rec := s.do(http.MethodGet, "/missing", "", "")
	s.Equal(http.StatusNotFound, rec.Code)
	s.JSONEq(`{"error":"not found"}`, rec.Body.String())

	rec = s.do(http.MethodGet, "/users/nobody/posts", "", "")
	s.Equal(http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodDelete, "/account", "", "")
	s.Equal(http.StatusMethodNotAllowed, rec.Code)

	rec = s.do(http.MethodGet, "/posts?page=2", "", "")
	s.Equal(http.StatusNotFound, rec.Code)
}
