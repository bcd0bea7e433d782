package deletepost

import (
	"blog/internal/core/domain/post"
	"blog/internal/core/domain/user"
	service "blog/internal/core/services/delete_post"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

type stubService struct {
	err   error
	input *service.Input
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	s.input = &input
	return result, s.err
}

func TestDeletePostHandler(t *testing.T) {
	cases := []struct {
		url            string
		err            error
		expectedStatus int
	}{
		{url: "/posts/3", expectedStatus: http.StatusOK},
		{url: "/posts/0", expectedStatus: http.StatusNotFound},
		{url: "/posts/3", err: post.ErrPostPermission, expectedStatus: http.StatusForbidden},
		{url: "/posts/3", err: post.ErrPostDoesNotExist, expectedStatus: http.StatusNotFound},
		{url: "/posts/3", err: user.ErrUserDoesNotExist, expectedStatus: http.StatusUnauthorized},
	}
	for _, testCase := range cases {
		stub := &stubService{err: testCase.err}
		router := chi.NewRouter()
		router.Delete("/posts/{postID}", New(stub).ServeHTTP)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, testCase.url, nil))

		assert.Equal(t, testCase.expectedStatus, rec.Code, testCase.url)
		if testCase.expectedStatus == http.StatusOK {
			assert.Equal(t, post.ID(3), stub.input.PostID)
		}
	}
}
