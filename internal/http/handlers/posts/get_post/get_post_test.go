package getpost

import (
	"blog/internal/core/domain/post"
	service "blog/internal/core/services/get_post"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

type stubService struct {
	posts map[post.ID]post.PostWithAuthor
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	p, ok := s.posts[input.PostID]
	if !ok {
		return result, post.ErrPostDoesNotExist
	}
	return service.Result{Post: p}, nil
}

func TestGetPostHandler(t *testing.T) {
	stub := &stubService{posts: map[post.ID]post.PostWithAuthor{
		1: {Post: post.Post{ID: 1, Title: "Hello", Content: "World", AuthorID: 1}},
	}}
	router := chi.NewRouter()
	router.Get("/posts/{postID}", New(stub).ServeHTTP)

	cases := map[string]int{
		"/posts/1":   http.StatusOK,
		"/posts/2":   http.StatusNotFound,
		"/posts/abc": http.StatusNotFound,
	}
	for url, expectedStatus := range cases {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))
		assert.Equal(t, expectedStatus, rec.Code, url)
	}
}
