package response

import (
	"blog/internal/core/domain/post"
	"blog/internal/core/domain/user"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderError(t *testing.T) {
	rec := httptest.NewRecorder()

	RenderNotFound(rec)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"not found"}`, rec.Body.String())
}

func TestRenderHelpers(t *testing.T) {
	testCases := []struct {
		name   string
		render func(rw http.ResponseWriter)
		status int
		body   string
	}{
		{"forbidden", RenderForbidden, http.StatusForbidden, `{"error":"forbidden"}`},
		{"invalid request", RenderInvalidRequest, http.StatusBadRequest, `{"error":"invalid request data"}`},
		{
			"unprocessable",
			func(rw http.ResponseWriter) { RenderUnprocessable(rw, "that email is taken") },
			http.StatusUnprocessableEntity,
			`{"error":"that email is taken"}`,
		},
		{"rate limit", RenderRateLimitExceeded, http.StatusTooManyRequests, `{"error":"rate limit exceeded"}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tc.render(rec)
			assert.Equal(t, tc.status, rec.Code)
			assert.JSONEq(t, tc.body, rec.Body.String())
		})
	}
}

func TestRenderUnmarshalableValue(t *testing.T) {
	rec := httptest.NewRecorder()

	Render(rec, map[string]interface{}{"f": func() {}}, http.StatusOK)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Empty(t, rec.Header().Get("Content-Type"))
}

func TestPostFromDomain(t *testing.T) {
	datePosted := time.Date(2020, 8, 5, 13, 14, 15, 0, time.UTC)
	p := Post{}
	p.FromDomainPost(post.PostWithAuthor{
		Post: post.Post{ID: 7, Title: "T", Content: "C", DatePosted: datePosted, AuthorID: 3},
		Author: post.Author{
			ID:        3,
			Username:  "john",
			ImageFile: user.DefaultImageFile,
		},
	})

	content, err := json.Marshal(p)
	require.Nil(t, err)
	assert.JSONEq(t, `{
		"id": 7,
		"title": "T",
		"content": "C",
		"date_posted": "2020-08-05T13:14:15Z",
		"date": "2020-08-05",
		"author": {"id": 3, "username": "john", "image_file": "default.jpg"}
	}`, string(content))
}

func TestPaginationFromDomain(t *testing.T) {
	p := Pagination{}
	p.FromDomainPagination(post.Pagination{Page: post.Page{Number: 2, PerPage: 6}, Total: 13})

	assert.Equal(t, Pagination{Page: 2, PerPage: 6, Pages: 3, Total: 13, HasPrev: true, HasNext: true}, p)
}
