package posts

import (
	"blog/internal/core/domain/post"
	"blog/internal/core/domain/user"
	"blog/internal/http/handlers/response"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

const MAX_PER_PAGE = 50

// RenderError writes the response for an error returned by a post service.
func RenderError(rw http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, user.ErrUserDoesNotExist):
		response.RenderUnauthorized(rw)
	case errors.Is(err, post.ErrPostDoesNotExist), errors.Is(err, post.ErrPageNotFound):
		response.RenderNotFound(rw)
	case errors.Is(err, post.ErrPostPermission):
		response.RenderForbidden(rw)
	case errors.Is(err, post.ErrEmptyTitle),
		errors.Is(err, post.ErrTitleTooLong),
		errors.Is(err, post.ErrEmptyContent):
		response.RenderUnprocessable(rw, err.Error())
	default:
		response.RenderInternalError(rw)
	}
}

// ParsePostID reads the postID URL parameter.
func ParsePostID(r *http.Request) (post.ID, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "postID"), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return post.ID(id), true
}

// ParsePage reads the page and per_page query parameters. Missing values are zero.
func ParsePage(r *http.Request) (page int, perPage uint, ok bool) {
	page = 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, false
		}
		page = parsed
	}
	if raw := r.URL.Query().Get("per_page"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 8)
		if err != nil || parsed > MAX_PER_PAGE {
			return 0, 0, false
		}
		perPage = uint(parsed)
	}
	return page, perPage, true
}
