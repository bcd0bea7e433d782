package listuserposts

import (
	e "blog/internal/core/domain/errors"
	"blog/internal/core/domain/user"
	"blog/internal/core/services"
	service "blog/internal/core/services/list_user_posts"
	"blog/internal/http/handlers/posts"
	"blog/internal/http/handlers/response"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(service services.Service[service.Input, service.Result]) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Result struct {
	Author     response.Author     `json:"author"`
	Posts      []response.Post     `json:"posts"`
	Pagination response.Pagination `json:"pagination"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if username == "" || len(username) > 64 {
		response.RenderNotFound(rw)
		return
	}
	page, perPage, ok := posts.ParsePage(r)
	if !ok {
		response.RenderError(rw, "invalid page query parameter", http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(
		r.Context(),
		service.Input{Username: user.Username(username), Page: page, PerPage: perPage},
	)
	if errors.Is(err, user.ErrUserDoesNotExist) {
		response.RenderNotFound(rw)
		return
	}
	if err != nil {
		posts.RenderError(rw, err)
		return
	}

	res := Result{Posts: response.Posts(result.Posts)}
	res.Author.FromDomainAuthor(result.Author)
	res.Pagination.FromDomainPagination(result.Pagination)
	response.Render(rw, res, http.StatusOK)
}
