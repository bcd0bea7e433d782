package listposts

import (
	e "blog/internal/core/domain/errors"
	"blog/internal/core/services"
	service "blog/internal/core/services/list_posts"
	"blog/internal/http/handlers/posts"
	"blog/internal/http/handlers/response"
	"net/http"
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
	Posts      []response.Post     `json:"posts"`
	Pagination response.Pagination `json:"pagination"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	page, perPage, ok := posts.ParsePage(r)
	if !ok {
		response.RenderError(rw, "invalid page query parameter", http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(r.Context(), service.Input{Page: page, PerPage: perPage})
	if err != nil {
		posts.RenderError(rw, err)
		return
	}

	res := Result{Posts: response.Posts(result.Posts)}
	res.Pagination.FromDomainPagination(result.Pagination)
	response.Render(rw, res, http.StatusOK)
}
