package getpost

import (
	e "blog/internal/core/domain/errors"
	"blog/internal/core/services"
	service "blog/internal/core/services/get_post"
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
	Post response.Post `json:"post"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	postID, ok := posts.ParsePostID(r)
	if !ok {
		response.RenderNotFound(rw)
		return
	}

	result, err := h.service.Run(r.Context(), service.Input{PostID: postID})
	if err != nil {
		posts.RenderError(rw, err)
		return
	}

	p := response.Post{}
	p.FromDomainPost(result.Post)
	response.Render(rw, Result{Post: p}, http.StatusOK)
}
