package deletepost

import (
	e "blog/internal/core/domain/errors"
	"blog/internal/core/services"
	service "blog/internal/core/services/delete_post"
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

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	postID, ok := posts.ParsePostID(r)
	if !ok {
		response.RenderNotFound(rw)
		return
	}

	if _, err := h.service.Run(r.Context(), service.Input{PostID: postID}); err != nil {
		posts.RenderError(rw, err)
		return
	}
	response.Render(rw, struct{}{}, http.StatusOK)
}
