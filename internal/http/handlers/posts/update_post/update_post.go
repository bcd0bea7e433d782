package updatepost

import (
	c "blog/internal/core/domain/common"
	e "blog/internal/core/domain/errors"
	"blog/internal/core/domain/post"
	"blog/internal/core/services"
	service "blog/internal/core/services/update_post"
	"blog/internal/http/handlers/posts"
	"blog/internal/http/handlers/response"
	"encoding/json"
	"io"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
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

type Input struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

type Result struct {
	Post response.Post `json:"post"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Title, validation.NilOrNotEmpty, validation.RuneLength(0, post.MaxTitleLength)),
		validation.Field(&i.Content, validation.NilOrNotEmpty),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	postID, ok := posts.ParsePostID(r)
	if !ok {
		response.RenderNotFound(rw)
		return
	}

	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderInvalidRequest(rw)
		return
	}
	if err := input.Validate(); err != nil {
		response.RenderValidationErrors(rw, err)
		return
	}

	serviceInput := service.Input{PostID: postID}
	if input.Title != nil {
		serviceInput.Title = c.NewOptional(*input.Title, true)
	}
	if input.Content != nil {
		serviceInput.Content = c.NewOptional(*input.Content, true)
	}

	result, err := h.service.Run(r.Context(), serviceInput)
	if err != nil {
		posts.RenderError(rw, err)
		return
	}

	p := response.Post{}
	p.FromDomainPost(result.Post)
	response.Render(rw, Result{Post: p}, http.StatusOK)
}
