package createpost

import (
	e "blog/internal/core/domain/errors"
	"blog/internal/core/domain/post"
	"blog/internal/core/services"
	service "blog/internal/core/services/create_post"
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
	Title   string `json:"title"`
	Content string `json:"content"`
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
		validation.Field(&i.Title, validation.Required, validation.RuneLength(0, post.MaxTitleLength)),
		validation.Field(&i.Content, validation.Required),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderInvalidRequest(rw)
		return
	}
	if err := input.Validate(); err != nil {
		response.RenderValidationErrors(rw, err)
		return
	}

	result, err := h.service.Run(r.Context(), service.Input{Title: input.Title, Content: input.Content})
	if err != nil {
		posts.RenderError(rw, err)
		return
	}

	p := response.Post{}
	p.FromDomainPost(result.Post)
	response.Render(rw, Result{Post: p}, http.StatusCreated)
}
