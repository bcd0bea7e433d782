package register

import (
	c "blog/internal/core/domain/common"
	e "blog/internal/core/domain/errors"
	"blog/internal/core/domain/user"
	"blog/internal/core/services"
	signup "blog/internal/core/services/sign_up"
	"blog/internal/http/handlers/response"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type Handler struct {
	service services.Service[signup.Input, signup.Result]
}

func New(service services.Service[signup.Input, signup.Result]) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type Result struct {
	User response.User `json:"user"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Username, validation.Required, validation.RuneLength(2, 20)),
		validation.Field(&i.Email, validation.Required, is.Email, validation.Length(0, 120)),
		validation.Field(&i.Password, validation.Required, validation.Length(0, 512)),
		validation.Field(
			&i.ConfirmPassword,
			validation.Required,
			validation.In(i.Password).Error("must be equal to password"),
		),
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

	result, err := h.service.Run(
		r.Context(),
		signup.Input{
			Username: user.Username(input.Username),
			Email:    c.NewEmail(input.Email),
			Password: user.RawPassword(input.Password),
		},
	)
	if errors.Is(err, user.ErrUsernameAlreadyExists) {
		response.RenderUnprocessable(rw, "that username is taken")
		return
	}
	if errors.Is(err, user.ErrEmailAlreadyExists) {
		response.RenderUnprocessable(rw, "that email is taken")
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	u := response.User{}
	u.FromDomainUser(result.User)
	response.Render(rw, Result{User: u}, http.StatusCreated)
}
