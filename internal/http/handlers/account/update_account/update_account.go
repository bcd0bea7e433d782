package updateaccount

import (
	c "blog/internal/core/domain/common"
	e "blog/internal/core/domain/errors"
	"blog/internal/core/domain/picture"
	"blog/internal/core/domain/user"
	"blog/internal/core/services"
	service "blog/internal/core/services/update_account"
	"blog/internal/http/handlers/response"
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

const (
	PICTURE_FIELD       = "picture"
	MAX_MEMORY          = 1 << 20
	DEFAULT_MAX_REQUEST = 6 << 20
)

type Handler struct {
	service        services.Service[service.Input, service.Result]
	maxRequestSize int64
}

func New(
	service services.Service[service.Input, service.Result],
	maxRequestSize int64,
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	if maxRequestSize <= 0 {
		maxRequestSize = DEFAULT_MAX_REQUEST
	}
	return &Handler{service: service, maxRequestSize: maxRequestSize}
}

type Input struct {
	Username *string
	Email    *string
}

type Result struct {
	User response.User `json:"user"`
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Username, validation.NilOrNotEmpty, validation.RuneLength(2, 20)),
		validation.Field(&i.Email, validation.NilOrNotEmpty, is.Email, validation.Length(0, 120)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(rw, r.Body, h.maxRequestSize)
	if err := r.ParseMultipartForm(MAX_MEMORY); err != nil {
		response.RenderInvalidRequest(rw)
		return
	}
	defer r.MultipartForm.RemoveAll()

	input := Input{}
	if values, ok := r.MultipartForm.Value["username"]; ok && len(values) > 0 {
		input.Username = &values[0]
	}
	if values, ok := r.MultipartForm.Value["email"]; ok && len(values) > 0 {
		input.Email = &values[0]
	}
	if err := input.Validate(); err != nil {
		response.RenderValidationErrors(rw, err)
		return
	}

	serviceInput := service.Input{}
	if input.Username != nil {
		serviceInput.Username = c.NewOptional(user.Username(*input.Username), true)
	}
	if input.Email != nil {
		serviceInput.Email = c.NewOptional(c.NewEmail(*input.Email), true)
	}
	file, _, err := r.FormFile(PICTURE_FIELD)
	switch {
	case err == nil:
		defer file.Close()
		serviceInput.Picture = file
	case !errors.Is(err, http.ErrMissingFile):
		response.RenderError(rw, "invalid picture", http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(r.Context(), serviceInput)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUserDoesNotExist):
			response.RenderUnauthorized(rw)
		case errors.Is(err, user.ErrUsernameAlreadyExists):
			response.RenderUnprocessable(rw, "that username is taken")
		case errors.Is(err, user.ErrEmailAlreadyExists):
			response.RenderUnprocessable(rw, "that email is taken")
		case errors.Is(err, picture.ErrUnsupportedFormat), errors.Is(err, picture.ErrInvalidPicture):
			response.RenderUnprocessable(rw, err.Error())
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	u := response.User{}
	u.FromDomainUser(result.User)
	response.Render(rw, Result{User: u}, http.StatusOK)
}
