package response

import (
	"encoding/json"
	"net/http"
)

type errorResponse struct {
	Error string `json:"error"`
}

func RenderUnauthorized(rw http.ResponseWriter) {
	RenderError(rw, "invalid authentication token", http.StatusUnauthorized)
}

func RenderForbidden(rw http.ResponseWriter) {
	RenderError(rw, "forbidden", http.StatusForbidden)
}

func RenderInternalError(rw http.ResponseWriter) {
	RenderError(rw, "internal error", http.StatusInternalServerError)
}

func RenderRateLimitExceeded(rw http.ResponseWriter) {
	RenderError(rw, "rate limit exceeded", http.StatusTooManyRequests)
}

func RenderNotFound(rw http.ResponseWriter) {
	RenderError(rw, "not found", http.StatusNotFound)
}

// RenderInvalidRequest is used when a request body can not be decoded at all.
func RenderInvalidRequest(rw http.ResponseWriter) {
	RenderError(rw, "invalid request data", http.StatusBadRequest)
}

// RenderValidationErrors writes per-field validation errors as a JSON object.
func RenderValidationErrors(rw http.ResponseWriter, err error) {
	Render(rw, err, http.StatusBadRequest)
}

// RenderUnprocessable reports a well-formed request rejected by a service.
func RenderUnprocessable(rw http.ResponseWriter, msg string) {
	RenderError(rw, msg, http.StatusUnprocessableEntity)
}

func RenderError(rw http.ResponseWriter, msg string, status int) {
	Render(rw, errorResponse{Error: msg}, status)
}

func Render(rw http.ResponseWriter, res interface{}, status int) {
	content, err := json.Marshal(res)
	if err != nil {
		rw.WriteHeader(http.StatusInternalServerError)
		return
	}

	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(status)
	rw.Write(content)
}
