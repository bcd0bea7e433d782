package fallback

import (
	"blog/internal/core/domain/logging"
	"blog/internal/http/handlers/response"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/getsentry/sentry-go"
)

func NotFound(rw http.ResponseWriter, r *http.Request) {
	response.RenderNotFound(rw)
}

func MethodNotAllowed(rw http.ResponseWriter, r *http.Request) {
	response.RenderError(rw, "method not allowed", http.StatusMethodNotAllowed)
}

// Recoverer turns a panic into a JSON 500 response and reports it to Sentry.
// http.ErrAbortHandler is re-raised so the server can abort the connection.
func Recoverer(log logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				log.Error(
					r.Context(),
					"Panic while handling request.",
					logging.Entry("panic", fmt.Sprintf("%v", rec)),
					logging.Entry("method", r.Method),
					logging.Entry("path", r.URL.Path),
					logging.Entry("stack", string(debug.Stack())),
				)
				sentry.CurrentHub().Recover(rec)
				response.RenderInternalError(rw)
			}()

			next.ServeHTTP(rw, r)
		})
	}
}
