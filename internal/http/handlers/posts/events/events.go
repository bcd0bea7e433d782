package events

import (
	e "blog/internal/core/domain/errors"
	"blog/internal/core/domain/logging"
	postfeed "blog/internal/implementations/post_feed"
	"net/http"

	"github.com/r3labs/sse/v2"
)

// Handler streams post events to any client, authenticated or not.
type Handler struct {
	log       logging.Logger
	sseServer *sse.Server
}

func New(log logging.Logger, sseServer *sse.Server) *Handler {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if sseServer == nil {
		panic(e.NewNilArgumentError("sseServer"))
	}
	return &Handler{log: log, sseServer: sseServer}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	if !h.sseServer.StreamExists(postfeed.StreamID) {
		h.sseServer.CreateStream(postfeed.StreamID)
	}

	query := r.URL.Query()
	query.Set("stream", postfeed.StreamID)
	r.URL.RawQuery = query.Encode()

	h.log.Info(r.Context(), "Subscribed to post events.")
	h.sseServer.ServeHTTP(rw, r)
	h.log.Info(r.Context(), "Unsubscribed from post events.")
}
