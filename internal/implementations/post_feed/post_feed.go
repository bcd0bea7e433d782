package postfeed

import (
	e "blog/internal/core/domain/errors"
	"blog/internal/core/domain/post"
	"context"
	"encoding/json"
	"time"

	"github.com/r3labs/sse/v2"
)

const StreamID = "posts"

type SSE struct {
	sseServer *sse.Server
}

func NewSSE(sseServer *sse.Server) *SSE {
	if sseServer == nil {
		panic(e.NewNilArgumentError("sseServer"))
	}
	if !sseServer.StreamExists(StreamID) {
		sseServer.CreateStream(StreamID)
	}
	return &SSE{sseServer: sseServer}
}

func (f *SSE) Publish(ctx context.Context, event post.Event) error {
	data, err := json.Marshal(newPayload(event))
	if err != nil {
		return err
	}
	f.sseServer.Publish(StreamID, &sse.Event{
		Event: []byte(event.Type),
		Data:  data,
	})
	return nil
}

type payload struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Author     string    `json:"author"`
	DatePosted time.Time `json:"datePosted"`
}

func newPayload(event post.Event) payload {
	return payload{
		ID:         int64(event.Post.ID),
		Title:      string(event.Post.Title),
		Author:     string(event.Post.Author.Username),
		DatePosted: event.Post.DatePosted,
	}
}
