package events

import (
	"blog/internal/core/domain/logging"
	"blog/internal/core/domain/post"
	postfeed "blog/internal/implementations/post_feed"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/r3labs/sse/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventsStreamReplaysPublishedPosts(t *testing.T) {
	server := sse.New()
	server.AutoReplay = true
	defer server.Close()
	log := logging.NewFakeLogger()

	feed := postfeed.NewSSE(server)
	err := feed.Publish(context.Background(), post.Event{
		Type: post.EventPostCreated,
		Post: post.PostWithAuthor{Post: post.Post{ID: 1, Title: "First"}},
	})
	require.Nil(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	req := httptest.NewRequest(http.MethodGet, "/posts/events?stream=other", nil).WithContext(ctx)
	rec := httptest.NewRecorder()

	New(log, server).ServeHTTP(rec, req)

	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "event: "+string(post.EventPostCreated))
	assert.Contains(t, rec.Body.String(), `"title":"First"`)
	assert.Equal(t, 2, log.CountByLevel(logging.INFO))
}

func TestEventsCreatesMissingStream(t *testing.T) {
	server := sse.New()
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodGet, "/posts/events", nil).WithContext(ctx)

	New(logging.NewFakeLogger(), server).ServeHTTP(httptest.NewRecorder(), req)

	assert.True(t, server.StreamExists(postfeed.StreamID))
}
