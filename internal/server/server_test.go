package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-monthgrid/internal/config"
)

const sampleFeed = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nEND:VCALENDAR\r\n"

// serve runs one request through the handler.
func serve(srv *FeedServer, method string, headers map[string]string) *http.Response {
	req := httptest.NewRequest(method, "/", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	srv.handleFeedRequest(w, req)
	return w.Result()
}

// TestHandler_ServingContent verifies headers and body once a feed is published.
func TestHandler_ServingContent(t *testing.T) {
	srv := NewFeedServer("0")
	srv.Publish([]byte(sampleFeed))

	resp := serve(srv, http.MethodGet, nil)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, config.MimeTextCalendar, resp.Header.Get(config.HeaderContentType))
	assert.Equal(t, config.MimeNoSniff, resp.Header.Get(config.HeaderXContentType))
	assert.Contains(t, resp.Header.Get(config.HeaderCacheControl), "no-cache")
	assert.NotEmpty(t, resp.Header.Get(config.HeaderETag))
	assert.NotEmpty(t, resp.Header.Get(config.HeaderLastModified))

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, sampleFeed, string(body))
}

func TestHandler_Head(t *testing.T) {
	srv := NewFeedServer("0")
	srv.Publish([]byte(sampleFeed))

	resp := serve(srv, http.MethodHead, nil)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Empty(t, body)
}

// TestHandler_ConditionalRequests covers ETag and Last-Modified revalidation.
func TestHandler_ConditionalRequests(t *testing.T) {
	srv := NewFeedServer("0")
	srv.Publish([]byte("DATA_VERSION_1"))

	first := serve(srv, http.MethodGet, nil)
	_ = first.Body.Close()
	etag := first.Header.Get(config.HeaderETag)
	lastMod := first.Header.Get(config.HeaderLastModified)
	require.NotEmpty(t, etag, "Server must provide an ETag")

	tests := []struct {
		name    string
		headers map[string]string
		want    int
	}{
		{"Matching ETag", map[string]string{config.HeaderIfNoneMatch: etag}, http.StatusNotModified},
		{"Stale ETag", map[string]string{config.HeaderIfNoneMatch: `"old"`}, http.StatusOK},
		{"Stale ETag wins over a fresh date", map[string]string{
			config.HeaderIfNoneMatch:     `"old"`,
			config.HeaderIfModifiedSince: lastMod,
		}, http.StatusOK},
		{"Not modified since", map[string]string{config.HeaderIfModifiedSince: lastMod}, http.StatusNotModified},
		{"Modified since an older date", map[string]string{
			config.HeaderIfModifiedSince: time.Now().Add(-time.Hour).UTC().Format(http.TimeFormat),
		}, http.StatusOK},
		{"Unparsable date", map[string]string{config.HeaderIfModifiedSince: "yesterday"}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := serve(srv, http.MethodGet, tt.headers)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.want, resp.StatusCode)
			if tt.want == http.StatusNotModified {
				body, _ := io.ReadAll(resp.Body)
				assert.Empty(t, body, "Body must be empty on 304 Not Modified")
			}
		})
	}
}

func TestHandler_NewSelectionChangesETag(t *testing.T) {
	srv := NewFeedServer("0")

	srv.Publish([]byte("DAY_1"))
	before := serve(srv, http.MethodGet, nil)
	_ = before.Body.Close()

	srv.Publish([]byte("DAY_2"))
	after := serve(srv, http.MethodGet, map[string]string{config.HeaderIfNoneMatch: before.Header.Get(config.HeaderETag)})
	defer func() { _ = after.Body.Close() }()

	assert.Equal(t, http.StatusOK, after.StatusCode)
	assert.Equal(t, []byte("DAY_2"), srv.Current())
}

// TestHandler_MethodNotAllowed ensures strictly GET and HEAD are accepted.
func TestHandler_MethodNotAllowed(t *testing.T) {
	srv := NewFeedServer("0")

	resp := serve(srv, http.MethodPost, nil)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.Equal(t, config.AllowedMethods, resp.Header.Get(config.HeaderAllow))
}

// TestHandler_Initializing verifies the 503 behavior before the first publish.
func TestHandler_Initializing(t *testing.T) {
	srv := NewFeedServer("0")

	resp := serve(srv, http.MethodGet, nil)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, config.RetryAfterSeconds, resp.Header.Get(config.HeaderRetryAfter))
	assert.Nil(t, srv.Current())
}

func TestStart_RequiresPort(t *testing.T) {
	err := NewFeedServer("").Start(context.Background())
	assert.EqualError(t, err, config.ErrPortRequired)
}

// TestServer_RaceCondition publishes and serves concurrently.
// Run this with `go test -race`.
func TestServer_RaceCondition(t *testing.T) {
	srv := NewFeedServer("0")
	handler := srv.Handler()
	var wg sync.WaitGroup
	end := time.Now().Add(300 * time.Millisecond)

	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := 0; time.Now().Before(end); i++ {
				srv.Publish([]byte(fmt.Sprintf("DAY:%d-%d", id, i)))
				time.Sleep(time.Microsecond)
			}
		}(w)
	}

	for r := 0; r < 16; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for time.Now().Before(end) {
				w := httptest.NewRecorder()
				handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
				if w.Code != http.StatusOK && w.Code != http.StatusServiceUnavailable {
					t.Errorf("Unexpected status code during race test: %d", w.Code)
				}
			}
		}()
	}

	wg.Wait()
}

// TestServer_Lifecycle binds a real listener and checks graceful shutdown.
func TestServer_Lifecycle(t *testing.T) {
	const port = "18099"

	srv := NewFeedServer(port)
	ctx, cancel := context.WithCancel(context.Background())
	errChan := make(chan error, 1)

	go func() {
		errChan <- srv.Start(ctx)
	}()

	url := "http://127.0.0.1:" + port + "/"

	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return true
	}, 2*time.Second, 50*time.Millisecond, "Server failed to bind/listen in time")

	resp, err := http.Get(url)
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	_ = resp.Body.Close()

	srv.Publish([]byte(sampleFeed))

	resp, err = http.Get(url)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	assert.Contains(t, string(body), "BEGIN:VCALENDAR")

	cancel()

	select {
	case err := <-errChan:
		assert.NoError(t, err, "Server should shutdown gracefully without error")
	case <-time.After(5 * time.Second):
		t.Fatal("Server shutdown timed out")
	}
}
