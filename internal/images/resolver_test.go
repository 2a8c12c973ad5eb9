package images

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestResolver(baseURL string) *GoogleResolver {
	r := NewGoogleResolver(2*time.Second, zap.NewNop().Sugar())
	r.baseURL = baseURL
	return r
}

func TestResolvePicksFirstUsableImage(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		fmt.Fprint(w, `<html><body>
			<img src="/relative/thumb.png">
			<img src="https://cdn.example.com/site-logo.png">
			<img src="https://cdn.example.com/items/sut.jpg">
			<img src="https://cdn.example.com/items/second.jpg">
		</body></html>`)
	}))
	defer srv.Close()

	got := newTestResolver(srv.URL).Resolve(context.Background(), "Süt 1 LT")

	assert.Equal(t, "https://cdn.example.com/items/sut.jpg", got)
	assert.Equal(t, "Süt 1 LT", gotQuery)
}

func TestResolveNoImages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `<html><body><p>nothing here</p></body></html>`)
	}))
	defer srv.Close()

	assert.Empty(t, newTestResolver(srv.URL).Resolve(context.Background(), "Süt"))
}

func TestResolveServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	assert.Empty(t, newTestResolver(srv.URL).Resolve(context.Background(), "Süt"))
}

// A dead endpoint is "no image", never an error.
func TestResolveUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	assert.Empty(t, newTestResolver(srv.URL).Resolve(context.Background(), "Süt"))
}

func TestNopResolver(t *testing.T) {
	assert.Empty(t, NopResolver{}.Resolve(context.Background(), "anything"))
}
