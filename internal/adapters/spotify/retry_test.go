package spotify

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestDoRequestWithRetryRecoversFromTransientFailure(t *testing.T) {
	attempts := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		fmt.Fprint(w, `{ "albums": { "items": [] } }`)
	}))
	defer ts.Close()

	c := NewClient(ts.Client(), ts.URL, nil)
	c.baseBackoff = time.Millisecond

	albums, err := c.searchAlbums(context.Background(), "anything", 1)
	if err != nil {
		t.Fatal(err)
	}
	if attempts != 2 {
		t.Errorf("attempts: got %d, want 2", attempts)
	}
	if len(albums) != 0 {
		t.Errorf("unexpected albums: %+v", albums)
	}
}

func TestDoRequestWithRetryGivesUp(t *testing.T) {
	attempts := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	c := NewClient(ts.Client(), ts.URL, nil)
	c.maxRetries = 2
	c.baseBackoff = time.Millisecond

	_, err := c.searchAlbums(context.Background(), "anything", 1)
	if err == nil {
		t.Fatal("expected an error after exhausting retries")
	}
	if attempts != 2 {
		t.Errorf("attempts: got %d, want 2", attempts)
	}
}

func TestDoRequestWithRetryDoesNotRetryClientErrors(t *testing.T) {
	attempts := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	c := NewClient(ts.Client(), ts.URL, nil)
	c.baseBackoff = time.Millisecond

	_, err := c.searchAlbums(context.Background(), "anything", 1)
	if err == nil {
		t.Fatal("expected an error")
	}
	if attempts != 1 {
		t.Errorf("attempts: got %d, want 1 (4xx is not retryable)", attempts)
	}
}
