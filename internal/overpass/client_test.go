package overpass

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/masajidusa/pipeline/internal/catalog"
)

var testBox = catalog.BBox{South: 38.9, West: -75.6, North: 41.4, East: -73.9}

// newTestClient returns a client pointed at url with fast retries so
// tests don't sleep for real backoff intervals.
func newTestClient(url string) *Client {
	return New(Config{
		URL:       url,
		Timeout:   5 * time.Second,
		Attempts:  3,
		RetryStep: time.Millisecond,
		Pause:     time.Millisecond,
	})
}

func TestFetchSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("failed to parse form: %v", err)
		}
		if !strings.Contains(r.PostForm.Get("data"), "place_of_worship") {
			t.Errorf("query missing place_of_worship tag: %q", r.PostForm.Get("data"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"elements": [
			{"type": "node", "id": 42, "lat": 40.1, "lon": -75.0, "tags": {"name": "Masjid Al-Noor"}},
			{"type": "way", "id": 7, "center": {"lat": 39.5, "lon": -74.8}, "tags": {}}
		]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	elements, err := client.Fetch(context.Background(), "new_jersey", testBox)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if len(elements) != 2 {
		t.Fatalf("Fetch() returned %d elements, want 2", len(elements))
	}
	if elements[0].Type != "node" || elements[0].ID != 42 {
		t.Errorf("elements[0] = %s_%d, want node_42", elements[0].Type, elements[0].ID)
	}
	if elements[0].Lat == nil || *elements[0].Lat != 40.1 {
		t.Errorf("elements[0].Lat = %v, want 40.1", elements[0].Lat)
	}
	if elements[1].Center == nil || elements[1].Center.Lat != 39.5 {
		t.Errorf("elements[1].Center = %v, want lat 39.5", elements[1].Center)
	}
}

func TestFetchEmptySuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"elements": []}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	elements, err := client.Fetch(context.Background(), "wyoming", testBox)
	if err != nil {
		t.Fatalf("Fetch() error = %v, want empty success", err)
	}
	if elements == nil {
		t.Fatal("Fetch() = nil slice, want non-nil empty slice")
	}
	if len(elements) != 0 {
		t.Errorf("Fetch() returned %d elements, want 0", len(elements))
	}
}

func TestFetchRetriesTransientErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			http.Error(w, "gateway timeout", http.StatusGatewayTimeout)
			return
		}
		w.Write([]byte(`{"elements": [{"type": "node", "id": 1, "lat": 1, "lon": 2}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	elements, err := client.Fetch(context.Background(), "ohio", testBox)
	if err != nil {
		t.Fatalf("Fetch() error = %v, want success on third attempt", err)
	}
	if got := calls.Load(); got != 3 {
		t.Errorf("server saw %d calls, want 3", got)
	}
	if len(elements) != 1 {
		t.Errorf("Fetch() returned %d elements, want 1", len(elements))
	}
}

func TestFetchFailsAfterRetriesExhausted(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Fetch(context.Background(), "ohio", testBox)
	if err == nil {
		t.Fatal("Fetch() error = nil, want failure after retries")
	}
	if got := calls.Load(); got != 3 {
		t.Errorf("server saw %d calls, want 3 attempts", got)
	}
	if !strings.Contains(err.Error(), "ohio") {
		t.Errorf("error %q does not name the region", err)
	}
}

func TestFetchContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "slow down", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := New(Config{
		URL:       server.URL,
		Attempts:  3,
		RetryStep: time.Hour, // backoff must be interruptible
		Pause:     time.Millisecond,
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := client.Fetch(ctx, "texas", testBox)
		done <- err
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err == nil {
			t.Error("Fetch() error = nil, want context error")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Fetch() did not return after context cancellation")
	}
}

func TestReconfigure(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	client.Reconfigure(Config{
		Attempts:  1,
		RetryStep: time.Millisecond,
		Pause:     5 * time.Millisecond,
	})

	if _, err := client.Fetch(context.Background(), "ohio", testBox); err == nil {
		t.Fatal("Fetch() error = nil, want failure")
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("server saw %d calls, want 1 after reconfigure", got)
	}

	start := time.Now()
	if err := client.Pause(context.Background()); err != nil {
		t.Fatalf("Pause() error = %v", err)
	}
	if elapsed := time.Since(start); elapsed < 5*time.Millisecond {
		t.Errorf("Pause() returned after %v, want at least the reconfigured 5ms", elapsed)
	}
}

func TestPause(t *testing.T) {
	client := New(Config{Pause: 10 * time.Millisecond})

	start := time.Now()
	if err := client.Pause(context.Background()); err != nil {
		t.Fatalf("Pause() error = %v", err)
	}
	if elapsed := time.Since(start); elapsed < 10*time.Millisecond {
		t.Errorf("Pause() returned after %v, want at least 10ms", elapsed)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	slow := New(Config{Pause: time.Hour})
	if err := slow.Pause(ctx); err == nil {
		t.Error("Pause() with cancelled context error = nil, want context error")
	}
}
