package picsum

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"wallpaper_backend/internal/feature/wallpapers/domain/entity"
)

func TestNewPicsumFeed(t *testing.T) {
	t.Parallel()

	cfg := Config{
		BaseURL: "https://feed.test.com",
		Timeout: 10 * time.Second,
	}
	client := &http.Client{}

	feed := NewPicsumFeed(cfg, client)

	if feed == nil {
		t.Fatal("expected non-nil feed")
	}
	if feed.cfg.BaseURL != cfg.BaseURL {
		t.Errorf("expected base URL %q, got %q", cfg.BaseURL, feed.cfg.BaseURL)
	}
}

func TestPicsumFeed_Fetch_Success(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Verify request parameters
		if r.URL.Path != "/v2/list" {
			t.Errorf("expected path /v2/list, got %s", r.URL.Path)
		}
		if r.URL.Query().Get("page") != "2" {
			t.Errorf("expected page 2, got %s", r.URL.Query().Get("page"))
		}
		if r.URL.Query().Get("limit") != "30" {
			t.Errorf("expected limit 30, got %s", r.URL.Query().Get("limit"))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`[
			{
				"id": "10",
				"author": "Paul Jarvis",
				"width": 2500,
				"height": 1667,
				"url": "https://unsplash.com/photos/6J--NXulQCs",
				"download_url": "https://picsum.photos/id/10/2500/1667"
			},
			{
				"id": "11",
				"author": "",
				"width": 2500,
				"height": 1667,
				"url": "https://unsplash.com/photos/Cm7oKel-X2Q",
				"download_url": "https://picsum.photos/id/11/2500/1667"
			},
			{
				"id": "12",
				"author": "Broken Row",
				"width": 0,
				"height": 0,
				"url": "",
				"download_url": ""
			}
		]`))
	}))
	defer server.Close()

	feed := NewPicsumFeed(Config{BaseURL: server.URL}, server.Client())

	wallpapers, err := feed.Fetch(context.Background(), 2, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The entry without a download URL is skipped
	if len(wallpapers) != 2 {
		t.Fatalf("expected 2 wallpapers, got %d", len(wallpapers))
	}

	first := wallpapers[0]
	if first.Title != "Photo by Paul Jarvis" {
		t.Errorf("unexpected title %q", first.Title)
	}
	if first.ImageURL != "https://picsum.photos/id/10/2500/1667" {
		t.Errorf("unexpected image URL %q", first.ImageURL)
	}
	if first.SourceType != entity.SourceCurated {
		t.Errorf("expected source type %q, got %q", entity.SourceCurated, first.SourceType)
	}
	if first.Author != "Paul Jarvis" {
		t.Errorf("unexpected author %q", first.Author)
	}

	// A missing author falls back to Anonymous
	if wallpapers[1].Author != "Anonymous" {
		t.Errorf("expected author Anonymous, got %q", wallpapers[1].Author)
	}
}

func TestPicsumFeed_Fetch_HTTPError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	feed := NewPicsumFeed(Config{BaseURL: server.URL}, server.Client())

	if _, err := feed.Fetch(context.Background(), 1, 30); err == nil {
		t.Fatal("expected an error for a 500 response")
	}
}

func TestPicsumFeed_Fetch_MalformedJSON(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"not":"an array"}`))
	}))
	defer server.Close()

	feed := NewPicsumFeed(Config{BaseURL: server.URL}, server.Client())

	if _, err := feed.Fetch(context.Background(), 1, 30); err == nil {
		t.Fatal("expected an error for a malformed response")
	}
}

func TestPicsumFeed_Fetch_EmptyPage(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	feed := NewPicsumFeed(Config{BaseURL: server.URL}, server.Client())

	wallpapers, err := feed.Fetch(context.Background(), 999, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(wallpapers) != 0 {
		t.Errorf("expected an empty page, got %d wallpapers", len(wallpapers))
	}
}
