package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/desertthunder/ytcat/internal/shared"
	"google.golang.org/api/option"
)

// newTestService points the client at a local httptest server. The API key is
// a placeholder; nothing validates it server-side.
func newTestService(t *testing.T, handler http.Handler) *YouTubeService {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := shared.DefaultConfig()
	cfg.Credentials.YouTube.APIKey = "test-key"
	cfg.Credentials.YouTube.AccessToken = ""
	cfg.Sync.PageSize = 2
	cfg.Sync.RateLimit = 1000

	svc, err := NewYouTubeService(context.Background(), cfg, option.WithEndpoint(server.URL+"/"))
	if err != nil {
		t.Fatalf("failed to create service: %v", err)
	}
	return svc
}

func writeBody(t *testing.T, w http.ResponseWriter, body string) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write([]byte(body)); err != nil {
		t.Errorf("failed to write response: %v", err)
	}
}

func TestNewYouTubeService(t *testing.T) {
	t.Run("requires credentials", func(t *testing.T) {
		cfg := shared.DefaultConfig()
		cfg.Credentials.YouTube.APIKey = ""
		cfg.Credentials.YouTube.AccessToken = ""

		_, err := NewYouTubeService(context.Background(), cfg)
		if !errors.Is(err, shared.ErrMissingCredentials) {
			t.Errorf("err = %v, want ErrMissingCredentials", err)
		}
	})
}

func TestYouTubeServicePlaylist(t *testing.T) {
	t.Run("parses playlist metadata", func(t *testing.T) {
		svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/youtube/v3/playlists" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			if got := r.URL.Query().Get("id"); got != "PL1" {
				t.Errorf("id param = %q", got)
			}
			writeBody(t, w, `{
				"items": [{
					"id": "PL1",
					"snippet": {
						"title": "Mix",
						"description": "late nights",
						"publishedAt": "2024-01-01T00:00:00Z",
						"channelId": "UC1",
						"channelTitle": "Channel",
						"thumbnails": {
							"default": {"url": "https://i.ytimg.com/d.jpg"},
							"high": {"url": "https://i.ytimg.com/h.jpg"}
						},
						"localized": {"title": "Mix Localized", "description": "desc"}
					},
					"contentDetails": {"itemCount": 12}
				}]
			}`)
		}))

		playlist, err := svc.Playlist(context.Background(), "PL1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if playlist.ID != "PL1" || playlist.Title != "Mix" {
			t.Errorf("playlist = %q %q", playlist.ID, playlist.Title)
		}
		if playlist.ChannelID != "UC1" || playlist.ChannelTitle != "Channel" {
			t.Errorf("channel = %q %q", playlist.ChannelID, playlist.ChannelTitle)
		}
		if playlist.ItemCount != 12 {
			t.Errorf("item count = %d", playlist.ItemCount)
		}
		if playlist.LocalizedTitle != "Mix Localized" {
			t.Errorf("localized title = %q", playlist.LocalizedTitle)
		}
		if playlist.Thumbnails["high"] != "https://i.ytimg.com/h.jpg" {
			t.Errorf("thumbnails = %v", playlist.Thumbnails)
		}
		if _, present := playlist.Thumbnails["maxres"]; present {
			t.Error("absent variants should not be fabricated at the service layer")
		}
	})

	t.Run("empty result set is not found", func(t *testing.T) {
		svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeBody(t, w, `{"items": []}`)
		}))

		_, err := svc.Playlist(context.Background(), "gone")
		if !errors.Is(err, shared.ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})

	t.Run("server error maps to remote unavailable", func(t *testing.T) {
		svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error": {"code": 500}}`, http.StatusInternalServerError)
		}))

		_, err := svc.Playlist(context.Background(), "PL1")
		if !errors.Is(err, shared.ErrRemoteUnavailable) {
			t.Errorf("err = %v, want ErrRemoteUnavailable", err)
		}
	})

	t.Run("empty id is rejected without a request", func(t *testing.T) {
		svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request expected")
		}))

		if _, err := svc.Playlist(context.Background(), ""); !errors.Is(err, shared.ErrInvalidArgument) {
			t.Errorf("err = %v, want ErrInvalidArgument", err)
		}
	})
}

func TestYouTubeServicePlaylistItems(t *testing.T) {
	t.Run("follows page cursors until exhausted", func(t *testing.T) {
		pages := map[string]string{
			"": `{
				"items": [
					{"contentDetails": {"videoId": "vid1"}, "snippet": {"title": "One", "publishedAt": "2024-02-01T00:00:00Z", "position": 0, "videoOwnerChannelId": "UC9", "videoOwnerChannelTitle": "Owner"}},
					{"contentDetails": {"videoId": "vid2"}, "snippet": {"title": "Two", "publishedAt": "2024-02-02T00:00:00Z", "position": 1}}
				],
				"nextPageToken": "page2"
			}`,
			"page2": `{
				"items": [
					{"snippet": {"title": "Three", "publishedAt": "2024-02-03T00:00:00Z", "position": 2, "resourceId": {"videoId": "vid3"}}}
				]
			}`,
		}
		var requested []string

		svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/youtube/v3/playlistItems" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			token := r.URL.Query().Get("pageToken")
			requested = append(requested, token)
			writeBody(t, w, pages[token])
		}))

		items, err := svc.PlaylistItems(context.Background(), "PL1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(items) != 3 {
			t.Fatalf("items = %d, want 3 across pages", len(items))
		}
		if len(requested) != 2 || requested[1] != "page2" {
			t.Errorf("page requests = %v", requested)
		}
		for i, want := range []string{"vid1", "vid2", "vid3"} {
			if items[i].ID != want {
				t.Errorf("item %d = %q, want %q", i, items[i].ID, want)
			}
		}
		if items[0].OwnerChannelID != "UC9" {
			t.Errorf("owner channel = %q", items[0].OwnerChannelID)
		}
		if items[2].Position == nil || *items[2].Position != 2 {
			t.Errorf("position = %v", items[2].Position)
		}
	})

	t.Run("page failure maps to remote unavailable", func(t *testing.T) {
		svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error": {"code": 403}}`, http.StatusForbidden)
		}))

		_, err := svc.PlaylistItems(context.Background(), "PL1")
		if !errors.Is(err, shared.ErrRemoteUnavailable) {
			t.Errorf("err = %v, want ErrRemoteUnavailable", err)
		}
	})
}

func TestYouTubeServiceVideo(t *testing.T) {
	t.Run("parses detail record", func(t *testing.T) {
		svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/youtube/v3/videos" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			writeBody(t, w, fmt.Sprintf(`{
				"items": [{
					"id": %q,
					"snippet": {
						"title": "One",
						"description": "detail description",
						"publishedAt": "2024-02-01T00:00:00Z",
						"thumbnails": {"maxres": {"url": "https://i.ytimg.com/max.jpg"}}
					},
					"contentDetails": {"duration": "PT3M21S"}
				}]
			}`, r.URL.Query().Get("id")))
		}))

		detail, err := svc.Video(context.Background(), "vid1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if detail.Duration != "PT3M21S" {
			t.Errorf("duration = %q", detail.Duration)
		}
		if detail.Description != "detail description" {
			t.Errorf("description = %q", detail.Description)
		}
		if detail.Thumbnails["maxres"] != "https://i.ytimg.com/max.jpg" {
			t.Errorf("thumbnails = %v", detail.Thumbnails)
		}
	})

	t.Run("empty result set means detail unavailable", func(t *testing.T) {
		svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeBody(t, w, `{"items": []}`)
		}))

		_, err := svc.Video(context.Background(), "deleted")
		if !errors.Is(err, shared.ErrItemDetailUnavailable) {
			t.Errorf("err = %v, want ErrItemDetailUnavailable", err)
		}
	})
}
