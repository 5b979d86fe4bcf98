package catalog

import (
	"errors"
	"strings"
	"testing"

	"github.com/desertthunder/ytcat/internal/models"
	"github.com/desertthunder/ytcat/internal/shared"
)

func samplePlaylist() *models.Playlist {
	return &models.Playlist{
		ID:           "PL123",
		Title:        "Synthwave Mix",
		Description:  "late night drives",
		PublishedAt:  "2024-01-02T03:04:05Z",
		ChannelID:    "UC999",
		ChannelTitle: "Night Channel",
		Thumbnails:   map[string]string{"default": "https://i.ytimg.com/d.jpg", "high": "https://i.ytimg.com/h.jpg"},
		ItemCount:    3,
	}
}

func sampleVideo() *models.Video {
	pos := int64(4)
	return &models.Video{
		ID:                "vid01",
		Title:             "Track One",
		Description:       "",
		PublishedAt:       "2024-02-03T00:00:00Z",
		Position:          &pos,
		Thumbnails:        map[string]string{"medium": "https://i.ytimg.com/m.jpg"},
		OwnerChannelID:    "UC111",
		OwnerChannelTitle: "Uploader",
		Duration:          "PT3M21S",
	}
}

func TestNormalizePlaylist(t *testing.T) {
	t.Run("maps required and optional fields", func(t *testing.T) {
		entity, err := NormalizePlaylist(samplePlaylist())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if entity.Identifier != "PL123" {
			t.Errorf("identifier = %q", entity.Identifier)
		}
		if entity.Blueprint != BlueprintPlaylist {
			t.Errorf("blueprint = %q", entity.Blueprint)
		}
		if entity.Relations != nil {
			t.Errorf("playlist entity should carry no relations, got %v", entity.Relations)
		}
		if got := entity.Properties["link"]; got != "https://www.youtube.com/playlist?list=PL123" {
			t.Errorf("link = %v", got)
		}
		if got := entity.Properties["localizedTitle"]; got != "" {
			t.Errorf("localizedTitle should default to empty, got %v", got)
		}
	})

	t.Run("thumbnails carry the full key set", func(t *testing.T) {
		entity, err := NormalizePlaylist(samplePlaylist())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		thumbs, ok := entity.Properties["thumbnails"].(map[string]string)
		if !ok {
			t.Fatalf("thumbnails property has type %T", entity.Properties["thumbnails"])
		}
		if len(thumbs) != len(playlistThumbnailKeys) {
			t.Fatalf("thumbnail keys = %d, want %d", len(thumbs), len(playlistThumbnailKeys))
		}
		for _, key := range playlistThumbnailKeys {
			if _, present := thumbs[key]; !present {
				t.Errorf("missing thumbnail key %q", key)
			}
		}
		if thumbs["standard"] != "" {
			t.Errorf("absent variant should default to empty, got %q", thumbs["standard"])
		}
		if thumbs["high"] != "https://i.ytimg.com/h.jpg" {
			t.Errorf("present variant lost: %q", thumbs["high"])
		}
	})

	t.Run("empty description is preserved", func(t *testing.T) {
		p := samplePlaylist()
		p.Description = ""
		entity, err := NormalizePlaylist(p)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got, present := entity.Properties["description"]; !present || got != "" {
			t.Errorf("description = %v (present %v)", got, present)
		}
	})

	t.Run("missing required field fails", func(t *testing.T) {
		for _, tc := range []struct {
			name string
			mod  func(*models.Playlist)
		}{
			{"title", func(p *models.Playlist) { p.Title = "" }},
			{"publishedAt", func(p *models.Playlist) { p.PublishedAt = "" }},
			{"channelId", func(p *models.Playlist) { p.ChannelID = "" }},
			{"channelTitle", func(p *models.Playlist) { p.ChannelTitle = "" }},
			{"identifier", func(p *models.Playlist) { p.ID = "" }},
		} {
			t.Run(tc.name, func(t *testing.T) {
				p := samplePlaylist()
				tc.mod(p)
				if _, err := NormalizePlaylist(p); !errors.Is(err, shared.ErrMissingRequiredField) {
					t.Errorf("err = %v, want ErrMissingRequiredField", err)
				}
			})
		}
	})

	t.Run("error names the same field on every pass", func(t *testing.T) {
		p := samplePlaylist()
		p.Title = ""
		p.ChannelID = ""
		p.ChannelTitle = ""

		_, first := NormalizePlaylist(p)
		if first == nil {
			t.Fatal("expected ErrMissingRequiredField")
		}
		for i := 0; i < 20; i++ {
			if _, err := NormalizePlaylist(p); err.Error() != first.Error() {
				t.Fatalf("message changed between passes: %q vs %q", err, first)
			}
		}
		if want := "title"; !strings.Contains(first.Error(), want) {
			t.Errorf("err = %v, want first missing field %q reported", first, want)
		}
	})
}

func TestNormalizeVideo(t *testing.T) {
	t.Run("maps fields and playlist relation", func(t *testing.T) {
		entity, err := NormalizeVideo(sampleVideo(), "PL123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if entity.Blueprint != BlueprintVideo {
			t.Errorf("blueprint = %q", entity.Blueprint)
		}
		if got := entity.Relations["playlist"]; got != "PL123" {
			t.Errorf("playlist relation = %q", got)
		}
		if got := entity.Properties["link"]; got != "https://www.youtube.com/watch?v=vid01" {
			t.Errorf("link = %v", got)
		}
		if got := entity.Properties["duration"]; got != "PT3M21S" {
			t.Errorf("duration = %v", got)
		}
		if got := entity.Properties["position"]; got != int64(4) {
			t.Errorf("position = %v", got)
		}
	})

	t.Run("position omitted when listing lacked one", func(t *testing.T) {
		v := sampleVideo()
		v.Position = nil
		entity, err := NormalizeVideo(v, "PL123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, present := entity.Properties["position"]; present {
			t.Error("position should be omitted, not defaulted")
		}
	})

	t.Run("video thumbnails include maxres", func(t *testing.T) {
		entity, err := NormalizeVideo(sampleVideo(), "PL123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		thumbs := entity.Properties["thumbnails"].(map[string]string)
		if _, present := thumbs["maxres"]; !present {
			t.Error("missing maxres thumbnail key")
		}
		if len(thumbs) != len(videoThumbnailKeys) {
			t.Errorf("thumbnail keys = %d, want %d", len(thumbs), len(videoThumbnailKeys))
		}
	})

	t.Run("missing required field fails", func(t *testing.T) {
		for _, tc := range []struct {
			name string
			mod  func(*models.Video)
		}{
			{"title", func(v *models.Video) { v.Title = "" }},
			{"publishedAt", func(v *models.Video) { v.PublishedAt = "" }},
			{"identifier", func(v *models.Video) { v.ID = "" }},
		} {
			t.Run(tc.name, func(t *testing.T) {
				v := sampleVideo()
				tc.mod(v)
				if _, err := NormalizeVideo(v, "PL123"); !errors.Is(err, shared.ErrMissingRequiredField) {
					t.Errorf("err = %v, want ErrMissingRequiredField", err)
				}
			})
		}
	})

	t.Run("missing playlist id fails", func(t *testing.T) {
		if _, err := NormalizeVideo(sampleVideo(), ""); !errors.Is(err, shared.ErrMissingRequiredField) {
			t.Errorf("err = %v, want ErrMissingRequiredField", err)
		}
	})
}

func TestAssemble(t *testing.T) {
	playlist := models.Entity{Identifier: "PL123", Blueprint: BlueprintPlaylist}
	members := []models.Entity{
		{Identifier: "vid01", Blueprint: BlueprintVideo},
		{Identifier: "vid02", Blueprint: BlueprintVideo},
	}

	snapshot := Assemble(playlist, members)

	if len(snapshot.Entities) != 3 {
		t.Fatalf("entities = %d, want 3", len(snapshot.Entities))
	}
	if snapshot.Entities[0].Identifier != "PL123" {
		t.Errorf("playlist entity must come first, got %q", snapshot.Entities[0].Identifier)
	}
	if snapshot.Entities[1].Identifier != "vid01" || snapshot.Entities[2].Identifier != "vid02" {
		t.Error("member order not preserved")
	}
}
