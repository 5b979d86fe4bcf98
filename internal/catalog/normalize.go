package catalog

import (
	"fmt"

	"github.com/desertthunder/ytcat/internal/models"
	"github.com/desertthunder/ytcat/internal/shared"
)

// Blueprint tags for normalized entities. Upsert is idempotent on
// (blueprint, identifier).
const (
	BlueprintPlaylist = "playlist"
	BlueprintVideo    = "video"
)

const (
	playlistLinkFormat = "https://www.youtube.com/playlist?list=%s"
	watchLinkFormat    = "https://www.youtube.com/watch?v=%s"
)

// Known thumbnail size variants. Downstream consumers expect every key to
// exist in the thumbnails mapping, empty or not.
var (
	playlistThumbnailKeys = []string{"default", "medium", "high", "standard"}
	videoThumbnailKeys    = []string{"default", "medium", "high", "standard", "maxres"}
)

// PlaylistLink derives the canonical playlist URL from a collection id.
func PlaylistLink(playlistID string) string {
	return fmt.Sprintf(playlistLinkFormat, playlistID)
}

// VideoLink derives the canonical watch URL from a video id.
func VideoLink(videoID string) string {
	return fmt.Sprintf(watchLinkFormat, videoID)
}

// NormalizePlaylist maps a playlist record into its catalog entity.
func NormalizePlaylist(p *models.Playlist) (*models.Entity, error) {
	if p == nil || p.ID == "" {
		return nil, fmt.Errorf("%w: playlist identifier", shared.ErrMissingRequiredField)
	}

	// Checked in order so the reported field is stable when several are
	// missing at once.
	required := []struct {
		field string
		value string
	}{
		{"title", p.Title},
		{"publishedAt", p.PublishedAt},
		{"channelId", p.ChannelID},
		{"channelTitle", p.ChannelTitle},
	}
	for _, req := range required {
		if req.value == "" {
			return nil, fmt.Errorf("%w: playlist %s: %s", shared.ErrMissingRequiredField, p.ID, req.field)
		}
	}

	return &models.Entity{
		Identifier: p.ID,
		Blueprint:  BlueprintPlaylist,
		Properties: map[string]any{
			"title":                p.Title,
			"description":          p.Description,
			"publishedAt":          p.PublishedAt,
			"channelId":            p.ChannelID,
			"channelTitle":         p.ChannelTitle,
			"localizedTitle":       p.LocalizedTitle,
			"localizedDescription": p.LocalizedDescription,
			"link":                 PlaylistLink(p.ID),
			"thumbnails":           completeThumbnails(p.Thumbnails, playlistThumbnailKeys),
		},
	}, nil
}

// NormalizeVideo maps an enriched member record into its catalog entity,
// related to the playlist it belongs to. The relation target does not need
// to have been normalized yet within the same run.
func NormalizeVideo(v *models.Video, playlistID string) (*models.Entity, error) {
	if v == nil || v.ID == "" {
		return nil, fmt.Errorf("%w: video identifier", shared.ErrMissingRequiredField)
	}
	if playlistID == "" {
		return nil, fmt.Errorf("%w: video %s: playlist identifier", shared.ErrMissingRequiredField, v.ID)
	}

	required := []struct {
		field string
		value string
	}{
		{"title", v.Title},
		{"publishedAt", v.PublishedAt},
	}
	for _, req := range required {
		if req.value == "" {
			return nil, fmt.Errorf("%w: video %s: %s", shared.ErrMissingRequiredField, v.ID, req.field)
		}
	}

	properties := map[string]any{
		"title":                  v.Title,
		"description":            v.Description,
		"publishedAt":            v.PublishedAt,
		"duration":               v.Duration,
		"link":                   VideoLink(v.ID),
		"videoOwnerChannelId":    v.OwnerChannelID,
		"videoOwnerChannelTitle": v.OwnerChannelTitle,
		"thumbnails":             completeThumbnails(v.Thumbnails, videoThumbnailKeys),
	}

	// Position reflects current listing order only; when the remote omits
	// it the key is left out rather than invented.
	if v.Position != nil {
		properties["position"] = *v.Position
	}

	return &models.Entity{
		Identifier: v.ID,
		Blueprint:  BlueprintVideo,
		Properties: properties,
		Relations:  map[string]string{"playlist": playlistID},
	}, nil
}

// completeThumbnails expands a sparse variant mapping to the full key set,
// storing "" for absent variants.
func completeThumbnails(src map[string]string, keys []string) map[string]string {
	out := make(map[string]string, len(keys))
	for _, key := range keys {
		out[key] = src[key]
	}
	return out
}
