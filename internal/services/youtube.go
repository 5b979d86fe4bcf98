package services

import (
	"context"
	"fmt"

	"github.com/desertthunder/ytcat/internal/models"
	"github.com/desertthunder/ytcat/internal/shared"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

const (
	defaultPageSize  int64   = 50
	defaultRateLimit float64 = 5.0
)

// Listing and detail lookups request these resource parts.
var resourceParts = []string{"snippet", "contentDetails"}

// YouTubeService implements [Source] over the official YouTube Data API
// client. Requests are paced by a token-bucket limiter so quota consumption
// stays at one request per page plus one request per member, serialized.
type YouTubeService struct {
	svc      *youtube.Service
	pageSize int64
	limiter  *rate.Limiter
}

// NewYouTubeService creates a YouTube source from the given configuration.
//
// An access token takes precedence over an API key and grants access to
// private playlists. Additional client options (custom endpoint, transport)
// are appended after the credential option.
func NewYouTubeService(ctx context.Context, cfg *shared.Config, opts ...option.ClientOption) (*YouTubeService, error) {
	creds := cfg.Credentials.YouTube

	clientOpts := make([]option.ClientOption, 0, len(opts)+1)
	switch {
	case creds.AccessToken != "":
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: creds.AccessToken})
		clientOpts = append(clientOpts, option.WithTokenSource(ts))
	case creds.APIKey != "":
		clientOpts = append(clientOpts, option.WithAPIKey(creds.APIKey))
	default:
		return nil, fmt.Errorf("%w: youtube api_key or access_token required", shared.ErrMissingCredentials)
	}
	clientOpts = append(clientOpts, opts...)

	svc, err := youtube.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create youtube client: %w", err)
	}

	pageSize := cfg.Sync.PageSize
	if pageSize <= 0 || pageSize > defaultPageSize {
		pageSize = defaultPageSize
	}

	rps := cfg.Sync.RateLimit
	if rps <= 0 {
		rps = defaultRateLimit
	}

	return &YouTubeService{
		svc:      svc,
		pageSize: pageSize,
		limiter:  rate.NewLimiter(rate.Limit(rps), 1),
	}, nil
}

// Name returns the source name.
func (y *YouTubeService) Name() string {
	return "YouTube"
}

// Playlist retrieves collection metadata for a single playlist.
func (y *YouTubeService) Playlist(ctx context.Context, playlistID string) (*models.Playlist, error) {
	if playlistID == "" {
		return nil, fmt.Errorf("%w: playlist id is required", shared.ErrInvalidArgument)
	}

	if err := y.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrRemoteUnavailable, err)
	}

	resp, err := y.svc.Playlists.List(resourceParts).Id(playlistID).MaxResults(1).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%w: playlist lookup failed: %v", shared.ErrRemoteUnavailable, err)
	}

	if len(resp.Items) == 0 {
		return nil, fmt.Errorf("%w: %s", shared.ErrNotFound, playlistID)
	}

	return convertPlaylist(resp.Items[0]), nil
}

// PlaylistItems retrieves all membership records for a playlist, following
// nextPageToken until the remote reports no further cursor.
func (y *YouTubeService) PlaylistItems(ctx context.Context, playlistID string) ([]models.Video, error) {
	if playlistID == "" {
		return nil, fmt.Errorf("%w: playlist id is required", shared.ErrInvalidArgument)
	}

	var items []models.Video
	pageToken := ""

	for {
		if err := y.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: %v", shared.ErrRemoteUnavailable, err)
		}

		call := y.svc.PlaylistItems.List(resourceParts).
			PlaylistId(playlistID).
			MaxResults(y.pageSize).
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		resp, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("%w: playlist items page failed: %v", shared.ErrRemoteUnavailable, err)
		}

		for _, item := range resp.Items {
			items = append(items, convertPlaylistItem(item))
		}

		pageToken = resp.NextPageToken
		if pageToken == "" {
			break
		}
	}

	return items, nil
}

// Video performs the secondary per-item lookup for attributes absent from
// the membership listing (duration, the video's own snippet).
func (y *YouTubeService) Video(ctx context.Context, videoID string) (*models.VideoDetail, error) {
	if videoID == "" {
		return nil, fmt.Errorf("%w: video id is required", shared.ErrInvalidArgument)
	}

	if err := y.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrRemoteUnavailable, err)
	}

	resp, err := y.svc.Videos.List(resourceParts).Id(videoID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%w: video lookup failed: %v", shared.ErrRemoteUnavailable, err)
	}

	if len(resp.Items) == 0 {
		return nil, fmt.Errorf("%w: %s", shared.ErrItemDetailUnavailable, videoID)
	}

	return convertVideoDetail(resp.Items[0]), nil
}

func convertPlaylist(p *youtube.Playlist) *models.Playlist {
	pl := &models.Playlist{ID: p.Id}

	if p.Snippet != nil {
		pl.Title = p.Snippet.Title
		pl.Description = p.Snippet.Description
		pl.PublishedAt = p.Snippet.PublishedAt
		pl.ChannelID = p.Snippet.ChannelId
		pl.ChannelTitle = p.Snippet.ChannelTitle
		pl.Thumbnails = thumbnailURLs(p.Snippet.Thumbnails)

		if p.Snippet.Localized != nil {
			pl.LocalizedTitle = p.Snippet.Localized.Title
			pl.LocalizedDescription = p.Snippet.Localized.Description
		}
	}

	if p.ContentDetails != nil {
		pl.ItemCount = p.ContentDetails.ItemCount
	}

	return pl
}

func convertPlaylistItem(item *youtube.PlaylistItem) models.Video {
	v := models.Video{}

	if item.ContentDetails != nil {
		v.ID = item.ContentDetails.VideoId
	}

	if item.Snippet != nil {
		if v.ID == "" && item.Snippet.ResourceId != nil {
			v.ID = item.Snippet.ResourceId.VideoId
		}
		v.Title = item.Snippet.Title
		v.Description = item.Snippet.Description
		v.PublishedAt = item.Snippet.PublishedAt
		v.Thumbnails = thumbnailURLs(item.Snippet.Thumbnails)
		v.OwnerChannelID = item.Snippet.VideoOwnerChannelId
		v.OwnerChannelTitle = item.Snippet.VideoOwnerChannelTitle

		position := item.Snippet.Position
		v.Position = &position
	}

	return v
}

func convertVideoDetail(video *youtube.Video) *models.VideoDetail {
	d := &models.VideoDetail{}

	if video.Snippet != nil {
		d.Title = video.Snippet.Title
		d.Description = video.Snippet.Description
		d.PublishedAt = video.Snippet.PublishedAt
		d.Thumbnails = thumbnailURLs(video.Snippet.Thumbnails)
	}

	if video.ContentDetails != nil {
		d.Duration = video.ContentDetails.Duration
	}

	return d
}

// thumbnailURLs flattens the API's thumbnail variants into a
// size-variant → URL mapping, keeping only variants the remote returned.
func thumbnailURLs(t *youtube.ThumbnailDetails) map[string]string {
	if t == nil {
		return nil
	}

	urls := make(map[string]string)
	variants := map[string]*youtube.Thumbnail{
		"default":  t.Default,
		"medium":   t.Medium,
		"high":     t.High,
		"standard": t.Standard,
		"maxres":   t.Maxres,
	}
	for name, thumb := range variants {
		if thumb != nil && thumb.Url != "" {
			urls[name] = thumb.Url
		}
	}

	if len(urls) == 0 {
		return nil
	}
	return urls
}
