package services

import (
	"context"

	"github.com/desertthunder/ytcat/internal/models"
)

// Source defines the read operations the sync pipeline consumes from a
// remote collection API.
type Source interface {
	// Playlist performs the single collection-info lookup for the given id.
	// Returns shared.ErrNotFound when the remote reports zero matching
	// records, shared.ErrRemoteUnavailable on any transport failure.
	Playlist(ctx context.Context, playlistID string) (*models.Playlist, error)

	// PlaylistItems retrieves every membership record for the playlist,
	// following pagination cursors until exhausted. Records are returned in
	// listing order with no deduplication. Any page failure returns
	// shared.ErrRemoteUnavailable.
	PlaylistItems(ctx context.Context, playlistID string) ([]models.Video, error)

	// Video performs the per-member secondary lookup. Returns
	// shared.ErrItemDetailUnavailable when the remote reports zero results
	// for the id.
	Video(ctx context.Context, videoID string) (*models.VideoDetail, error)

	// Name returns the name of the source (e.g., "YouTube")
	Name() string
}
