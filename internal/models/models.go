package models

import (
	"fmt"
	"time"
)

// Model defines the base interface for all persistent models.
type Model interface {
	ID() string           // ID returns the unique identifier for this model
	CreatedAt() time.Time // CreatedAt returns when this model was created
	UpdatedAt() time.Time // UpdatedAt returns when this model was last updated
	Validate() error      // Validate checks if the model's data is valid and returns an error if not
}

// Repository defines the interface for data access operations.
type Repository[T Model] interface {
	Create(model T) error          // Create inserts a new model into the database
	Get(id string) (T, error)      // Get retrieves a model by its ID
	List(limit int) ([]T, error)   // List retrieves the most recent models
}

// Playlist represents collection metadata fetched from the source API.
//
// Thumbnails holds only the size variants the remote actually returned;
// normalization expands it to the full key set.
type Playlist struct {
	ID                   string
	Title                string
	Description          string
	PublishedAt          string
	ChannelID            string
	ChannelTitle         string
	Thumbnails           map[string]string
	LocalizedTitle       string
	LocalizedDescription string
	ItemCount            int64
}

// Video represents one playlist member.
//
// Duration is populated only by the secondary detail lookup. Position is nil
// when the membership listing omitted it.
type Video struct {
	ID                string
	Title             string
	Description       string
	PublishedAt       string
	Position          *int64
	Thumbnails        map[string]string
	OwnerChannelID    string
	OwnerChannelTitle string
	Duration          string
}

// VideoDetail holds the attributes obtained via the per-item secondary
// lookup. Fields set here take precedence over the membership listing's
// values when merged.
type VideoDetail struct {
	Title       string
	Description string
	PublishedAt string
	Thumbnails  map[string]string
	Duration    string
}

// Merge returns a copy of v with the detail lookup's fields applied on top.
// Detail fields win on collision; membership-only fields (position, owner
// channel) are preserved.
func (v Video) Merge(d *VideoDetail) Video {
	if d == nil {
		return v
	}
	if d.Title != "" {
		v.Title = d.Title
	}
	if d.Description != "" {
		v.Description = d.Description
	}
	if d.PublishedAt != "" {
		v.PublishedAt = d.PublishedAt
	}
	if len(d.Thumbnails) > 0 {
		v.Thumbnails = d.Thumbnails
	}
	v.Duration = d.Duration
	return v
}

// Entity is the normalized output unit consumed by the external catalog
// store's bulk upsert, keyed by (Blueprint, Identifier).
type Entity struct {
	Identifier string            `json:"identifier"`
	Blueprint  string            `json:"blueprint"`
	Properties map[string]any    `json:"properties"`
	Relations  map[string]string `json:"relations,omitempty"`
}

// Snapshot is the full ordered entity sequence produced by one run: the
// playlist entity first, then members in listing order.
type Snapshot struct {
	Entities []Entity `json:"entities"`
}

// Run status values recorded in sync history.
const (
	RunStatusSucceeded = "succeeded"
	RunStatusFailed    = "failed"
)

// SyncRun records one pipeline execution.
type SyncRun struct {
	id            string
	sequence      int
	playlistID    string
	playlistTitle string
	status        string
	totalItems    int
	syncedItems   int
	skippedItems  int
	artifactPath  string
	errMessage    string
	createdAt     time.Time
	updatedAt     time.Time
}

// NewSyncRun creates a run record for the given playlist.
func NewSyncRun(playlistID string) *SyncRun {
	now := time.Now().UTC()
	return &SyncRun{
		playlistID: playlistID,
		status:     RunStatusFailed,
		createdAt:  now,
		updatedAt:  now,
	}
}

func (r *SyncRun) ID() string            { return r.id }
func (r *SyncRun) Sequence() int         { return r.sequence }
func (r *SyncRun) PlaylistID() string    { return r.playlistID }
func (r *SyncRun) PlaylistTitle() string { return r.playlistTitle }
func (r *SyncRun) Status() string        { return r.status }
func (r *SyncRun) TotalItems() int       { return r.totalItems }
func (r *SyncRun) SyncedItems() int      { return r.syncedItems }
func (r *SyncRun) SkippedItems() int     { return r.skippedItems }
func (r *SyncRun) ArtifactPath() string  { return r.artifactPath }
func (r *SyncRun) Error() string         { return r.errMessage }
func (r *SyncRun) CreatedAt() time.Time  { return r.createdAt }
func (r *SyncRun) UpdatedAt() time.Time  { return r.updatedAt }

func (r *SyncRun) SetID(id string)           { r.id = id }
func (r *SyncRun) SetSequence(seq int)       { r.sequence = seq }
func (r *SyncRun) SetPlaylistTitle(t string) { r.playlistTitle = t }
func (r *SyncRun) SetStatus(status string)   { r.status = status }
func (r *SyncRun) SetCounts(total, synced, skipped int) {
	r.totalItems = total
	r.syncedItems = synced
	r.skippedItems = skipped
}
func (r *SyncRun) SetArtifactPath(p string) { r.artifactPath = p }
func (r *SyncRun) SetError(msg string)      { r.errMessage = msg }
func (r *SyncRun) SetCreatedAt(t time.Time) { r.createdAt = t }
func (r *SyncRun) SetUpdatedAt(t time.Time) { r.updatedAt = t }

// Validate checks the run record before persistence.
func (r *SyncRun) Validate() error {
	if r.playlistID == "" {
		return fmt.Errorf("sync run requires a playlist id")
	}
	if r.status != RunStatusSucceeded && r.status != RunStatusFailed {
		return fmt.Errorf("invalid run status: %s", r.status)
	}
	return nil
}
