package tasks

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/ytcat/internal/catalog"
	"github.com/desertthunder/ytcat/internal/models"
	"github.com/desertthunder/ytcat/internal/services"
	"github.com/desertthunder/ytcat/internal/shared"
)

// MemberSkip records one playlist member dropped from the snapshot.
type MemberSkip struct {
	VideoID string // Member identifier from the listing
	Title   string // Title from the listing, may be empty
	Reason  string // Why the member was skipped
}

// SyncRunResult contains all data from a single playlist sync run.
type SyncRunResult struct {
	Playlist     *models.Playlist // Source playlist metadata
	Snapshot     *models.Snapshot // Assembled entity snapshot
	ArtifactPath string           // Where the artifact landed, empty on write failure
	TotalItems   int              // Members returned by the listing
	SyncedItems  int              // Members present in the snapshot
	Skipped      []MemberSkip     // Members dropped with their reasons
}

// SkippedItems returns the number of members dropped from the snapshot.
func (r *SyncRunResult) SkippedItems() int { return len(r.Skipped) }

// SnapshotWriter persists an assembled snapshot to a destination path.
type SnapshotWriter interface {
	Write(snapshot *models.Snapshot, dest string) error
}

// RunRecorder persists run history records. Recording is best effort: a
// recorder failure never changes the outcome of a sync.
type RunRecorder interface {
	Create(run *models.SyncRun) error
}

// SyncEngine defines playlist sync operations.
type SyncEngine interface {
	// Run syncs one playlist into a snapshot artifact at output.
	Run(ctx context.Context, playlistID, output string, progress chan<- ProgressUpdate) (*SyncRunResult, error)

	// Bulk syncs several playlists concurrently, one artifact each, plus a manifest.
	Bulk(ctx context.Context, ids []string, opts BulkSyncOpts, progress chan<- ProgressUpdate) (*BulkSyncResult, error)
}

// PipelineEngine implements SyncEngine over a Source and a SnapshotWriter.
type PipelineEngine struct {
	source services.Source
	writer SnapshotWriter
	runs   RunRecorder
	logger *log.Logger
}

// NewPipelineEngine creates a PipelineEngine. The recorder and logger are
// optional; pass nil to disable run history or logging.
func NewPipelineEngine(source services.Source, writer SnapshotWriter, runs RunRecorder, logger *log.Logger) *PipelineEngine {
	return &PipelineEngine{
		source: source,
		writer: writer,
		runs:   runs,
		logger: logger,
	}
}

// sendProgress sends a progress update through the channel without blocking.
// Uses select with default to ensure progress reporting never blocks execution.
func (e *PipelineEngine) sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
		// Sent successfully
	default:
		// Channel full, skip this update
	}
}

func (e *PipelineEngine) warn(msg string, kv ...any) {
	if e.logger != nil {
		e.logger.Warn(msg, kv...)
	}
}

// Run syncs a single playlist. All remote calls happen sequentially: the
// playlist lookup, the paginated membership listing, then one detail lookup
// per member. Playlist-level failures abort the run and surface typed errors;
// member-level failures downgrade to a skip.
func (e *PipelineEngine) Run(ctx context.Context, playlistID, output string, progress chan<- ProgressUpdate) (*SyncRunResult, error) {
	if e.source == nil {
		return nil, fmt.Errorf("%w: source not initialized", shared.ErrServiceUnavailable)
	}
	if e.writer == nil {
		return nil, fmt.Errorf("%w: snapshot writer not initialized", shared.ErrServiceUnavailable)
	}
	if playlistID == "" {
		return nil, fmt.Errorf("%w: playlist id", shared.ErrMissingArgument)
	}
	if output == "" {
		return nil, fmt.Errorf("%w: output path", shared.ErrMissingArgument)
	}

	run := models.NewSyncRun(playlistID)
	result, err := e.runPipeline(ctx, playlistID, output, progress)
	e.recordRun(run, result, err)
	return result, err
}

func (e *PipelineEngine) runPipeline(ctx context.Context, playlistID, output string, progress chan<- ProgressUpdate) (*SyncRunResult, error) {
	e.sendProgress(progress, fetchPlaylistUpdate(playlistID))

	playlist, err := e.source.Playlist(ctx, playlistID)
	if err != nil {
		return nil, err
	}

	playlistEntity, err := catalog.NormalizePlaylist(playlist)
	if err != nil {
		return nil, err
	}

	result := &SyncRunResult{Playlist: playlist}

	e.sendProgress(progress, fetchItemsUpdate(playlist.Title))

	items, err := e.source.PlaylistItems(ctx, playlistID)
	if err != nil {
		return result, err
	}

	total := len(items)
	result.TotalItems = total

	members := make([]models.Entity, 0, total)
	for i, item := range items {
		e.sendProgress(progress, enrichItemUpdate(i+1, total, item.Title))

		detail, err := e.source.Video(ctx, item.ID)
		if err != nil {
			if errors.Is(err, shared.ErrItemDetailUnavailable) {
				e.skipMember(result, progress, i+1, total, item, "detail lookup returned no record")
				continue
			}
			return result, err
		}

		merged := item.Merge(detail)
		entity, err := catalog.NormalizeVideo(&merged, playlist.ID)
		if err != nil {
			if errors.Is(err, shared.ErrMissingRequiredField) {
				e.skipMember(result, progress, i+1, total, item, err.Error())
				continue
			}
			return result, err
		}

		members = append(members, *entity)
	}

	result.SyncedItems = len(members)
	result.Snapshot = catalog.Assemble(*playlistEntity, members)

	e.sendProgress(progress, writeArtifactUpdate(output))

	if err := e.writer.Write(result.Snapshot, output); err != nil {
		return result, err
	}
	result.ArtifactPath = output

	e.sendProgress(progress, syncCompleteUpdate(result))
	return result, nil
}

// skipMember drops a member from the run, logging the reason so the gap in
// the artifact is explainable afterward.
func (e *PipelineEngine) skipMember(result *SyncRunResult, progress chan<- ProgressUpdate, step, total int, item models.Video, reason string) {
	e.warn("skipping playlist member", "video_id", item.ID, "reason", reason)
	e.sendProgress(progress, skipItemUpdate(step, total, item.ID, reason))
	result.Skipped = append(result.Skipped, MemberSkip{
		VideoID: item.ID,
		Title:   item.Title,
		Reason:  reason,
	})
}

// recordRun persists the run outcome. Failures here are logged and swallowed.
func (e *PipelineEngine) recordRun(run *models.SyncRun, result *SyncRunResult, runErr error) {
	if e.runs == nil {
		return
	}

	if result != nil {
		if result.Playlist != nil {
			run.SetPlaylistTitle(result.Playlist.Title)
		}
		run.SetCounts(result.TotalItems, result.SyncedItems, result.SkippedItems())
		run.SetArtifactPath(result.ArtifactPath)
	}
	if runErr != nil {
		run.SetStatus(models.RunStatusFailed)
		run.SetError(runErr.Error())
	} else {
		run.SetStatus(models.RunStatusSucceeded)
	}

	if err := e.runs.Create(run); err != nil {
		e.warn("failed to record sync run", "playlist_id", run.PlaylistID(), "error", err)
	}
}
