package tasks

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/desertthunder/ytcat/internal/shared"
	"golang.org/x/time/rate"
)

// BulkSyncOpts contains configuration for bulk playlist syncs.
type BulkSyncOpts struct {
	OutputDir  string  // Base output directory (default: catalog_sync_{epoch})
	NumWorkers int     // Concurrent playlists (default: 3, capped at 10)
	RateLimit  float64 // Run starts per second (default: 1)
}

// PlaylistSyncResult summarizes one playlist within a bulk sync.
type PlaylistSyncResult struct {
	PlaylistID    string `json:"playlist_id"`
	PlaylistTitle string `json:"playlist_title,omitempty"`
	Success       bool   `json:"success"`
	ArtifactPath  string `json:"artifact_path,omitempty"`
	SyncedItems   int    `json:"synced_items"`
	SkippedItems  int    `json:"skipped_items"`
	Error         string `json:"error,omitempty"`
}

// BulkSyncResult aggregates a full bulk sync operation.
type BulkSyncResult struct {
	TotalPlaylists  int                  `json:"total_playlists"`
	Succeeded       int                  `json:"succeeded"`
	Failed          int                  `json:"failed"`
	OutputDirectory string               `json:"output_directory"`
	ManifestPath    string               `json:"manifest_path,omitempty"`
	Results         []PlaylistSyncResult `json:"results"`
}

type bulkJob struct {
	index      int
	playlistID string
}

// Bulk syncs multiple playlists concurrently with rate limiting and progress
// tracking.
//
// Each playlist gets an independent run producing {OutputDir}/{playlistID}.json,
// so a failing playlist never affects the others' artifacts. A manifest file
// summarizing outcomes is written to the output directory at the end.
func (e *PipelineEngine) Bulk(ctx context.Context, ids []string, opts BulkSyncOpts, progress chan<- ProgressUpdate) (*BulkSyncResult, error) {
	if e.source == nil {
		return nil, fmt.Errorf("%w: source not initialized", shared.ErrServiceUnavailable)
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: at least one playlist id", shared.ErrMissingArgument)
	}

	if opts.OutputDir == "" {
		opts.OutputDir = fmt.Sprintf("catalog_sync_%d", time.Now().Unix())
	}
	if opts.NumWorkers <= 0 {
		opts.NumWorkers = 3
	}
	if opts.NumWorkers > 10 {
		opts.NumWorkers = 10
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = 1.0
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("%w: creating output directory: %v", shared.ErrWriteFailed, err)
	}

	result := &BulkSyncResult{
		TotalPlaylists:  len(ids),
		OutputDirectory: opts.OutputDir,
		Results:         make([]PlaylistSyncResult, 0, len(ids)),
	}

	limiter := rate.NewLimiter(rate.Limit(opts.RateLimit), 1)

	jobs := make(chan bulkJob, len(ids))
	results := make(chan PlaylistSyncResult, len(ids))

	var wg sync.WaitGroup
	for i := 0; i < opts.NumWorkers; i++ {
		wg.Add(1)
		go e.bulkWorker(ctx, &wg, jobs, results, opts)
	}

	go func() {
		defer close(jobs)
		for i, playlistID := range ids {
			select {
			case <-ctx.Done():
				return
			default:
			}

			if err := limiter.Wait(ctx); err != nil {
				return
			}

			e.sendProgress(progress, bulkPlaylistUpdate(i+1, len(ids), playlistID))
			jobs <- bulkJob{index: i, playlistID: playlistID}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	completed := 0
	for res := range results {
		completed++
		result.Results = append(result.Results, res)

		if res.Success {
			result.Succeeded++
			e.sendProgress(progress, bulkCompletedUpdate(completed, len(ids), res.PlaylistTitle, res.SyncedItems))
		} else {
			result.Failed++
			e.sendProgress(progress, bulkFailedUpdate(completed, len(ids), res.PlaylistID, fmt.Errorf("%s", res.Error)))
		}
	}

	manifestPath := filepath.Join(opts.OutputDir, "sync_manifest.json")
	data, err := shared.MarshalJSON(result, true)
	if err != nil {
		return result, fmt.Errorf("sync completed but failed to encode manifest: %w", err)
	}
	if err := os.WriteFile(manifestPath, data, 0644); err != nil {
		return result, fmt.Errorf("sync completed but failed to write manifest: %w", err)
	}
	result.ManifestPath = manifestPath
	return result, nil
}

// bulkWorker runs playlist syncs from the jobs channel.
func (e *PipelineEngine) bulkWorker(ctx context.Context, wg *sync.WaitGroup, jobs <-chan bulkJob, results chan<- PlaylistSyncResult, opts BulkSyncOpts) {
	defer wg.Done()

	for job := range jobs {
		select {
		case <-ctx.Done():
			return
		default:
		}

		output := filepath.Join(opts.OutputDir, fmt.Sprintf("%s.json", job.playlistID))
		runResult, err := e.Run(ctx, job.playlistID, output, nil)

		res := PlaylistSyncResult{PlaylistID: job.playlistID}
		if runResult != nil {
			if runResult.Playlist != nil {
				res.PlaylistTitle = runResult.Playlist.Title
			}
			res.SyncedItems = runResult.SyncedItems
			res.SkippedItems = runResult.SkippedItems()
		}
		if err != nil {
			res.Error = err.Error()
		} else {
			res.Success = true
			res.ArtifactPath = output
		}

		results <- res
	}
}
