package main

import (
	"context"
	"fmt"
	"os"

	"github.com/desertthunder/ytcat/internal/formatter"
	"github.com/desertthunder/ytcat/internal/repositories"
	"github.com/desertthunder/ytcat/internal/shared"
	"github.com/desertthunder/ytcat/internal/tasks"
	"github.com/urfave/cli/v3"
)

// syncEngine returns the runner's engine, upgraded with a run recorder when
// the history database exists, plus a cleanup func. A missing database
// disables history quietly.
func (r *Runner) syncEngine(config *shared.Config) (*tasks.PipelineEngine, func()) {
	noop := func() {}

	if _, err := os.Stat(config.Database.Path); err != nil {
		return r.engine, noop
	}

	db, err := shared.NewDatabase(config.Database.Path)
	if err != nil {
		r.logger.Warn("run history disabled", "error", err)
		return r.engine, noop
	}

	engine := tasks.NewPipelineEngine(r.source, r.writer, repositories.NewRunRepository(db), r.logger)
	return engine, func() { db.Close() }
}

// SyncRun syncs one playlist into a snapshot artifact.
func (r *Runner) SyncRun(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireSource(); err != nil {
		return err
	}

	config := r.loadOrDefaultConfig(cmd.String("config"))

	playlistID := cmd.String("id")
	if playlistID == "" {
		playlistID = config.Sync.PlaylistID
	}
	output := cmd.String("output")
	if output == "" {
		output = config.Sync.Output
	}
	if output == "" {
		output = "snapshot.json"
	}

	r.logger.Info("starting sync", "playlist_id", playlistID, "output", output)
	r.writePlain("%s\n", formatter.RenderTitle("Syncing playlist "+playlistID))

	progressCh := make(chan tasks.ProgressUpdate, 100)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for update := range progressCh {
			switch update.Phase {
			case tasks.FetchPlaylist, tasks.FetchItems:
				r.writePlain("📥 %s\n", update.Message)
			case tasks.EnrichItems:
				r.writePlain("   %s\n", update.Message)
			case tasks.WriteArtifact:
				r.writePlain("📝 %s\n", update.Message)
			}
		}
	}()

	engine, cleanup := r.syncEngine(config)
	defer cleanup()

	result, err := engine.Run(ctx, playlistID, output, progressCh)

	// The consumer must drain before the summary writes to the same output.
	close(progressCh)
	<-done

	if err != nil {
		r.writePlain("\n%s\n", formatter.RenderErr(fmt.Sprintf("Sync failed: %v", err)))
		return err
	}

	r.writePlain("\n")
	r.writePlainHeader("Sync Complete")
	r.writePlain("Playlist: %s (%s)\n", result.Playlist.Title, result.Playlist.ID)
	r.writePlain("Artifact: %s\n", result.ArtifactPath)
	r.writePlain("%s\n", formatter.RenderOK(fmt.Sprintf("Synced %d/%d items", result.SyncedItems, result.TotalItems)))

	if len(result.Skipped) > 0 {
		r.writePlain("\n%s\n", formatter.RenderWarn(fmt.Sprintf("Skipped %d items:", len(result.Skipped))))
		for _, skip := range result.Skipped {
			r.writePlain("  - %s: %s\n", skip.VideoID, skip.Reason)
		}
	}

	return nil
}

// SyncBulk syncs several playlists, each into its own artifact.
func (r *Runner) SyncBulk(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireSource(); err != nil {
		return err
	}

	config := r.loadOrDefaultConfig(cmd.String("config"))
	ids := cmd.StringSlice("id")

	opts := tasks.BulkSyncOpts{
		OutputDir:  cmd.String("output-dir"),
		NumWorkers: int(cmd.Int("workers")),
		RateLimit:  cmd.Float("rate"),
	}

	r.logger.Info("starting bulk sync", "playlists", len(ids))
	r.writePlain("%s\n", formatter.RenderTitle(fmt.Sprintf("Syncing %d playlists", len(ids))))

	progressCh := make(chan tasks.ProgressUpdate, 100)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for update := range progressCh {
			r.writePlain("%s\n", update.Message)
		}
	}()

	engine, cleanup := r.syncEngine(config)
	defer cleanup()

	result, err := engine.Bulk(ctx, ids, opts, progressCh)
	close(progressCh)
	<-done

	if err != nil {
		return err
	}

	r.writePlain("\n")
	r.writePlainHeader("Bulk Sync Complete")
	r.writePlain("Artifacts: %s\n", result.OutputDirectory)
	r.writePlain("Manifest: %s\n", result.ManifestPath)
	r.writePlain("%s\n", formatter.RenderOK(fmt.Sprintf("Succeeded: %d/%d", result.Succeeded, result.TotalPlaylists)))
	if result.Failed > 0 {
		r.writePlain("%s\n", formatter.RenderWarn(fmt.Sprintf("Failed: %d", result.Failed)))
		for _, res := range result.Results {
			if !res.Success {
				r.writePlain("  - %s: %s\n", res.PlaylistID, res.Error)
			}
		}
	}

	return nil
}
