package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/ytcat/internal/formatter"
	"github.com/desertthunder/ytcat/internal/models"
	"github.com/desertthunder/ytcat/internal/repositories"
	"github.com/desertthunder/ytcat/internal/shared"
	"github.com/urfave/cli/v3"
)

// runRecord is the JSON shape for run history output.
type runRecord struct {
	ID            string `json:"id"`
	PlaylistID    string `json:"playlist_id"`
	PlaylistTitle string `json:"playlist_title,omitempty"`
	Status        string `json:"status"`
	TotalItems    int    `json:"total_items"`
	SyncedItems   int    `json:"synced_items"`
	SkippedItems  int    `json:"skipped_items"`
	ArtifactPath  string `json:"artifact_path,omitempty"`
	Error         string `json:"error,omitempty"`
	CreatedAt     string `json:"created_at"`
}

func toRunRecord(run *models.SyncRun) runRecord {
	return runRecord{
		ID:            run.ID(),
		PlaylistID:    run.PlaylistID(),
		PlaylistTitle: run.PlaylistTitle(),
		Status:        run.Status(),
		TotalItems:    run.TotalItems(),
		SyncedItems:   run.SyncedItems(),
		SkippedItems:  run.SkippedItems(),
		ArtifactPath:  run.ArtifactPath(),
		Error:         run.Error(),
		CreatedAt:     run.CreatedAt().Format("2006-01-02 15:04:05"),
	}
}

// RunsList lists recent sync runs from the history database.
func (r *Runner) RunsList(ctx context.Context, cmd *cli.Command) error {
	config := r.loadOrDefaultConfig(cmd.String("config"))
	limit := int(cmd.Int("limit"))
	playlistID := cmd.String("playlist")
	useJSON := cmd.Bool("json")

	db, err := shared.NewDatabase(config.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database (run `ytcat setup database` first): %w", err)
	}
	defer db.Close()

	repo := repositories.NewRunRepository(db)

	var runs []*models.SyncRun
	if playlistID != "" {
		runs, err = repo.ListByPlaylist(playlistID, limit)
	} else {
		runs, err = repo.List(limit)
	}
	if err != nil {
		return err
	}

	if useJSON {
		records := make([]runRecord, 0, len(runs))
		for _, run := range runs {
			records = append(records, toRunRecord(run))
		}
		return r.writeJSON(records, true)
	}

	if len(runs) == 0 {
		r.writePlain("No sync runs recorded.\n")
		return nil
	}

	r.writePlainHeader("Sync Runs")
	for _, run := range runs {
		record := toRunRecord(run)
		status := formatter.RenderOK(record.Status)
		if record.Status == models.RunStatusFailed {
			status = formatter.RenderErr(record.Status)
		}
		r.writePlain("#%d %s %s", run.Sequence(), record.CreatedAt, status)
		r.writePlain("  %s (%s)  %d/%d items", record.PlaylistTitle, record.PlaylistID, record.SyncedItems, record.TotalItems)
		if record.SkippedItems > 0 {
			r.writePlain("  %s", formatter.RenderWarn(fmt.Sprintf("%d skipped", record.SkippedItems)))
		}
		r.writePlain("\n")
		if record.Error != "" {
			r.writePlain("    %s\n", formatter.RenderHelp(record.Error))
		}
	}

	return nil
}
