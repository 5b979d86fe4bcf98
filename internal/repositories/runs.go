package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/desertthunder/ytcat/internal/models"
	"github.com/desertthunder/ytcat/internal/shared"
)

// RunRepository implements models.Repository[*models.SyncRun] for sync run history.
type RunRepository struct {
	db *sql.DB
}

// NewRunRepository creates a new RunRepository with the given database connection
func NewRunRepository(db *sql.DB) *RunRepository {
	return &RunRepository{db: db}
}

// Create inserts a new run record into the database with generated ID and sequence
func (r *RunRepository) Create(run *models.SyncRun) error {
	sequence, err := NextSequence(r.db, "sync_runs")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}

	id := shared.GenerateID()
	run.SetID(id)
	run.SetSequence(sequence)

	if err := run.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO sync_runs (id, sequence, playlist_id, playlist_title, status, total_items, synced_items, skipped_items, artifact_path, error, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(query,
		id,
		sequence,
		run.PlaylistID(),
		run.PlaylistTitle(),
		run.Status(),
		run.TotalItems(),
		run.SyncedItems(),
		run.SkippedItems(),
		run.ArtifactPath(),
		run.Error(),
		run.CreatedAt(),
		run.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert sync run: %w", err)
	}

	return nil
}

// Get retrieves a run record by ID
func (r *RunRepository) Get(id string) (*models.SyncRun, error) {
	query := `
		SELECT id, sequence, playlist_id, playlist_title, status, total_items, synced_items, skipped_items, artifact_path, error, created_at, updated_at
		FROM sync_runs
		WHERE id = ?
	`

	run, err := scanRun(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("sync run not found: %s", id)
	}
	return run, err
}

// List retrieves the most recent run records, newest first
func (r *RunRepository) List(limit int) ([]*models.SyncRun, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT id, sequence, playlist_id, playlist_title, status, total_items, synced_items, skipped_items, artifact_path, error, created_at, updated_at
		FROM sync_runs
		ORDER BY sequence DESC
		LIMIT ?
	`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query sync runs: %w", err)
	}
	defer rows.Close()

	var runs []*models.SyncRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return runs, nil
}

// ListByPlaylist retrieves run records for a single playlist, newest first
func (r *RunRepository) ListByPlaylist(playlistID string, limit int) ([]*models.SyncRun, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT id, sequence, playlist_id, playlist_title, status, total_items, synced_items, skipped_items, artifact_path, error, created_at, updated_at
		FROM sync_runs
		WHERE playlist_id = ?
		ORDER BY sequence DESC
		LIMIT ?
	`

	rows, err := r.db.Query(query, playlistID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query sync runs: %w", err)
	}
	defer rows.Close()

	var runs []*models.SyncRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return runs, nil
}

// scanner abstracts sql.Row and sql.Rows for shared scan logic
type scanner interface {
	Scan(dest ...any) error
}

// scanRun scans a row into a [models.SyncRun]
func scanRun(row scanner) (*models.SyncRun, error) {
	var (
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
	)

	err := row.Scan(&id, &sequence, &playlistID, &playlistTitle, &status, &totalItems, &syncedItems, &skippedItems, &artifactPath, &errMessage, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan sync run: %w", err)
	}

	run := models.NewSyncRun(playlistID)
	run.SetID(id)
	run.SetSequence(sequence)
	run.SetPlaylistTitle(playlistTitle)
	run.SetStatus(status)
	run.SetCounts(totalItems, syncedItems, skippedItems)
	run.SetArtifactPath(artifactPath)
	run.SetError(errMessage)
	run.SetCreatedAt(createdAt)
	run.SetUpdatedAt(updatedAt)

	return run, nil
}
