package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/desertthunder/ytcat/internal/models"
	"github.com/desertthunder/ytcat/internal/shared"
)

// Writer persists snapshots as JSON artifacts.
type Writer struct{}

// NewWriter creates a snapshot writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Write serializes the snapshot to dest atomically: the document is written
// to a temporary file in the destination directory and renamed into place,
// so a partial artifact is never observable and a prior artifact survives
// any failure. Errors wrap shared.ErrWriteFailed; there are no retries.
func (w *Writer) Write(snapshot *models.Snapshot, dest string) error {
	if snapshot == nil {
		return fmt.Errorf("%w: nil snapshot", shared.ErrWriteFailed)
	}
	if dest == "" {
		return fmt.Errorf("%w: destination path is required", shared.ErrWriteFailed)
	}

	data, err := shared.MarshalJSON(snapshot, true)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrWriteFailed, err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(dest)
	tmp, err := os.CreateTemp(dir, ".snapshot-*.json")
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrWriteFailed, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("%w: %v", shared.ErrWriteFailed, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: %v", shared.ErrWriteFailed, err)
	}

	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: %v", shared.ErrWriteFailed, err)
	}

	if err := os.Rename(tmpPath, dest); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: %v", shared.ErrWriteFailed, err)
	}

	return nil
}
