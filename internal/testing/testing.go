// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"testing"

	"github.com/desertthunder/ytcat/internal/models"
	"github.com/desertthunder/ytcat/internal/shared"
)

// MockSource is a configurable test double for [services.Source].
//
// Each operation can be overridden with a func field; unset operations
// return empty values. VideoCalls records every detail lookup in order.
type MockSource struct {
	PlaylistFunc      func(ctx context.Context, playlistID string) (*models.Playlist, error)
	PlaylistItemsFunc func(ctx context.Context, playlistID string) ([]models.Video, error)
	VideoFunc         func(ctx context.Context, videoID string) (*models.VideoDetail, error)

	VideoCalls []string
}

func (m *MockSource) Playlist(ctx context.Context, playlistID string) (*models.Playlist, error) {
	if m.PlaylistFunc != nil {
		return m.PlaylistFunc(ctx, playlistID)
	}
	return &models.Playlist{ID: playlistID}, nil
}

func (m *MockSource) PlaylistItems(ctx context.Context, playlistID string) ([]models.Video, error) {
	if m.PlaylistItemsFunc != nil {
		return m.PlaylistItemsFunc(ctx, playlistID)
	}
	return []models.Video{}, nil
}

func (m *MockSource) Video(ctx context.Context, videoID string) (*models.VideoDetail, error) {
	m.VideoCalls = append(m.VideoCalls, videoID)
	if m.VideoFunc != nil {
		return m.VideoFunc(ctx, videoID)
	}
	return &models.VideoDetail{}, nil
}

func (m *MockSource) Name() string { return "mock" }

// MockWriter is a test double for the snapshot writer. It captures what was
// written and can be forced to fail.
type MockWriter struct {
	Snapshots []*models.Snapshot
	Dests     []string
	Err       error
}

func (m *MockWriter) Write(snapshot *models.Snapshot, dest string) error {
	if m.Err != nil {
		return fmt.Errorf("%w: %v", shared.ErrWriteFailed, m.Err)
	}
	m.Snapshots = append(m.Snapshots, snapshot)
	m.Dests = append(m.Dests, dest)
	return nil
}

// MockRecorder captures run history records and can be forced to fail.
type MockRecorder struct {
	Runs []*models.SyncRun
	Err  error
}

func (m *MockRecorder) Create(run *models.SyncRun) error {
	if m.Err != nil {
		return m.Err
	}
	m.Runs = append(m.Runs, run)
	return nil
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func AssertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		t.Errorf("Directory does not exist: %s", path)
		return
	}
	if !info.IsDir() {
		t.Errorf("Path is not a directory: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
