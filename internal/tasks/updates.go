package tasks

import "fmt"

// ProgressUpdate represents a progress event during a long-running operation.
//
// Used to send real-time updates to the CLI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data for advanced consumers
}

// Operation phase enumeration
type Phase int

const (
	FetchPlaylist Phase = iota
	FetchItems
	EnrichItems
	WriteArtifact
	SyncComplete
	BulkSync
)

func (p Phase) String() string {
	switch p {
	case FetchPlaylist:
		return "fetch_playlist"
	case FetchItems:
		return "fetch_items"
	case EnrichItems:
		return "enrich_items"
	case WriteArtifact:
		return "write_artifact"
	case SyncComplete:
		return "sync_complete"
	case BulkSync:
		return "bulk_sync"
	default:
		return ""
	}
}

func fetchPlaylistUpdate(playlistID string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchPlaylist,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Fetching playlist %s...", playlistID),
	}
}

func fetchItemsUpdate(title string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchItems,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Listing items in %s...", title),
	}
}

func enrichItemUpdate(step, total int, title string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   EnrichItems,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] %s", step, total, title),
	}
}

func skipItemUpdate(step, total int, videoID, reason string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   EnrichItems,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] ✗ skipping %s: %s", step, total, videoID, reason),
	}
}

func writeArtifactUpdate(dest string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   WriteArtifact,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Writing snapshot to %s...", dest),
	}
}

func syncCompleteUpdate(result *SyncRunResult) ProgressUpdate {
	return ProgressUpdate{
		Phase:   SyncComplete,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Synced %d/%d items", result.SyncedItems, result.TotalItems),
		Data:    result,
	}
}

func bulkPlaylistUpdate(step, total int, playlistID string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   BulkSync,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] Syncing %s...", step, total, playlistID),
	}
}

func bulkCompletedUpdate(step, total int, title string, synced int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   BulkSync,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] ✓ %s (%d items)", step, total, title, synced),
	}
}

func bulkFailedUpdate(step, total int, playlistID string, err error) ProgressUpdate {
	return ProgressUpdate{
		Phase:   BulkSync,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] ✗ %s: %v", step, total, playlistID, err),
	}
}
