// package tasks implements the playlist sync pipeline.
//
// The core abstraction is SyncEngine, which orchestrates single-playlist syncs
// and bulk multi-playlist syncs. A run fetches collection metadata, lists the
// membership page by page, enriches each member with its detail record,
// normalizes everything into catalog entities, and writes one snapshot
// artifact. Operations emit progress updates via channels for non-blocking
// status reporting to the CLI layer.
//
// Failure scoping: playlist-level failures abort the run; member-level
// failures (missing detail record, incomplete required fields) are logged as
// warnings and the member is skipped, so one bad member never poisons the
// artifact.
package tasks
