// Package catalog normalizes source records into catalog entities and
// produces the snapshot artifact consumed by the external bulk upsert.
//
// # Normalization
//
// [NormalizePlaylist] and [NormalizeVideo] map raw records into
// [models.Entity] values with a stable identifier, a blueprint tag, a flat
// property mapping, and relation references. Rules:
//
//   - Required textual fields must be present; absence fails the single
//     entity with [shared.ErrMissingRequiredField].
//   - The thumbnails property always carries the full size-variant key set,
//     with "" for variants the remote omitted.
//   - Optional owner fields default to ""; position is omitted rather than
//     fabricated when the listing did not carry one.
//   - Links are derived from identifiers, never copied from upstream.
//   - Member entities carry exactly one relation, playlist → collection id.
//
// # Snapshot assembly and writing
//
// [Assemble] places the playlist entity first so consumers that upsert in
// document order can validate relation targets eagerly. [Writer.Write]
// serializes the snapshot to JSON atomically: the destination either holds a
// complete artifact or the previous one, never a truncated document.
package catalog
