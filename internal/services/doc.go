// Package services defines the [Source] interface for remote content-catalog APIs and implements it for the YouTube Data API v3.
//
// # Source Interface
//
// The pipeline consumes three read operations: a single collection-info
// lookup, the paginated membership listing, and the per-member detail lookup.
// All three return parsed, typed records; malformed upstream responses
// surface as named errors at the pipeline boundary instead of missing-key
// faults deep in serialization.
//
// # YouTube Implementation
//
// [YouTubeService] wraps the official google.golang.org/api youtube/v3
// client. Credentials come from configuration: an API key for public
// playlists, or an OAuth2 access token (via [oauth2.StaticTokenSource]) for
// private ones. Token acquisition is out of scope; the value is opaque.
//
// A [rate.Limiter] paces every outgoing request. The request count per run
// is bounded and predictable: ⌈N/pageSize⌉ listing pages plus one detail
// lookup per member, issued strictly sequentially.
//
// # Error Handling
//
// Sources use typed errors from the shared package:
//   - [shared.ErrRemoteUnavailable] : transport, auth, or quota failure
//   - [shared.ErrNotFound] : the collection id has no upstream record
//   - [shared.ErrItemDetailUnavailable] : detail lookup returned zero items
package services
