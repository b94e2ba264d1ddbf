// Package redis provides Redis connectivity and the per-session score
// history store used by the analysis service.
//
// The score store keeps a capped list of JSON-encoded samples per session
// so summaries can be computed over a session's full run without holding
// state in process memory.
package redis
