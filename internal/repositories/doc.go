// Package repositories implements SQLite persistence for subscription snapshots.
//
// The server remains the source of truth for subscriptions. The only thing
// persisted locally is the most recent successful refresh, so the CLI can show
// the last known list while offline.
//
// Key Implementations:
//   - [SnapshotRepository] : Stores and retrieves subscription list snapshots keyed by fetch time
package repositories
