// Package cachestore persists playlist and video metadata documents keyed by
// a flat string key (a language tag for playlists, a video id for videos).
//
// # Backends
//
// Store is a minimal key-value contract with three implementations:
//
//   - FileStore: one indent-formatted <key>.json per entry in a flat
//     directory. This is the default and the layout operators inspect or
//     edit by hand.
//   - SQLiteStore: a single cache_entries table in an embedded SQLite file.
//   - RedisStore: string values under a configurable key prefix.
//
// Entries never expire. Staleness is managed by the operator deleting
// entries (ytchef cache remove) or passing --nocache.
//
// # JSON layer
//
// Cache wraps a Store with the JSON codec and the bypass flag. A bypassed or
// missing key reports absent; a document that fails to parse is returned as
// an ErrCorrupt error rather than silently refetched.
//
// Writes are last-writer-wins. Concurrent runs against one cache directory are
// serialized at the CLI with a file lock, not here.
package cachestore
