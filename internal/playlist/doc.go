// Package playlist keeps cached playlist and video documents in step with
// YouTube.
//
// A playlist is fetched once, de-duplicated by video id and stored under its
// caller-chosen key (ytchef uses the playlist's language tag). Later runs are
// served from the cache until the caller passes the bypass flag. Individual
// videos can be patched into a cached playlist without refetching it.
package playlist
