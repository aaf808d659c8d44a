package cachestore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrInvalidKey is returned for keys that cannot be mapped to an entry.
	ErrInvalidKey = errors.New("invalid cache key")
	// ErrCorrupt marks a stored document that does not parse as JSON.
	ErrCorrupt = errors.New("corrupt cache entry")
)

// Store is the raw key-value contract shared by all backends.
type Store interface {
	// Get returns the stored bytes and true, or nil and false when the key
	// has never been written.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Put stores data under key, replacing any previous value.
	Put(ctx context.Context, key string, data []byte) error
	Exists(ctx context.Context, key string) (bool, error)
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// List describes every entry, sorted by key.
	List(ctx context.Context) ([]EntryInfo, error)
	Close() error
}

// EntryInfo summarizes one stored entry.
type EntryInfo struct {
	Key       string    `json:"key"`
	Size      int64     `json:"size"`
	UpdatedAt time.Time `json:"updated_at,omitzero"`
}

// ValidateKey rejects keys that are empty or could escape a flat directory.
func ValidateKey(key string) error {
	trimmed := strings.TrimSpace(key)
	switch {
	case trimmed == "":
		return fmt.Errorf("%w: empty", ErrInvalidKey)
	case trimmed != key:
		return fmt.Errorf("%w: %q has surrounding whitespace", ErrInvalidKey, key)
	case strings.ContainsAny(key, `/\`):
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidKey, key)
	case strings.HasPrefix(key, "."):
		return fmt.Errorf("%w: %q starts with a dot", ErrInvalidKey, key)
	}
	return nil
}
