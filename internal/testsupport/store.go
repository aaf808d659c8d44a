package testsupport

import (
	"context"
	"testing"

	"ytchef/internal/cachestore"
	"ytchef/internal/config"
	"ytchef/internal/logging"
)

// MustOpenCache opens the configured cache backend for tests and registers
// cleanup.
func MustOpenCache(t testing.TB, cfg *config.Config) *cachestore.Cache {
	t.Helper()

	store, err := cachestore.Open(context.Background(), cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("cachestore.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return cachestore.New(store, nil)
}

// MustSave stores v under key.
func MustSave(t testing.TB, cache *cachestore.Cache, key string, v any) {
	t.Helper()

	if err := cache.Save(context.Background(), key, v); err != nil {
		t.Fatalf("cache.Save(%q): %v", key, err)
	}
}
