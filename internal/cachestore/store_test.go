package cachestore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newFileStore(t *testing.T) Store {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "youtubecache"))
}

func newSQLiteStore(t *testing.T) Store {
	t.Helper()
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func newRedisStore(t *testing.T) Store {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewRedisStore(client, "test:cache:")
	t.Cleanup(func() { _ = store.Close() })
	return store
}

var backends = []struct {
	name string
	open func(t *testing.T) Store
}{
	{"file", newFileStore},
	{"sqlite", newSQLiteStore},
	{"redis", newRedisStore},
}

func TestStoreGetNeverWrittenReportsAbsent(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			store := b.open(t)
			data, ok, err := store.Get(context.Background(), "never-written")
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			if ok || data != nil {
				t.Fatalf("expected absent, got ok=%v data=%q", ok, data)
			}
			exists, err := store.Exists(context.Background(), "never-written")
			if err != nil || exists {
				t.Fatalf("expected Exists=false, got %v err=%v", exists, err)
			}
		})
	}
}

func TestStorePutGetRoundTripAndOverwrite(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			ctx := context.Background()
			store := b.open(t)

			if err := store.Put(ctx, "en", []byte(`{"v":1}`)); err != nil {
				t.Fatalf("Put: %v", err)
			}
			if err := store.Put(ctx, "en", []byte(`{"v":2}`)); err != nil {
				t.Fatalf("Put overwrite: %v", err)
			}
			data, ok, err := store.Get(ctx, "en")
			if err != nil || !ok {
				t.Fatalf("Get: ok=%v err=%v", ok, err)
			}
			if string(data) != `{"v":2}` {
				t.Fatalf("expected overwritten value, got %q", data)
			}
			exists, err := store.Exists(ctx, "en")
			if err != nil || !exists {
				t.Fatalf("expected Exists=true, got %v err=%v", exists, err)
			}
		})
	}
}

func TestStoreListAndDelete(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			ctx := context.Background()
			store := b.open(t)

			for _, key := range []string{"ru", "dQw4w9WgXcQ", "Kachin"} {
				if err := store.Put(ctx, key, []byte(`{}`)); err != nil {
					t.Fatalf("Put %s: %v", key, err)
				}
			}
			infos, err := store.List(ctx)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if len(infos) != 3 {
				t.Fatalf("expected 3 entries, got %d", len(infos))
			}
			if infos[0].Key != "Kachin" || infos[1].Key != "dQw4w9WgXcQ" || infos[2].Key != "ru" {
				t.Fatalf("expected sorted keys, got %+v", infos)
			}
			if infos[0].Size != 2 {
				t.Fatalf("expected size 2, got %d", infos[0].Size)
			}

			if err := store.Delete(ctx, "ru"); err != nil {
				t.Fatalf("Delete: %v", err)
			}
			if err := store.Delete(ctx, "ru"); err != nil {
				t.Fatalf("Delete of missing key should succeed: %v", err)
			}
			if _, ok, _ := store.Get(ctx, "ru"); ok {
				t.Fatal("expected deleted key to be absent")
			}
		})
	}
}

func TestStoreRejectsInvalidKeys(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			store := b.open(t)
			for _, key := range []string{"", " en", "../escape", `a\b`, ".hidden"} {
				if err := store.Put(context.Background(), key, []byte(`{}`)); !errors.Is(err, ErrInvalidKey) {
					t.Fatalf("Put(%q): expected ErrInvalidKey, got %v", key, err)
				}
			}
		})
	}
}

func TestFileStoreLayoutIsOneFilePerKey(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "youtubecache")
	store := NewFileStore(dir)
	if err := store.Put(context.Background(), "es", []byte(`{}`)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "es.json")); err != nil {
		t.Fatalf("expected es.json on disk: %v", err)
	}

	// Files that are not cache entries are ignored by List.
	if err := os.WriteFile(filepath.Join(dir, ".ytchef.lock"), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	infos, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(infos) != 1 || infos[0].Key != "es" {
		t.Fatalf("unexpected entries: %+v", infos)
	}
}

func TestFileStoreListMissingDirectory(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "missing"))
	infos, err := store.List(context.Background())
	if err != nil || len(infos) != 0 {
		t.Fatalf("expected empty list, got %v err=%v", infos, err)
	}
}

func TestSQLiteStorePersistsAcrossOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	first, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	if err := first.Put(context.Background(), "uk", []byte(`{"id":"PL"}`)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	second, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer second.Close()
	data, ok, err := second.Get(context.Background(), "uk")
	if err != nil || !ok || string(data) != `{"id":"PL"}` {
		t.Fatalf("expected persisted entry, got %q ok=%v err=%v", data, ok, err)
	}
}
