package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"ytchef/internal/config"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("XDG_CACHE_HOME", "")
	t.Setenv("YTCHEF_SHEET_ID", "")
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantCache := filepath.Join(tempHome, ".cache", "ytchef", "youtubecache")
	if cfg.Paths.CacheDir != wantCache {
		t.Fatalf("unexpected cache dir: got %q want %q", cfg.Paths.CacheDir, wantCache)
	}
	if cfg.Paths.DescriptionsPath != filepath.Join(tempHome, ".cache", "ytchef", "video_description.json") {
		t.Fatalf("unexpected descriptions path: %q", cfg.Paths.DescriptionsPath)
	}
	if cfg.Cache.Backend != "file" {
		t.Fatalf("expected file backend by default, got %q", cfg.Cache.Backend)
	}
	if cfg.Cache.SQLitePath != filepath.Join(wantCache, "cache.db") {
		t.Fatalf("unexpected sqlite path: %q", cfg.Cache.SQLitePath)
	}
	if cfg.Channel.CopyrightHolder != "Refugee Response" {
		t.Fatalf("unexpected copyright holder: %q", cfg.Channel.CopyrightHolder)
	}
	if len(cfg.Playlists) == 0 || cfg.Playlists[0].Language != "en" {
		t.Fatalf("expected default playlists starting with en, got %+v", cfg.Playlists)
	}
	if cfg.LockPath() != filepath.Join(wantCache, ".ytchef.lock") {
		t.Fatalf("unexpected lock path: %q", cfg.LockPath())
	}
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	if info, err := os.Stat(cfg.Paths.CacheDir); err != nil || !info.IsDir() {
		t.Fatalf("expected cache dir to exist: %v", err)
	}
}

func TestLoadCustomPathReplacesPlaylists(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "ytchef.toml")

	type playlist struct {
		Language string   `toml:"language"`
		IDs      []string `toml:"ids"`
	}
	type payload struct {
		Paths struct {
			CacheDir string `toml:"cache_dir"`
		} `toml:"paths"`
		Cache struct {
			Backend string `toml:"backend"`
		} `toml:"cache"`
		Playlists []playlist `toml:"playlists"`
	}
	custom := payload{}
	custom.Paths.CacheDir = filepath.Join(tempDir, "cache")
	custom.Cache.Backend = " SQLite "
	custom.Playlists = []playlist{
		{Language: "fr", IDs: []string{" PLfrench ", ""}},
		{Language: "Karen", IDs: []string{"PLkaren"}},
	}
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != configPath {
		t.Fatalf("unexpected resolution: %q exists=%v", resolved, exists)
	}
	if cfg.Cache.Backend != "sqlite" {
		t.Fatalf("expected normalized backend sqlite, got %q", cfg.Cache.Backend)
	}
	if len(cfg.Playlists) != 2 {
		t.Fatalf("expected file playlists to replace defaults, got %d", len(cfg.Playlists))
	}
	fr, ok := cfg.PlaylistFor("FR")
	if !ok {
		t.Fatal("expected case-insensitive playlist lookup")
	}
	if fr.PrimaryID() != "PLfrench" || len(fr.IDs) != 1 {
		t.Fatalf("unexpected normalized ids: %+v", fr.IDs)
	}
	if _, ok := cfg.PlaylistFor("en"); ok {
		t.Fatal("default en playlist should be replaced")
	}
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "ytchef.toml")
	if err := os.WriteFile(configPath, []byte("[cache]\nbackend = \"memcached\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, _, _, err := config.Load(configPath)
	if err == nil || !strings.Contains(err.Error(), "cache.backend") {
		t.Fatalf("expected cache.backend error, got %v", err)
	}
}

func TestRedisBackendRequiresAddress(t *testing.T) {
	t.Setenv("YTCHEF_REDIS_ADDR", "")
	cfg := config.Default()
	cfg.Cache.Backend = "redis"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error without redis address")
	}
	cfg.Cache.RedisAddr = "127.0.0.1:6379"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSheetEnvOverridesFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "ytchef.toml")
	content := "[sheets]\nspreadsheet_id = \"file-sheet\"\ndescriptions_from = \"sheet\"\n"
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("YTCHEF_SHEET_ID", "env-sheet")

	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Sheets.SpreadsheetID != "env-sheet" {
		t.Fatalf("expected env sheet id, got %q", cfg.Sheets.SpreadsheetID)
	}
}

func TestDuplicatePlaylistLanguageRejected(t *testing.T) {
	cfg := config.Default()
	cfg.Playlists = append(cfg.Playlists, config.Playlist{Language: "EN", IDs: []string{"x"}})
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected duplicate language error")
	}
}

func TestCreateSampleIsLoadable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	if _, _, exists, err := config.Load(path); err != nil || !exists {
		t.Fatalf("sample config should load: exists=%v err=%v", exists, err)
	}
}

func TestPlaylistRequireID(t *testing.T) {
	id, err := config.Playlist{Language: "en", IDs: []string{"PL1", "PL2"}}.RequireID()
	if err != nil || id != "PL1" {
		t.Fatalf("RequireID = %q, %v", id, err)
	}
	for _, p := range []config.Playlist{{Language: "en"}, {Language: "en", IDs: []string{" "}}} {
		if _, err := p.RequireID(); !errors.Is(err, config.ErrNoPlaylistIDs) {
			t.Fatalf("RequireID(%+v) error = %v, want ErrNoPlaylistIDs", p, err)
		}
	}
}
