package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"ytchef/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config whose paths all live under a unique temp
// directory. Spreadsheet settings are cleared and logging is quiet.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.CacheDir = filepath.Join(base, "cache")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Paths.DescriptionsPath = filepath.Join(base, "video_description.json")
	cfgVal.Paths.OutputPath = filepath.Join(base, "out", "channel_tree.json")
	cfgVal.Cache.SQLitePath = filepath.Join(base, "cache", "cache.db")
	cfgVal.Sheets.SpreadsheetID = ""
	cfgVal.Sheets.CredentialsPath = ""
	cfgVal.Logging.Level = "error"

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithPlaylists replaces the configured playlists.
func WithPlaylists(playlists ...config.Playlist) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Playlists = playlists
	}
}

// WithCacheBackend selects the cache backend.
func WithCacheBackend(backend string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Cache.Backend = backend
	}
}

// WithStubbedYtdlp writes a yt-dlp stub that prints version and points the
// config at it.
func WithStubbedYtdlp(version string) ConfigOption {
	return func(b *configBuilder) {
		binDir := filepath.Join(b.baseDir, "bin")
		if err := os.MkdirAll(binDir, 0o755); err != nil {
			b.t.Fatalf("mkdir bin dir: %v", err)
		}
		target := filepath.Join(binDir, "yt-dlp")
		script := []byte("#!/bin/sh\necho " + version + "\n")
		if err := os.WriteFile(target, script, 0o755); err != nil {
			b.t.Fatalf("write yt-dlp stub: %v", err)
		}
		b.cfg.YouTube.YtdlpPath = target
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.CacheDir)
}

// WriteConfig marshals cfg to ytchef.toml under its base directory and
// returns the file path.
func WriteConfig(t testing.TB, cfg *config.Config) string {
	t.Helper()

	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	path := filepath.Join(BaseDir(cfg), "ytchef.toml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}
