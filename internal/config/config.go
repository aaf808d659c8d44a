package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory and file locations.
type Paths struct {
	CacheDir         string `toml:"cache_dir"`
	LogDir           string `toml:"log_dir"`
	DescriptionsPath string `toml:"descriptions_path"`
	OutputPath       string `toml:"output_path"`
}

// Cache selects and configures the metadata cache backend.
type Cache struct {
	Backend       string `toml:"backend"` // "file", "sqlite" or "redis"
	SQLitePath    string `toml:"sqlite_path"`
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
	RedisPrefix   string `toml:"redis_prefix"`
}

// YouTube contains configuration for the yt-dlp metadata fetcher.
type YouTube struct {
	YtdlpPath      string   `toml:"ytdlp_path"`
	TimeoutSeconds int      `toml:"timeout_seconds"`
	ExtraArgs      []string `toml:"extra_args"`
}

// Sheets contains configuration for the Google Sheets description store.
type Sheets struct {
	SpreadsheetID    string `toml:"spreadsheet_id"`
	CredentialsPath  string `toml:"credentials_path"`
	Range            string `toml:"range"`
	DescriptionsFrom string `toml:"descriptions_from"` // "file" or "sheet"
}

// Channel describes the channel metadata stamped onto the content tree.
type Channel struct {
	Name              string `toml:"name"`
	Domain            string `toml:"domain"`
	SourceID          string `toml:"source_id"`
	Language          string `toml:"language"`
	Description       string `toml:"description"`
	Thumbnail         string `toml:"thumbnail"`
	Author            string `toml:"author"`
	License           string `toml:"license"`
	CopyrightHolder   string `toml:"copyright_holder"`
	TopicSourcePrefix string `toml:"topic_source_prefix"`
	VideoSourcePrefix string `toml:"video_source_prefix"`
}

// Playlist maps a language tag to the playlists published for it. Only the
// first id is used; the rest are kept for reference.
type Playlist struct {
	Language string   `toml:"language"`
	IDs      []string `toml:"ids"`
}

// PrimaryID returns the playlist id used for fetching, or "" when none is set.
func (p Playlist) PrimaryID() string {
	if len(p.IDs) == 0 {
		return ""
	}
	return p.IDs[0]
}

// ErrNoPlaylistIDs is returned when a configured language lists no playlist.
var ErrNoPlaylistIDs = errors.New("no playlist ids configured")

// RequireID returns the primary playlist id, or ErrNoPlaylistIDs when the
// language has none.
func (p Playlist) RequireID() (string, error) {
	if id := strings.TrimSpace(p.PrimaryID()); id != "" {
		return id, nil
	}
	return "", fmt.Errorf("playlist %q: %w", p.Language, ErrNoPlaylistIDs)
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for ytchef.
//
// Configuration sections by subsystem:
//   - Paths: cache, log, description and output locations
//   - Cache: cache backend selection (file, sqlite, redis)
//   - YouTube: yt-dlp binary and timeouts
//   - Sheets: spreadsheet id and credentials
//   - Channel: channel metadata and source id prefixes
//   - Playlists: ordered language -> playlist ids
//   - Logging: log format and level
type Config struct {
	Paths     Paths      `toml:"paths"`
	Cache     Cache      `toml:"cache"`
	YouTube   YouTube    `toml:"youtube"`
	Sheets    Sheets     `toml:"sheets"`
	Channel   Channel    `toml:"channel"`
	Playlists []Playlist `toml:"playlists"`
	Logging   Logging    `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		// A file that lists playlists replaces the default set instead of
		// appending to it.
		cfg.Playlists = nil
		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
		if len(cfg.Playlists) == 0 {
			cfg.Playlists = defaultPlaylists()
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath(defaultConfigPath)
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("ytchef.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the cache and log directories.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.CacheDir, c.Paths.LogDir} {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// PlaylistFor returns the configured playlist for a language tag.
func (c *Config) PlaylistFor(lang string) (Playlist, bool) {
	lang = strings.TrimSpace(lang)
	for _, p := range c.Playlists {
		if strings.EqualFold(p.Language, lang) {
			return p, true
		}
	}
	return Playlist{}, false
}

// LockPath returns the file used to serialize cache writers.
func (c *Config) LockPath() string {
	return filepath.Join(c.Paths.CacheDir, ".ytchef.lock")
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
