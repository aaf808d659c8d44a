package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeCache(); err != nil {
		return err
	}
	c.normalizeYouTube()
	if err := c.normalizeSheets(); err != nil {
		return err
	}
	c.normalizeChannel()
	c.normalizePlaylists()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.CacheDir) == "" {
		c.Paths.CacheDir = defaultCacheDir()
	}
	if c.Paths.CacheDir, err = expandPath(c.Paths.CacheDir); err != nil {
		return fmt.Errorf("paths.cache_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.DescriptionsPath) == "" {
		c.Paths.DescriptionsPath = filepath.Join(filepath.Dir(c.Paths.CacheDir), defaultDescriptionsFile)
	}
	if c.Paths.DescriptionsPath, err = expandPath(c.Paths.DescriptionsPath); err != nil {
		return fmt.Errorf("paths.descriptions_path: %w", err)
	}
	if strings.TrimSpace(c.Paths.OutputPath) == "" {
		c.Paths.OutputPath = defaultOutputPath
	}
	if c.Paths.OutputPath, err = expandPath(c.Paths.OutputPath); err != nil {
		return fmt.Errorf("paths.output_path: %w", err)
	}
	return nil
}

func (c *Config) normalizeCache() error {
	c.Cache.Backend = strings.ToLower(strings.TrimSpace(c.Cache.Backend))
	if c.Cache.Backend == "" {
		c.Cache.Backend = defaultCacheBackend
	}
	if strings.TrimSpace(c.Cache.SQLitePath) == "" {
		c.Cache.SQLitePath = filepath.Join(c.Paths.CacheDir, defaultSQLiteFile)
	}
	var err error
	if c.Cache.SQLitePath, err = expandPath(c.Cache.SQLitePath); err != nil {
		return fmt.Errorf("cache.sqlite_path: %w", err)
	}
	c.Cache.RedisAddr = strings.TrimSpace(c.Cache.RedisAddr)
	if c.Cache.RedisAddr == "" {
		if value, ok := os.LookupEnv("YTCHEF_REDIS_ADDR"); ok {
			c.Cache.RedisAddr = strings.TrimSpace(value)
		}
	}
	if c.Cache.RedisPassword == "" {
		if value, ok := os.LookupEnv("YTCHEF_REDIS_PASSWORD"); ok {
			c.Cache.RedisPassword = value
		}
	}
	if strings.TrimSpace(c.Cache.RedisPrefix) == "" {
		c.Cache.RedisPrefix = defaultRedisPrefix
	}
	return nil
}

func (c *Config) normalizeYouTube() {
	c.YouTube.YtdlpPath = strings.TrimSpace(c.YouTube.YtdlpPath)
	if c.YouTube.YtdlpPath == "" {
		c.YouTube.YtdlpPath = defaultYtdlpPath
	}
	if c.YouTube.TimeoutSeconds <= 0 {
		c.YouTube.TimeoutSeconds = defaultYtdlpTimeout
	}
	args := c.YouTube.ExtraArgs[:0]
	for _, arg := range c.YouTube.ExtraArgs {
		if trimmed := strings.TrimSpace(arg); trimmed != "" {
			args = append(args, trimmed)
		}
	}
	c.YouTube.ExtraArgs = args
}

func (c *Config) normalizeSheets() error {
	c.Sheets.SpreadsheetID = strings.TrimSpace(c.Sheets.SpreadsheetID)
	if value, ok := os.LookupEnv("YTCHEF_SHEET_ID"); ok && strings.TrimSpace(value) != "" {
		c.Sheets.SpreadsheetID = strings.TrimSpace(value)
	}
	c.Sheets.CredentialsPath = strings.TrimSpace(c.Sheets.CredentialsPath)
	if c.Sheets.CredentialsPath == "" {
		if value, ok := os.LookupEnv("GOOGLE_APPLICATION_CREDENTIALS"); ok {
			c.Sheets.CredentialsPath = strings.TrimSpace(value)
		}
	}
	var err error
	if c.Sheets.CredentialsPath, err = expandPath(c.Sheets.CredentialsPath); err != nil {
		return fmt.Errorf("sheets.credentials_path: %w", err)
	}
	c.Sheets.Range = strings.TrimSpace(c.Sheets.Range)
	if c.Sheets.Range == "" {
		c.Sheets.Range = defaultSheetRange
	}
	c.Sheets.DescriptionsFrom = strings.ToLower(strings.TrimSpace(c.Sheets.DescriptionsFrom))
	if c.Sheets.DescriptionsFrom == "" {
		c.Sheets.DescriptionsFrom = defaultDescriptionsFrom
	}
	return nil
}

func (c *Config) normalizeChannel() {
	ch := &c.Channel
	ch.Name = strings.TrimSpace(ch.Name)
	ch.Domain = strings.TrimSpace(ch.Domain)
	ch.SourceID = strings.TrimSpace(ch.SourceID)
	ch.Language = strings.TrimSpace(ch.Language)
	if ch.Language == "" {
		ch.Language = defaultChannelLanguage
	}
	ch.Author = strings.TrimSpace(ch.Author)
	ch.License = strings.TrimSpace(ch.License)
	if ch.License == "" {
		ch.License = defaultChannelLicense
	}
	ch.CopyrightHolder = strings.TrimSpace(ch.CopyrightHolder)
	if ch.CopyrightHolder == "" {
		ch.CopyrightHolder = ch.Author
	}
	if strings.TrimSpace(ch.TopicSourcePrefix) == "" {
		ch.TopicSourcePrefix = defaultTopicSourcePrefix
	}
	if strings.TrimSpace(ch.VideoSourcePrefix) == "" {
		ch.VideoSourcePrefix = defaultVideoSourcePrefix
	}
}

func (c *Config) normalizePlaylists() {
	for i := range c.Playlists {
		c.Playlists[i].Language = strings.TrimSpace(c.Playlists[i].Language)
		ids := make([]string, 0, len(c.Playlists[i].IDs))
		for _, id := range c.Playlists[i].IDs {
			if trimmed := strings.TrimSpace(id); trimmed != "" {
				ids = append(ids, trimmed)
			}
		}
		c.Playlists[i].IDs = ids
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
