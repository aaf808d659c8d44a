package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateCache(); err != nil {
		return err
	}
	if err := c.validateSheets(); err != nil {
		return err
	}
	if err := c.validateChannel(); err != nil {
		return err
	}
	if err := c.validatePlaylists(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateCache() error {
	switch c.Cache.Backend {
	case "file", "sqlite":
	case "redis":
		if c.Cache.RedisAddr == "" {
			return errors.New("cache.redis_addr must be set when cache.backend is \"redis\" (or set YTCHEF_REDIS_ADDR)")
		}
		if c.Cache.RedisDB < 0 {
			return errors.New("cache.redis_db must not be negative")
		}
	default:
		return fmt.Errorf("cache.backend: unsupported value %q (want file, sqlite or redis)", c.Cache.Backend)
	}
	if c.Paths.CacheDir == "" {
		return errors.New("paths.cache_dir must be set")
	}
	return nil
}

func (c *Config) validateSheets() error {
	switch c.Sheets.DescriptionsFrom {
	case "file":
	case "sheet":
		if c.Sheets.SpreadsheetID == "" {
			return errors.New("sheets.spreadsheet_id must be set when sheets.descriptions_from is \"sheet\"")
		}
	default:
		return fmt.Errorf("sheets.descriptions_from: unsupported value %q (want file or sheet)", c.Sheets.DescriptionsFrom)
	}
	return nil
}

func (c *Config) validateChannel() error {
	if c.Channel.Name == "" {
		return errors.New("channel.name must be set")
	}
	if c.Channel.Domain == "" {
		return errors.New("channel.domain must be set")
	}
	if c.Channel.SourceID == "" {
		return errors.New("channel.source_id must be set")
	}
	return nil
}

func (c *Config) validatePlaylists() error {
	seen := make(map[string]struct{}, len(c.Playlists))
	for i, p := range c.Playlists {
		if p.Language == "" {
			return fmt.Errorf("playlists[%d].language must be set", i)
		}
		key := strings.ToLower(p.Language)
		if _, dup := seen[key]; dup {
			return fmt.Errorf("playlists: language %q listed more than once", p.Language)
		}
		seen[key] = struct{}{}
	}
	return nil
}
