package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	defaultConfigPath        = "~/.config/ytchef/config.toml"
	defaultLogDir            = "~/.local/share/ytchef/logs"
	defaultDescriptionsFile  = "video_description.json"
	defaultOutputPath        = "chefdata/channel_tree.json"
	defaultCacheBackend      = "file"
	defaultSQLiteFile        = "cache.db"
	defaultRedisPrefix       = "ytchef:cache:"
	defaultYtdlpPath         = "yt-dlp"
	defaultYtdlpTimeout      = 600
	defaultSheetRange        = "Sheet1!A:E"
	defaultDescriptionsFrom  = "file"
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
	defaultChannelName       = "Crisis Advice from the Refugee Response"
	defaultChannelDomain     = "refugeeresponse.org"
	defaultChannelSourceID   = "refugee-response"
	defaultChannelLanguage   = "mul"
	defaultChannelAuthor     = "Refugee Response"
	defaultChannelThumbnail  = "chefdata/refresponse_logo.png"
	defaultChannelLicense    = "CC BY-NC-ND"
	defaultTopicSourcePrefix = "refugeeresponse-child-topic"
	defaultVideoSourcePrefix = "refugee-response"
	defaultChannelDesc       = "Short video lessons on managing education, mental health, public health, COVID-19 questions, and more topics for building general knowledge and succeeding in a new environment."
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	cacheDir := defaultCacheDir()
	return Config{
		Paths: Paths{
			CacheDir:         cacheDir,
			LogDir:           defaultLogDir,
			DescriptionsPath: filepath.Join(filepath.Dir(cacheDir), defaultDescriptionsFile),
			OutputPath:       defaultOutputPath,
		},
		Cache: Cache{
			Backend:     defaultCacheBackend,
			RedisPrefix: defaultRedisPrefix,
		},
		YouTube: YouTube{
			YtdlpPath:      defaultYtdlpPath,
			TimeoutSeconds: defaultYtdlpTimeout,
		},
		Sheets: Sheets{
			Range:            defaultSheetRange,
			DescriptionsFrom: defaultDescriptionsFrom,
		},
		Channel: Channel{
			Name:              defaultChannelName,
			Domain:            defaultChannelDomain,
			SourceID:          defaultChannelSourceID,
			Language:          defaultChannelLanguage,
			Description:       defaultChannelDesc,
			Thumbnail:         defaultChannelThumbnail,
			Author:            defaultChannelAuthor,
			License:           defaultChannelLicense,
			CopyrightHolder:   defaultChannelAuthor,
			TopicSourcePrefix: defaultTopicSourcePrefix,
			VideoSourcePrefix: defaultVideoSourcePrefix,
		},
		Playlists: defaultPlaylists(),
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

func defaultPlaylists() []Playlist {
	return []Playlist{
		{Language: "en", IDs: []string{"PLOZioxrIwCv0zNRqCsTN979Ez3jBRQiNN"}},
		{Language: "ru", IDs: []string{"PLOZioxrIwCv3SW4keysO7tO2bMnHlkE8h"}},
		{Language: "ar", IDs: []string{"PLOZioxrIwCv3WqpQzBrn2_qHhyVsWjErq"}},
		{Language: "es", IDs: []string{"PLOZioxrIwCv07eahemHM6wGvCePv6B6X8"}},
		{Language: "som", IDs: []string{"PLOZioxrIwCv2lOyXZPuW213wF1nXQmKUM"}},
		{Language: "ne", IDs: []string{"PLOZioxrIwCv0q8q6KQBlX0hBIl1ZfE268"}},
		{Language: "rw", IDs: []string{"PLOZioxrIwCv329B1jr2GG7CPhpMTSYVQG"}},
		{Language: "my", IDs: []string{"PLOZioxrIwCv3a7_cWltapDop8tm2_eyXa"}},
		{Language: "ps", IDs: []string{"PLOZioxrIwCv2ZJQvlXLg-uMPTQpvx5kDE"}},
		{Language: "sw", IDs: []string{"PLOZioxrIwCv10xetpSpX296rsIEs2mb67"}},
		{Language: "uk", IDs: []string{"PLOZioxrIwCv3XpPncjdUrwuoB2jlgZ2no"}},
		{Language: "Kachin", IDs: []string{"PLOZioxrIwCv2qOS16EQeuy8vcp7ri5p07"}},
		{Language: "Rohingya", IDs: []string{"PLOZioxrIwCv33zt5aFFjWqDoEMm55MVA9"}},
		{Language: "Karenni", IDs: []string{"PLOZioxrIwCv03K3kD4hP8ltoX3QOsFLNP"}},
		{Language: "Karen", IDs: []string{"PLOZioxrIwCv3-N46sJG8QZnHT4G4s4KDk"}},
	}
}

func defaultCacheDir() string {
	if base, ok := os.LookupEnv("XDG_CACHE_HOME"); ok && strings.TrimSpace(base) != "" {
		return filepath.Join(base, "ytchef", "youtubecache")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "~/.cache/ytchef/youtubecache"
	}
	return filepath.Join(home, ".cache", "ytchef", "youtubecache")
}
