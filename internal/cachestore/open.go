package cachestore

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"ytchef/internal/config"
	"ytchef/internal/logging"
)

// Open builds the Store selected by cfg.Cache.Backend.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (Store, error) {
	logger = logging.NewComponentLogger(logger, "cache")

	switch cfg.Cache.Backend {
	case "", "file":
		logger.Debug("using file cache", logging.String("dir", cfg.Paths.CacheDir))
		return NewFileStore(cfg.Paths.CacheDir), nil
	case "sqlite":
		logger.Debug("using sqlite cache", logging.String("path", cfg.Cache.SQLitePath))
		return OpenSQLite(cfg.Cache.SQLitePath)
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.RedisAddr,
			Password: cfg.Cache.RedisPassword,
			DB:       cfg.Cache.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("connect to redis %s: %w", cfg.Cache.RedisAddr, err)
		}
		logger.Debug("using redis cache",
			logging.String("addr", cfg.Cache.RedisAddr),
			logging.String("prefix", cfg.Cache.RedisPrefix))
		return NewRedisStore(client, cfg.Cache.RedisPrefix), nil
	default:
		return nil, fmt.Errorf("unsupported cache backend %q", cfg.Cache.Backend)
	}
}
