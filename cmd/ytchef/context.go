package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"ytchef/internal/cachestore"
	"ytchef/internal/config"
	"ytchef/internal/descriptions"
	"ytchef/internal/logging"
	"ytchef/internal/playlist"
	"ytchef/internal/sheets"
	"ytchef/internal/youtube"
)

// errCacheLocked is returned when another ytchef run holds the cache lock.
var errCacheLocked = errors.New("cache is locked by another ytchef run")

type commandContext struct {
	configFlag  *string
	jsonFlag    *bool
	noCacheFlag *bool

	configOnce sync.Once
	config     *config.Config
	configPath string
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
	runID      string

	// Overridable in tests.
	newFetcher   func(cfg *config.Config, logger *slog.Logger) youtube.Fetcher
	newValuesAPI func(ctx context.Context, cfg *config.Config) (sheets.ValuesAPI, error)
}

// contextOption replaces collaborators of a commandContext.
type contextOption func(*commandContext)

func withFetcher(f youtube.Fetcher) contextOption {
	return func(c *commandContext) {
		c.newFetcher = func(*config.Config, *slog.Logger) youtube.Fetcher { return f }
	}
}

func withValuesAPI(api sheets.ValuesAPI) contextOption {
	return func(c *commandContext) {
		c.newValuesAPI = func(context.Context, *config.Config) (sheets.ValuesAPI, error) { return api, nil }
	}
}

func newCommandContext(configFlag *string, jsonFlag, noCacheFlag *bool) *commandContext {
	return &commandContext{
		configFlag:  configFlag,
		jsonFlag:    jsonFlag,
		noCacheFlag: noCacheFlag,
		runID:       logging.NewRunID(),
		newFetcher: func(cfg *config.Config, logger *slog.Logger) youtube.Fetcher {
			return youtube.NewYtdlpFetcher(cfg.YouTube, logger)
		},
		newValuesAPI: func(ctx context.Context, cfg *config.Config) (sheets.ValuesAPI, error) {
			return sheets.NewService(ctx, cfg.Sheets.CredentialsPath)
		},
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolved, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = resolved
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger, c.loggerErr = logging.NewFromConfig(cfg, c.runID)
	})
	return c.logger, c.loggerErr
}

// JSONMode reports whether --json was given.
func (c *commandContext) JSONMode() bool {
	return c.jsonFlag != nil && *c.jsonFlag
}

// bypassCache reports whether --nocache was given.
func (c *commandContext) bypassCache() bool {
	return c.noCacheFlag != nil && *c.noCacheFlag
}

// session bundles what a command needs to read and write the cache.
type session struct {
	cfg     *config.Config
	logger  *slog.Logger
	store   cachestore.Store
	cache   *cachestore.Cache
	manager *playlist.Manager
}

// withSession opens the configured cache for fn. With lock set the cache
// directory lock is held until fn returns.
func (c *commandContext) withSession(cmd *cobra.Command, component string, lock bool, fn func(*session) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	base, err := c.ensureLogger()
	if err != nil {
		return err
	}
	logger := logging.NewComponentLogger(base, component)

	if lock {
		fl := flock.New(cfg.LockPath())
		ok, err := fl.TryLock()
		if err != nil {
			return fmt.Errorf("acquire cache lock: %w", err)
		}
		if !ok {
			return fmt.Errorf("%w (%s)", errCacheLocked, cfg.LockPath())
		}
		defer func() {
			if err := fl.Unlock(); err != nil {
				logger.Warn("failed to release cache lock", logging.Error(err))
			}
		}()
	}

	store, err := cachestore.Open(cmd.Context(), cfg, base)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("failed to close cache", logging.Error(err))
		}
	}()

	cache := cachestore.New(store, base)
	s := &session{
		cfg:     cfg,
		logger:  logger,
		store:   store,
		cache:   cache,
		manager: playlist.NewManager(cache, c.newFetcher(cfg, base), base),
	}
	return fn(s)
}

// sheetWriter connects to the configured spreadsheet. An explicit id
// overrides the configured one.
func (c *commandContext) sheetWriter(ctx context.Context, cfg *config.Config, spreadsheetID string, logger *slog.Logger) (*sheets.Writer, error) {
	id := strings.TrimSpace(spreadsheetID)
	if id == "" {
		id = cfg.Sheets.SpreadsheetID
	}
	if id == "" {
		return nil, errors.New("no spreadsheet id: pass --sheet-id, set sheets.spreadsheet_id or export YTCHEF_SHEET_ID")
	}
	api, err := c.newValuesAPI(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return sheets.NewWriter(api, id, cfg.Sheets.Range, logger), nil
}

// loadDescriptions builds the description table from the configured source.
func (c *commandContext) loadDescriptions(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*descriptions.Table, error) {
	if cfg.Sheets.DescriptionsFrom == "sheet" {
		w, err := c.sheetWriter(ctx, cfg, "", logger)
		if err != nil {
			return nil, err
		}
		return w.ReadTable(ctx)
	}
	return descriptions.LoadFile(cfg.Paths.DescriptionsPath, logger)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
