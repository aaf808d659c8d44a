package preflight

import (
	"context"
	"path/filepath"

	"ytchef/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail"`
}

// RunAll executes the checks that apply to cfg.
func RunAll(ctx context.Context, cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	var results []Result

	results = append(results, CheckDirectoryAccess("Cache directory", cfg.Paths.CacheDir))

	switch cfg.Cache.Backend {
	case "sqlite":
		results = append(results, CheckDirectoryAccess("SQLite directory", filepath.Dir(cfg.Cache.SQLitePath)))
	case "redis":
		results = append(results, CheckRedis(ctx, cfg.Cache))
	}

	results = append(results, CheckYtdlp(ctx, cfg.YouTube.YtdlpPath))

	if cfg.Sheets.DescriptionsFrom == "file" {
		results = append(results, CheckReadableFile("Descriptions file", cfg.Paths.DescriptionsPath))
	}

	if cfg.Sheets.SpreadsheetID != "" {
		results = append(results, CheckCredentials(cfg.Sheets.CredentialsPath))
	}

	return results
}

// Failed returns the checks that did not pass.
func Failed(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if !r.Passed {
			failed = append(failed, r)
		}
	}
	return failed
}
