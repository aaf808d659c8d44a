// Package config loads, normalizes, and validates ytchef configuration data.
//
// It supplies repository defaults (the Refugee Response channel and its
// per-language playlists), expands user paths including tilde shortcuts, reads
// TOML files, and honours environment fallbacks such as YTCHEF_SHEET_ID and
// GOOGLE_APPLICATION_CREDENTIALS. The Config type centralizes every knob the
// CLI needs so cache, fetcher, spreadsheet, and channel settings are
// discovered in one pass.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
