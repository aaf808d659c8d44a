// Package logging assembles structured slog loggers and formatting helpers used
// across ytchef.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and stamps every record of a CLI invocation with a run id so the
// log lines of one ingestion pass can be grepped together. The package also
// provides a no-op logger for tests and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so new components
// emit data with the same shape as the rest of the tool.
package logging
