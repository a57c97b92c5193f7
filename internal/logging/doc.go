// Package logging assembles structured slog loggers and formatting helpers
// used across fuzzyratio.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and provides attribute helpers so scorer decisions and CLI
// events carry the same field names. The package also provides a no-op
// logger for tests and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so new components
// emit data with the same shape as the rest of the tool.
package logging
