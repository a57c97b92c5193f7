// Package config loads, normalizes, and validates fuzzyratio configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the FUZZYRATIO_LOG_LEVEL
// environment fallback. The Config type carries the default preparation
// flags, the default algorithm, the partial alignment strategy, and the
// weighted-ratio constants so the CLI can build a scorer in one pass.
//
// Always obtain settings through this package so downstream code receives
// canonical algorithm names, validated tuning constants, and clear
// validation errors that name the offending TOML key.
package config
