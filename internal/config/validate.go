package config

import (
	"errors"
	"fmt"
	"slices"

	"fuzzyratio/internal/fuzz"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateScoring(); err != nil {
		return err
	}
	if err := c.validateWeighting(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateScoring() error {
	if _, err := fuzz.ParseAlgorithm(c.Scoring.DefaultAlgorithm); err != nil {
		return fmt.Errorf("scoring.default_algorithm: %w", err)
	}
	if _, err := fuzz.ParsePartialStrategy(c.Scoring.PartialStrategy); err != nil {
		return fmt.Errorf("scoring.partial_strategy: %w", err)
	}
	return nil
}

func (c *Config) validateWeighting() error {
	if err := ensureUnitInterval(map[string]float64{
		"weighting.comparable_length_ratio": c.Weighting.ComparableLengthRatio,
		"weighting.unbase_scale":            c.Weighting.UnbaseScale,
		"weighting.partial_scale":           c.Weighting.PartialScale,
		"weighting.far_length_ratio":        c.Weighting.FarLengthRatio,
		"weighting.far_partial_scale":       c.Weighting.FarPartialScale,
	}); err != nil {
		return err
	}
	if c.Weighting.FarLengthRatio > c.Weighting.ComparableLengthRatio {
		return errors.New("weighting.far_length_ratio must not exceed weighting.comparable_length_ratio")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (use console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q (use debug, info, warn, or error)", c.Logging.Level)
	}
	return nil
}

func ensureUnitInterval(values map[string]float64) error {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	for _, key := range keys {
		if value := values[key]; !(value > 0 && value <= 1) {
			return fmt.Errorf("%s must be in (0,1], got %v", key, value)
		}
	}
	return nil
}
