package config

import (
	"os"
	"strings"

	"fuzzyratio/internal/fuzz"
)

func (c *Config) normalize() {
	c.normalizeScoring()
	c.normalizeLogging()
}

func (c *Config) normalizeScoring() {
	c.Scoring.DefaultAlgorithm = strings.TrimSpace(c.Scoring.DefaultAlgorithm)
	if c.Scoring.DefaultAlgorithm == "" {
		c.Scoring.DefaultAlgorithm = defaultAlgorithm
	}
	if alg, err := fuzz.ParseAlgorithm(c.Scoring.DefaultAlgorithm); err == nil {
		c.Scoring.DefaultAlgorithm = alg.String()
	}
	c.Scoring.PartialStrategy = strings.ToLower(strings.TrimSpace(c.Scoring.PartialStrategy))
	if c.Scoring.PartialStrategy == "" {
		c.Scoring.PartialStrategy = defaultPartialStrategy
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		if value, ok := os.LookupEnv(logLevelEnv); ok {
			c.Logging.Level = strings.ToLower(strings.TrimSpace(value))
		}
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}

	paths := make([]string, 0, len(c.Logging.OutputPaths))
	for _, path := range c.Logging.OutputPaths {
		path = strings.TrimSpace(path)
		switch path {
		case "":
			continue
		case "stdout", "stderr":
		default:
			if expanded, err := expandPath(path); err == nil {
				path = expanded
			}
		}
		paths = append(paths, path)
	}
	c.Logging.OutputPaths = paths
}
