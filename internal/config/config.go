package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"fuzzyratio/internal/fuzz"
)

//go:embed sample_config.toml
var sampleConfig string

// Scoring contains input preparation defaults and algorithm selection.
type Scoring struct {
	CaseSensitive      bool   `toml:"case_sensitive"`
	PreserveWhitespace bool   `toml:"preserve_whitespace"`
	ComposeUnicode     bool   `toml:"compose_unicode"`
	DefaultAlgorithm   string `toml:"default_algorithm"`
	PartialStrategy    string `toml:"partial_strategy"`
}

// Weighting contains the weighted-ratio heuristic constants. Length ratios
// are shorter/longer input lengths.
type Weighting struct {
	// ComparableLengthRatio is the length ratio above which partial
	// alignment is skipped. Default: 0.7
	ComparableLengthRatio float64 `toml:"comparable_length_ratio"`
	// UnbaseScale discounts token-based candidates. Default: 0.95
	UnbaseScale float64 `toml:"unbase_scale"`
	// PartialScale discounts partial candidates. Default: 0.90
	PartialScale float64 `toml:"partial_scale"`
	// FarLengthRatio is the length ratio below which FarPartialScale applies.
	// Default: 0.125
	FarLengthRatio  float64 `toml:"far_length_ratio"`
	FarPartialScale float64 `toml:"far_partial_scale"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
	// OutputPaths lists log files, "stdout", or "stderr". Empty keeps logs on
	// the command's stderr.
	OutputPaths []string `toml:"output_paths"`
}

// Config encapsulates all configuration values for fuzzyratio.
type Config struct {
	Scoring   Scoring   `toml:"scoring"`
	Weighting Weighting `toml:"weighting"`
	Logging   Logging   `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/fuzzyratio/config.toml")
}

// Load locates, parses, and validates a configuration file.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		info, err := os.Stat(expanded)
		if err != nil {
			if os.IsNotExist(err) {
				return "", false, fmt.Errorf("config file %s does not exist", expanded)
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		if info.IsDir() {
			return "", false, fmt.Errorf("config path %s is a directory", expanded)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("fuzzyratio.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// Flags returns the default preparation flags.
func (c *Config) Flags() fuzz.Flags {
	var flags fuzz.Flags
	if c.Scoring.CaseSensitive {
		flags |= fuzz.CaseSensitive
	}
	if c.Scoring.PreserveWhitespace {
		flags |= fuzz.PreserveWhitespace
	}
	if c.Scoring.ComposeUnicode {
		flags |= fuzz.ComposeUnicode
	}
	return flags
}

// Algorithm returns the configured default algorithm. Load has already
// rejected unknown names, so an unvalidated config falls back to weighted.
func (c *Config) Algorithm() fuzz.Algorithm {
	alg, err := fuzz.ParseAlgorithm(c.Scoring.DefaultAlgorithm)
	if err != nil {
		return fuzz.Weighted
	}
	return alg
}

// Tuning returns the scorer constants described by the configuration.
func (c *Config) Tuning() fuzz.Tuning {
	strategy, err := fuzz.ParsePartialStrategy(c.Scoring.PartialStrategy)
	if err != nil {
		strategy = fuzz.PartialWindow
	}
	return fuzz.Tuning{
		PartialStrategy:       strategy,
		ComparableLengthRatio: c.Weighting.ComparableLengthRatio,
		UnbaseScale:           c.Weighting.UnbaseScale,
		PartialScale:          c.Weighting.PartialScale,
		FarLengthRatio:        c.Weighting.FarLengthRatio,
		FarPartialScale:       c.Weighting.FarPartialScale,
	}
}

// Encode renders the configuration as TOML.
func (c *Config) Encode() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return data, nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
