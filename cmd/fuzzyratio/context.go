package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"fuzzyratio/internal/config"
	"fuzzyratio/internal/fuzz"
	"fuzzyratio/internal/logging"
)

type commandContext struct {
	flags *globalFlags

	configOnce   sync.Once
	config       *config.Config
	configPath   string
	configExists bool
	configErr    error
}

func newCommandContext(flags *globalFlags) *commandContext {
	return &commandContext{flags: flags}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, path, exists, err := config.Load(strings.TrimSpace(c.flags.config))
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = path
		c.configExists = exists
	})
	return c.config, c.configErr
}

// scoringFlags merges the configured preparation flags with any flag the
// user set explicitly on the command line.
func (c *commandContext) scoringFlags(cmd *cobra.Command) (fuzz.Flags, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return 0, err
	}
	flags := cfg.Flags()
	overrides := []struct {
		name  string
		flag  fuzz.Flags
		value bool
	}{
		{"case-sensitive", fuzz.CaseSensitive, c.flags.caseSensitive},
		{"preserve-whitespace", fuzz.PreserveWhitespace, c.flags.preserveWhitespace},
		{"nfc", fuzz.ComposeUnicode, c.flags.composeUnicode},
	}
	for _, o := range overrides {
		if !cmd.Flags().Changed(o.name) {
			continue
		}
		if o.value {
			flags |= o.flag
		} else {
			flags &^= o.flag
		}
	}
	return flags, nil
}

func (c *commandContext) logger(w io.Writer) (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(logging.Options{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		OutputPaths: cfg.Logging.OutputPaths,
		Output:      w,
	})
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	if c.configExists {
		logger.Debug("configuration loaded", logging.String(logging.FieldConfigPath, c.configPath))
	}
	return logger, nil
}

func (c *commandContext) scorer(cmd *cobra.Command) (*fuzz.Scorer, *slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, err
	}
	logger, err := c.logger(cmd.ErrOrStderr())
	if err != nil {
		return nil, nil, err
	}
	tuning := cfg.Tuning()
	if cmd.Flags().Changed("partial-strategy") {
		strategy, err := fuzz.ParsePartialStrategy(c.flags.partialStrategy)
		if err != nil {
			return nil, nil, err
		}
		tuning.PartialStrategy = strategy
	}
	scorer, err := fuzz.New(tuning, logging.NewComponentLogger(logger, "scorer"))
	if err != nil {
		return nil, nil, err
	}
	return scorer, logging.NewComponentLogger(logger, "cli"), nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
