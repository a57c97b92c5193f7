package config

import "fuzzyratio/internal/fuzz"

const (
	defaultAlgorithm       = "weighted"
	defaultPartialStrategy = "window"
	defaultLogFormat       = "console"
	defaultLogLevel        = "warn"
	logLevelEnv            = "FUZZYRATIO_LOG_LEVEL"
)

// Default returns a Config populated with repository defaults. Logging.Level
// is left empty so the environment fallback can apply during Load.
func Default() Config {
	tuning := fuzz.DefaultTuning()
	return Config{
		Scoring: Scoring{
			DefaultAlgorithm: defaultAlgorithm,
			PartialStrategy:  defaultPartialStrategy,
		},
		Weighting: Weighting{
			ComparableLengthRatio: tuning.ComparableLengthRatio,
			UnbaseScale:           tuning.UnbaseScale,
			PartialScale:          tuning.PartialScale,
			FarLengthRatio:        tuning.FarLengthRatio,
			FarPartialScale:       tuning.FarPartialScale,
		},
		Logging: Logging{
			Format: defaultLogFormat,
		},
	}
}
