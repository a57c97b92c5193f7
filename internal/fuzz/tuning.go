package fuzz

import (
	"fmt"
	"strings"
)

// PartialStrategy selects how the partial ratio aligns the shorter string.
type PartialStrategy int

const (
	// PartialWindow scores every window of the longer string.
	PartialWindow PartialStrategy = iota
	// PartialBlocks scores only windows aligned on matching blocks.
	PartialBlocks
)

func (p PartialStrategy) String() string {
	switch p {
	case PartialWindow:
		return "window"
	case PartialBlocks:
		return "blocks"
	default:
		return fmt.Sprintf("partial_strategy(%d)", int(p))
	}
}

// ParsePartialStrategy resolves "window" or "blocks". Empty selects window.
func ParsePartialStrategy(name string) (PartialStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "window":
		return PartialWindow, nil
	case "blocks":
		return PartialBlocks, nil
	default:
		return 0, fmt.Errorf("%w: unknown partial strategy %q", ErrInvalidTuning, name)
	}
}

const (
	defaultComparableLengthRatio = 0.7
	defaultUnbaseScale           = 0.95
	defaultPartialScale          = 0.90
	defaultFarLengthRatio        = 0.125
	defaultFarPartialScale       = 0.60
)

// Tuning holds the heuristic constants of the weighted ratio and the partial
// alignment strategy. Length ratios are shorter/longer rune counts.
type Tuning struct {
	PartialStrategy PartialStrategy
	// ComparableLengthRatio is the length ratio above which the weighted
	// ratio skips partial alignment.
	ComparableLengthRatio float64
	// UnbaseScale discounts token-based candidates.
	UnbaseScale float64
	// PartialScale discounts partial candidates.
	PartialScale float64
	// FarLengthRatio is the length ratio below which FarPartialScale
	// replaces PartialScale.
	FarLengthRatio  float64
	FarPartialScale float64
}

// DefaultTuning returns the conventional constants.
func DefaultTuning() Tuning {
	return Tuning{
		PartialStrategy:       PartialWindow,
		ComparableLengthRatio: defaultComparableLengthRatio,
		UnbaseScale:           defaultUnbaseScale,
		PartialScale:          defaultPartialScale,
		FarLengthRatio:        defaultFarLengthRatio,
		FarPartialScale:       defaultFarPartialScale,
	}
}

// Validate ensures every constant lies in (0,1] and the far-length cutoff
// sits below the comparable cutoff.
func (t Tuning) Validate() error {
	if t.PartialStrategy != PartialWindow && t.PartialStrategy != PartialBlocks {
		return fmt.Errorf("%w: unknown partial strategy %d", ErrInvalidTuning, int(t.PartialStrategy))
	}
	for _, field := range []struct {
		name  string
		value float64
	}{
		{"comparable_length_ratio", t.ComparableLengthRatio},
		{"unbase_scale", t.UnbaseScale},
		{"partial_scale", t.PartialScale},
		{"far_length_ratio", t.FarLengthRatio},
		{"far_partial_scale", t.FarPartialScale},
	} {
		if !(field.value > 0 && field.value <= 1) {
			return fmt.Errorf("%w: %s must be in (0,1], got %v", ErrInvalidTuning, field.name, field.value)
		}
	}
	if t.FarLengthRatio > t.ComparableLengthRatio {
		return fmt.Errorf("%w: far_length_ratio must not exceed comparable_length_ratio", ErrInvalidTuning)
	}
	return nil
}
