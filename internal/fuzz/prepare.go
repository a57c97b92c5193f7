package fuzz

import (
	"fmt"

	"fuzzyratio/internal/textutil"
)

// prepare validates and normalizes one raw input. The result is never empty.
func prepare(raw string, flags Flags) (string, error) {
	if raw == "" {
		return "", fmt.Errorf("%w: empty string", ErrInvalidInput)
	}
	prepared := textutil.Normalize(raw, flags.normalizeOptions())
	if prepared == "" {
		return "", fmt.Errorf("%w: string is blank after trimming", ErrInvalidInput)
	}
	return prepared, nil
}

func preparePair(s1, s2 string, flags Flags) (string, string, error) {
	a, err := prepare(s1, flags)
	if err != nil {
		return "", "", fmt.Errorf("s1: %w", err)
	}
	b, err := prepare(s2, flags)
	if err != nil {
		return "", "", fmt.Errorf("s2: %w", err)
	}
	return a, b, nil
}
