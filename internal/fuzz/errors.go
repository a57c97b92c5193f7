package fuzz

import "errors"

var (
	// ErrInvalidInput reports an input that is empty or blank after trimming.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnknownAlgorithm reports an algorithm name or value outside the enum.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
	// ErrInvalidTuning reports weighting constants or a partial strategy that
	// fail validation.
	ErrInvalidTuning = errors.New("invalid tuning")
)
