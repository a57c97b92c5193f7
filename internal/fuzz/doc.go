// Package fuzz scores the similarity of two strings on a 0-100 scale using
// edit-distance heuristics.
//
// Seven algorithms are available as a closed enum: the simple ratio, the
// partial (best substring window) ratio, token-sort and token-set variants of
// both, and a weighted ratio that picks the most trustworthy heuristic for
// the length profile of the pair. Inputs are prepared first (lowercased and
// trimmed unless Flags say otherwise) and empty inputs fail with
// ErrInvalidInput before any scoring runs.
//
// The package-level functions use a Scorer with DefaultTuning. Build a Scorer
// with New to change the weighting constants, the partial alignment strategy,
// or to receive debug decision logs. A Scorer holds no mutable state and is
// safe for concurrent use.
package fuzz
