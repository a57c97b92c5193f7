package fuzz

import (
	"fmt"
	"log/slog"

	"fuzzyratio/internal/logging"
)

var discardLogger = logging.NewNop()

// Scorer evaluates algorithms under one Tuning.
type Scorer struct {
	tuning Tuning
	logger *slog.Logger
}

// Result pairs an algorithm with the score it produced.
type Result struct {
	Algorithm Algorithm `json:"algorithm"`
	Score     int       `json:"score"`
}

// New validates tuning and returns a Scorer. A nil logger discards output.
func New(tuning Tuning, logger *slog.Logger) (*Scorer, error) {
	if err := tuning.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = discardLogger
	}
	return &Scorer{tuning: tuning, logger: logger}, nil
}

// Tuning returns the constants the scorer was built with.
func (s *Scorer) Tuning() Tuning {
	return s.tuning
}

// Score prepares both inputs and evaluates alg.
func (s *Scorer) Score(alg Algorithm, s1, s2 string, flags Flags) (int, error) {
	if !alg.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(alg))
	}
	a, b, err := preparePair(s1, s2, flags)
	if err != nil {
		return 0, err
	}
	return s.score(alg, a, b), nil
}

// ScoreAll prepares both inputs once and evaluates every algorithm.
func (s *Scorer) ScoreAll(s1, s2 string, flags Flags) ([]Result, error) {
	a, b, err := preparePair(s1, s2, flags)
	if err != nil {
		return nil, err
	}
	algs := Algorithms()
	results := make([]Result, 0, len(algs))
	for _, alg := range algs {
		results = append(results, Result{Algorithm: alg, Score: s.score(alg, a, b)})
	}
	return results, nil
}

func (s *Scorer) score(alg Algorithm, a, b string) int {
	switch alg {
	case Simple:
		return simpleRatio(a, b)
	case Partial:
		return s.partialRatio(a, b)
	case TokenSort:
		return s.tokenSortRatio(a, b, innerSimple)
	case TokenSortPartial:
		return s.tokenSortRatio(a, b, innerPartial)
	case TokenSet:
		return s.tokenSetRatio(a, b, innerSimple)
	case TokenSetPartial:
		return s.tokenSetRatio(a, b, innerPartial)
	case Weighted:
		return s.weightedRatio(a, b)
	default:
		return 0
	}
}

// inner selects the ratio the token transformations delegate to.
type inner int

const (
	innerSimple inner = iota
	innerPartial
)

func (s *Scorer) apply(in inner, a, b string) int {
	if in == innerPartial {
		return s.partialRatio(a, b)
	}
	return simpleRatio(a, b)
}
