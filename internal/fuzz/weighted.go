package fuzz

import (
	"context"
	"log/slog"
	"math"
	"strconv"
	"unicode/utf8"

	"fuzzyratio/internal/logging"
)

// weightedRatio returns the best discounted candidate. Pairs of comparable
// length are judged by whole-string measures; otherwise partial alignment
// measures join in at a lower confidence.
func (s *Scorer) weightedRatio(a, b string) int {
	len1, len2 := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
	simple := simpleRatio(a, b)
	longer := max(len1, len2)
	if longer == 0 {
		return simple
	}
	lengthRatio := float64(min(len1, len2)) / float64(longer)

	t := s.tuning
	best := float64(simple)
	reason := "comparable_length"
	if lengthRatio > t.ComparableLengthRatio {
		best = max(best,
			float64(s.tokenSortRatio(a, b, innerSimple))*t.UnbaseScale,
			float64(s.tokenSetRatio(a, b, innerSimple))*t.UnbaseScale,
		)
	} else {
		partialScale := t.PartialScale
		reason = "length_mismatch"
		if lengthRatio < t.FarLengthRatio {
			partialScale = t.FarPartialScale
			reason = "far_length_mismatch"
		}
		best = max(best,
			float64(s.partialRatio(a, b))*partialScale,
			float64(s.tokenSortRatio(a, b, innerPartial))*t.UnbaseScale*partialScale,
			float64(s.tokenSetRatio(a, b, innerPartial))*t.UnbaseScale*partialScale,
		)
	}

	score := max(0, min(100, int(math.Round(best))))
	if s.logger.Enabled(context.Background(), slog.LevelDebug) {
		attrs := append(logging.DecisionAttrs("weighted_ratio", strconv.Itoa(score), reason),
			logging.Float64(logging.FieldLengthRatio, lengthRatio),
			logging.Int("simple", simple),
		)
		s.logger.Debug("weighted ratio decision", logging.Args(attrs...)...)
	}
	return score
}
