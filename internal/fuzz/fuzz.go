package fuzz

var defaultScorer = &Scorer{tuning: DefaultTuning(), logger: discardLogger}

// Ratio returns the simple edit-distance ratio.
func Ratio(s1, s2 string, flags Flags) (int, error) {
	return defaultScorer.Score(Simple, s1, s2, flags)
}

// PartialRatio returns the best ratio of the shorter input against any
// equal-length substring of the longer input.
func PartialRatio(s1, s2 string, flags Flags) (int, error) {
	return defaultScorer.Score(Partial, s1, s2, flags)
}

// TokenSortRatio sorts the tokens of each input before taking the simple ratio.
func TokenSortRatio(s1, s2 string, flags Flags) (int, error) {
	return defaultScorer.Score(TokenSort, s1, s2, flags)
}

// TokenSortPartialRatio sorts the tokens of each input before taking the partial ratio.
func TokenSortPartialRatio(s1, s2 string, flags Flags) (int, error) {
	return defaultScorer.Score(TokenSortPartial, s1, s2, flags)
}

// TokenSetRatio compares intersection and remainder token strings with the
// simple ratio. Useful when words repeat or appear in only one input.
func TokenSetRatio(s1, s2 string, flags Flags) (int, error) {
	return defaultScorer.Score(TokenSet, s1, s2, flags)
}

// TokenSetPartialRatio is TokenSetRatio using the partial ratio.
func TokenSetPartialRatio(s1, s2 string, flags Flags) (int, error) {
	return defaultScorer.Score(TokenSetPartial, s1, s2, flags)
}

// WeightedRatio combines the other heuristics for best overall results.
func WeightedRatio(s1, s2 string, flags Flags) (int, error) {
	return defaultScorer.Score(Weighted, s1, s2, flags)
}

// Score evaluates alg with the default tuning.
func Score(alg Algorithm, s1, s2 string, flags Flags) (int, error) {
	return defaultScorer.Score(alg, s1, s2, flags)
}
