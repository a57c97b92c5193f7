package fuzz

import "fuzzyratio/internal/textutil"

// tokenSortRatio removes word-order differences before scoring.
func (s *Scorer) tokenSortRatio(s1, s2 string, in inner) int {
	a := textutil.SortAndJoin(textutil.Tokenize(s1))
	b := textutil.SortAndJoin(textutil.Tokenize(s2))
	if a == "" || b == "" {
		return emptyTokensScore(a, b)
	}
	return s.apply(in, a, b)
}

// tokenSetRatio compares the shared tokens against each side's shared plus
// remaining tokens and keeps the best of the three pairings. With no shared
// tokens only the two remainders are compared, since an empty operand would
// give the partial ratio a perfect score.
func (s *Scorer) tokenSetRatio(s1, s2 string, in inner) int {
	t1 := textutil.TokenSet(s1)
	t2 := textutil.TokenSet(s2)
	if len(t1) == 0 || len(t2) == 0 {
		return emptyTokensScore(textutil.JoinTokens(t1), textutil.JoinTokens(t2))
	}

	intersection := textutil.JoinTokens(textutil.Intersect(t1, t2))
	combined1 := textutil.JoinNonEmpty(intersection, textutil.JoinTokens(textutil.Difference(t1, t2)))
	combined2 := textutil.JoinNonEmpty(intersection, textutil.JoinTokens(textutil.Difference(t2, t1)))

	if intersection == "" {
		return s.apply(in, combined1, combined2)
	}
	return max(
		s.apply(in, intersection, combined1),
		s.apply(in, intersection, combined2),
		s.apply(in, combined1, combined2),
	)
}

// emptyTokensScore handles inputs that kept only whitespace. A side with no
// tokens matches nothing but another side with no tokens.
func emptyTokensScore(a, b string) int {
	if a == b {
		return 100
	}
	return 0
}
