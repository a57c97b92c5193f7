package textutil

import (
	"slices"
	"strings"
)

// Tokenize splits value on runs of whitespace. Leading and trailing
// whitespace never produce empty tokens.
func Tokenize(value string) []string {
	return strings.Fields(value)
}

// SortAndJoin orders tokens ordinally and joins them with single spaces.
// The input slice is not modified.
func SortAndJoin(tokens []string) string {
	sorted := slices.Clone(tokens)
	slices.Sort(sorted)
	return strings.TrimSpace(strings.Join(sorted, " "))
}

// TokenSet returns the distinct tokens of value in ascending ordinal order.
func TokenSet(value string) []string {
	tokens := Tokenize(value)
	slices.Sort(tokens)
	return slices.Compact(tokens)
}

// Intersect returns the tokens present in both sorted sets.
func Intersect(a, b []string) []string {
	out := make([]string, 0, min(len(a), len(b)))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch strings.Compare(a[i], b[j]) {
		case 0:
			out = append(out, a[i])
			i++
			j++
		case -1:
			i++
		default:
			j++
		}
	}
	return out
}

// Difference returns the tokens of sorted set a that are absent from sorted set b.
func Difference(a, b []string) []string {
	out := make([]string, 0, len(a))
	i, j := 0, 0
	for i < len(a) {
		if j >= len(b) {
			out = append(out, a[i:]...)
			break
		}
		switch strings.Compare(a[i], b[j]) {
		case 0:
			i++
			j++
		case -1:
			out = append(out, a[i])
			i++
		default:
			j++
		}
	}
	return out
}

// JoinTokens joins an already ordered token list with single spaces.
func JoinTokens(tokens []string) string {
	return strings.Join(tokens, " ")
}

// JoinNonEmpty joins the non-empty parts with single spaces.
func JoinNonEmpty(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, " ")
}
