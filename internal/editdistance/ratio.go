package editdistance

import (
	"math"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// Distance returns the Levenshtein distance between a and b.
func Distance(a, b string) int {
	return levenshtein.ComputeDistance(a, b)
}

// Ratio returns round(100 * (len(a)+len(b)-d) / (len(a)+len(b))) where d is
// the edit distance. Two empty strings score 100.
func Ratio(a, b string) int {
	total := utf8.RuneCountInString(a) + utf8.RuneCountInString(b)
	if total == 0 {
		return 100
	}
	if a == b {
		return 100
	}
	return FromDistance(total, Distance(a, b))
}

// FromDistance converts a distance over strings whose combined length is
// total into a ratio clamped to [0,100].
func FromDistance(total, distance int) int {
	if total <= 0 {
		return 100
	}
	score := int(math.Round(100 * float64(total-distance) / float64(total)))
	return max(0, min(100, score))
}
