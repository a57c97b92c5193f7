package fuzz

import (
	"unicode/utf8"

	"github.com/pmezard/go-difflib/difflib"

	"fuzzyratio/internal/editdistance"
)

// partialRatio scores the shorter string against the best-aligned window of
// the longer one. With equal lengths s1 is treated as the longer string.
func (s *Scorer) partialRatio(s1, s2 string) int {
	long, short := s1, s2
	if utf8.RuneCountInString(s1) < utf8.RuneCountInString(s2) {
		long, short = s2, s1
	}
	if short == "" {
		return 100
	}
	if s.tuning.PartialStrategy == PartialBlocks {
		return partialBlocks(short, long)
	}
	return partialWindow(short, long)
}

func partialWindow(short, long string) int {
	width := utf8.RuneCountInString(short)
	offsets := runeOffsets(long)
	best := 0
	for start := 0; start+width < len(offsets); start++ {
		score := editdistance.Ratio(short, long[offsets[start]:offsets[start+width]])
		if score > best {
			best = score
			if best == 100 {
				break
			}
		}
	}
	return best
}

func partialBlocks(short, long string) int {
	shortRunes := splitRunes(short)
	longRunes := splitRunes(long)
	offsets := runeOffsets(long)
	width := len(shortRunes)

	matcher := difflib.NewMatcherWithJunk(shortRunes, longRunes, false, nil)
	best := 0
	for _, block := range matcher.GetMatchingBlocks() {
		start := max(block.B-block.A, 0)
		end := min(start+width, len(longRunes))
		score := editdistance.Ratio(short, long[offsets[start]:offsets[end]])
		if score > best {
			best = score
			if best == 100 {
				break
			}
		}
	}
	return best
}

// runeOffsets returns the byte offset of every rune in s followed by len(s),
// so s[offsets[i]:offsets[j]] is the rune range [i, j).
func runeOffsets(s string) []int {
	offsets := make([]int, 0, len(s)+1)
	for i := range s {
		offsets = append(offsets, i)
	}
	return append(offsets, len(s))
}

func splitRunes(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
