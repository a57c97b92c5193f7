package fuzz_test

import (
	"errors"
	"testing"

	"fuzzyratio/internal/fuzz"
)

func mustScore(t *testing.T, alg fuzz.Algorithm, s1, s2 string, flags fuzz.Flags) int {
	t.Helper()
	got, err := fuzz.Score(alg, s1, s2, flags)
	if err != nil {
		t.Fatalf("Score(%s, %q, %q) returned error: %v", alg, s1, s2, err)
	}
	return got
}

func TestReflexivity(t *testing.T) {
	inputs := []string{"a", "hello world", "New York Mets", "fuzzy wuzzy was a bear", "  padded  "}
	for _, alg := range fuzz.Algorithms() {
		for _, input := range inputs {
			if got := mustScore(t, alg, input, input, 0); got != 100 {
				t.Errorf("%s(%q, %q) = %d, want 100", alg, input, input, got)
			}
		}
	}
}

func TestSymmetry(t *testing.T) {
	pairs := [][2]string{
		{"kitten", "sitting"},
		{"new york mets", "new york mets vs atlanta braves"},
		{"fuzzy was a bear", "fuzzy fuzzy was a bear"},
		{"abc def", "xyz"},
	}
	for _, alg := range []fuzz.Algorithm{fuzz.Simple, fuzz.TokenSort, fuzz.TokenSet} {
		for _, p := range pairs {
			ab := mustScore(t, alg, p[0], p[1], 0)
			ba := mustScore(t, alg, p[1], p[0], 0)
			if ab != ba {
				t.Errorf("%s not symmetric for %q/%q: (%d, %d)", alg, p[0], p[1], ab, ba)
			}
		}
	}
}

func TestRange(t *testing.T) {
	pairs := [][2]string{
		{"a", "b"},
		{"a", "zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz"},
		{"the quick brown fox", "jumps over the lazy dog"},
		{"1234", "4321"},
		{"x y z", "z y x w v u"},
	}
	for _, alg := range fuzz.Algorithms() {
		for _, p := range pairs {
			got := mustScore(t, alg, p[0], p[1], 0)
			if got < 0 || got > 100 {
				t.Errorf("%s(%q, %q) = %d, out of range", alg, p[0], p[1], got)
			}
		}
	}
}

func TestRatioNormalizesCaseAndWhitespace(t *testing.T) {
	got, err := fuzz.Ratio("Hello World", "hello world", 0)
	if err != nil {
		t.Fatalf("Ratio returned error: %v", err)
	}
	if got != 100 {
		t.Fatalf("Ratio(default flags) = %d, want 100", got)
	}

	got, err = fuzz.Ratio("Hello World", "hello world", fuzz.CaseSensitive)
	if err != nil {
		t.Fatalf("Ratio returned error: %v", err)
	}
	if got >= 100 {
		t.Fatalf("Ratio(CaseSensitive) = %d, want < 100", got)
	}

	got, err = fuzz.Ratio("  hello  ", "hello", 0)
	if err != nil {
		t.Fatalf("Ratio returned error: %v", err)
	}
	if got != 100 {
		t.Fatalf("Ratio(trimmed) = %d, want 100", got)
	}

	got, err = fuzz.Ratio("  hello  ", "hello", fuzz.PreserveWhitespace)
	if err != nil {
		t.Fatalf("Ratio returned error: %v", err)
	}
	if got >= 100 {
		t.Fatalf("Ratio(PreserveWhitespace) = %d, want < 100", got)
	}
}

func TestRatioComposeUnicode(t *testing.T) {
	got, err := fuzz.Ratio("cafe\u0301", "caf\u00e9", 0)
	if err != nil {
		t.Fatalf("Ratio returned error: %v", err)
	}
	if got == 100 {
		t.Fatal("expected decomposed and precomposed spellings to differ without composition")
	}
	got, err = fuzz.Ratio("cafe\u0301", "caf\u00e9", fuzz.ComposeUnicode)
	if err != nil {
		t.Fatalf("Ratio returned error: %v", err)
	}
	if got != 100 {
		t.Fatalf("Ratio(ComposeUnicode) = %d, want 100", got)
	}
}

func TestKnownScores(t *testing.T) {
	tests := []struct {
		name string
		fn   func(string, string, fuzz.Flags) (int, error)
		s1   string
		s2   string
		want int
	}{
		{"kitten sitting", fuzz.Ratio, "kitten", "sitting", 77},
		{"token order", fuzz.TokenSortRatio, "order test", "test order", 100},
		{"token set redundancy", fuzz.TokenSetRatio, "mariners vs angels", "angels vs mariners", 100},
		{"token set repeated words", fuzz.TokenSetRatio, "fuzzy was a bear", "fuzzy fuzzy was a bear", 100},
		{"partial containment", fuzz.PartialRatio, "test", "this is a test!", 100},
		{"simple containment", fuzz.Ratio, "test", "this is a test!", 42},
		{"token sort partial", fuzz.TokenSortPartialRatio, "york new", "new york city", 100},
		{"token set partial", fuzz.TokenSetPartialRatio, "braves atlanta", "new york mets vs atlanta braves", 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn(tt.s1, tt.s2, 0)
			if err != nil {
				t.Fatalf("returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("score(%q, %q) = %d, want %d", tt.s1, tt.s2, got, tt.want)
			}
		})
	}
}

func TestPartialBeatsSimpleOnContainment(t *testing.T) {
	partial, err := fuzz.PartialRatio("test", "this is a test!", 0)
	if err != nil {
		t.Fatalf("PartialRatio returned error: %v", err)
	}
	simple, err := fuzz.Ratio("test", "this is a test!", 0)
	if err != nil {
		t.Fatalf("Ratio returned error: %v", err)
	}
	if partial < 90 {
		t.Fatalf("PartialRatio = %d, want >= 90", partial)
	}
	if partial-simple < 30 {
		t.Fatalf("expected simple ratio %d to be substantially lower than partial %d", simple, partial)
	}
}

func TestPartialEqualLengthMatchesSimple(t *testing.T) {
	partial := mustScore(t, fuzz.Partial, "abcd", "abce", 0)
	simple := mustScore(t, fuzz.Simple, "abcd", "abce", 0)
	if partial != simple {
		t.Fatalf("partial = %d, simple = %d; want equal for equal-length inputs", partial, simple)
	}
}

func TestTokenSetPartialDisjointTokens(t *testing.T) {
	got := mustScore(t, fuzz.TokenSetPartial, "abc def", "xyz", 0)
	if got >= 100 {
		t.Fatalf("TokenSetPartialRatio(disjoint) = %d, want < 100", got)
	}
}

func TestWeightedRatio(t *testing.T) {
	tests := []struct {
		name string
		s1   string
		s2   string
		want int
	}{
		// partial 100 discounted by 0.90
		{"length mismatch", "new york mets", "new york mets vs atlanta braves", 90},
		// simple 95, token candidates 100 discounted by 0.95
		{"comparable length", "fuzzy wuzzy was a bear", "wuzzy fuzzy was a bear", 95},
		// partial 100 discounted by 0.60
		{"far length mismatch", "ab", "xxxxxxxxxxxxxxxxxab", 60},
		{"identical", "atlanta braves", "Atlanta Braves", 100},
		// length ratio exactly 0.7 is not comparable: partial 100 discounted
		// by 0.90 instead of simple 82
		{"comparable boundary", "abcdefg", "abcdefgxyz", 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fuzz.WeightedRatio(tt.s1, tt.s2, 0)
			if err != nil {
				t.Fatalf("WeightedRatio returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("WeightedRatio(%q, %q) = %d, want %d", tt.s1, tt.s2, got, tt.want)
			}
		})
	}
}

func TestInvalidInput(t *testing.T) {
	cases := []struct {
		name  string
		s1    string
		s2    string
		flags fuzz.Flags
	}{
		{"first empty", "", "abc", 0},
		{"second empty", "abc", "", 0},
		{"both empty", "", "", 0},
		{"blank after trim", "   ", "abc", 0},
		{"empty with preserve whitespace", "", "abc", fuzz.PreserveWhitespace},
	}

	for _, alg := range fuzz.Algorithms() {
		for _, tc := range cases {
			t.Run(alg.String()+"/"+tc.name, func(t *testing.T) {
				got, err := fuzz.Score(alg, tc.s1, tc.s2, tc.flags)
				if !errors.Is(err, fuzz.ErrInvalidInput) {
					t.Fatalf("expected ErrInvalidInput, got %v", err)
				}
				if got != 0 {
					t.Fatalf("expected zero score on error, got %d", got)
				}
			})
		}
	}
}

func TestPreserveWhitespaceAcceptsBlankInput(t *testing.T) {
	got, err := fuzz.Ratio("   ", "   ", fuzz.PreserveWhitespace)
	if err != nil {
		t.Fatalf("Ratio returned error: %v", err)
	}
	if got != 100 {
		t.Fatalf("Ratio(blank, blank) = %d, want 100", got)
	}
}

func TestBlankInputHasNoTokens(t *testing.T) {
	want := map[fuzz.Algorithm]int{
		fuzz.Simple:           27,
		fuzz.Partial:          50,
		fuzz.TokenSort:        0,
		fuzz.TokenSortPartial: 0,
		fuzz.TokenSet:         0,
		fuzz.TokenSetPartial:  0,
		// partial 50 discounted by 0.90
		fuzz.Weighted: 45,
	}
	for _, alg := range fuzz.Algorithms() {
		t.Run(alg.String(), func(t *testing.T) {
			got, err := fuzz.Score(alg, "   ", "abcdefgh", fuzz.PreserveWhitespace)
			if err != nil {
				t.Fatalf("Score returned error: %v", err)
			}
			if got != want[alg] {
				t.Fatalf("%s(blank, text) = %d, want %d", alg, got, want[alg])
			}

			got, err = fuzz.Score(alg, "abcdefgh", "   ", fuzz.PreserveWhitespace)
			if err != nil {
				t.Fatalf("Score returned error: %v", err)
			}
			if got != want[alg] {
				t.Fatalf("%s(text, blank) = %d, want %d", alg, got, want[alg])
			}
		})
	}
}

func TestBlankInputsMatchOnTokens(t *testing.T) {
	for _, alg := range []fuzz.Algorithm{fuzz.TokenSort, fuzz.TokenSortPartial, fuzz.TokenSet, fuzz.TokenSetPartial} {
		got, err := fuzz.Score(alg, "  ", "    ", fuzz.PreserveWhitespace)
		if err != nil {
			t.Fatalf("%s returned error: %v", alg, err)
		}
		if got != 100 {
			t.Fatalf("%s(blank, blank) = %d, want 100", alg, got)
		}
	}
}

func TestScoreUnknownAlgorithm(t *testing.T) {
	_, err := fuzz.Score(fuzz.Algorithm(42), "a", "b", 0)
	if !errors.Is(err, fuzz.ErrUnknownAlgorithm) {
		t.Fatalf("expected ErrUnknownAlgorithm, got %v", err)
	}
}
