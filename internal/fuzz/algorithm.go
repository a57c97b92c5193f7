package fuzz

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Algorithm identifies one scoring heuristic.
type Algorithm int

const (
	// Simple is the edit-distance ratio of the whole prepared strings.
	Simple Algorithm = iota
	// Partial scores the shorter string against its best window in the longer.
	Partial
	// TokenSort applies Simple to the alphabetically sorted tokens.
	TokenSort
	// TokenSortPartial applies Partial to the alphabetically sorted tokens.
	TokenSortPartial
	// TokenSet applies Simple to token intersection and remainder strings.
	TokenSet
	// TokenSetPartial applies Partial to token intersection and remainder strings.
	TokenSetPartial
	// Weighted keeps the best discounted score for the pair's length profile.
	Weighted
)

var algorithmNames = [...]string{
	Simple:           "ratio",
	Partial:          "partial",
	TokenSort:        "token-sort",
	TokenSortPartial: "token-sort-partial",
	TokenSet:         "token-set",
	TokenSetPartial:  "token-set-partial",
	Weighted:         "weighted",
}

var algorithmSummaries = [...]string{
	Simple:           "Edit-distance ratio of the two prepared strings",
	Partial:          "Best ratio of the shorter string against any equal-length window of the longer",
	TokenSort:        "Ratio after sorting each string's tokens",
	TokenSortPartial: "Partial ratio after sorting each string's tokens",
	TokenSet:         "Best ratio over token-set intersection and remainder strings",
	TokenSetPartial:  "Best partial ratio over token-set intersection and remainder strings",
	Weighted:         "Best discounted score across heuristics, chosen by length profile",
}

// Algorithms lists every algorithm in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{Simple, Partial, TokenSort, TokenSortPartial, TokenSet, TokenSetPartial, Weighted}
}

// Valid reports whether a names a known algorithm.
func (a Algorithm) Valid() bool {
	return a >= Simple && a <= Weighted
}

func (a Algorithm) String() string {
	if !a.Valid() {
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
	return algorithmNames[a]
}

// Title returns a display label such as "Token Sort Partial".
func (a Algorithm) Title() string {
	if a == Simple {
		return "Simple Ratio"
	}
	return cases.Title(language.Und).String(strings.ReplaceAll(a.String(), "-", " "))
}

// Summary describes the heuristic in one line.
func (a Algorithm) Summary() string {
	if !a.Valid() {
		return ""
	}
	return algorithmSummaries[a]
}

// ParseAlgorithm resolves a canonical name. Underscores, surrounding
// whitespace, and case are ignored, and "simple" is accepted for "ratio".
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.ReplaceAll(key, "_", "-")
	if key == "simple" {
		return Simple, nil
	}
	for _, alg := range Algorithms() {
		if algorithmNames[alg] == key {
			return alg, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// MarshalText encodes the canonical name.
func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText decodes a name accepted by ParseAlgorithm.
func (a *Algorithm) UnmarshalText(text []byte) error {
	parsed, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
