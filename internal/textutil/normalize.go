package textutil

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeOptions selects which preparation steps Normalize skips or adds.
type NormalizeOptions struct {
	// CaseSensitive skips lowercase folding.
	CaseSensitive bool
	// PreserveWhitespace skips trimming leading and trailing whitespace.
	PreserveWhitespace bool
	// ComposeUnicode applies NFC composition before folding so precomposed
	// and combining-mark spellings of the same character compare equal.
	ComposeUnicode bool
}

// Normalize prepares value for scoring. Folding is codepoint-wise with no
// locale rules, and trimming only touches the ends of the string.
func Normalize(value string, opts NormalizeOptions) string {
	if opts.ComposeUnicode {
		value = norm.NFC.String(value)
	}
	if !opts.CaseSensitive {
		value = strings.ToLower(value)
	}
	if !opts.PreserveWhitespace {
		value = strings.TrimSpace(value)
	}
	return value
}
