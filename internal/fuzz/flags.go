package fuzz

import (
	"strings"

	"fuzzyratio/internal/textutil"
)

// Flags selects input preparation behaviour. The zero value lowercases and
// trims both inputs.
type Flags uint8

const (
	// CaseSensitive skips case folding.
	CaseSensitive Flags = 1 << iota
	// PreserveWhitespace skips trimming.
	PreserveWhitespace
	// ComposeUnicode applies NFC composition before folding.
	ComposeUnicode
)

// Has reports whether every bit of flag is set.
func (f Flags) Has(flag Flags) bool {
	return f&flag == flag
}

func (f Flags) String() string {
	var parts []string
	if f.Has(CaseSensitive) {
		parts = append(parts, "case_sensitive")
	}
	if f.Has(PreserveWhitespace) {
		parts = append(parts, "preserve_whitespace")
	}
	if f.Has(ComposeUnicode) {
		parts = append(parts, "compose_unicode")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

func (f Flags) normalizeOptions() textutil.NormalizeOptions {
	return textutil.NormalizeOptions{
		CaseSensitive:      f.Has(CaseSensitive),
		PreserveWhitespace: f.Has(PreserveWhitespace),
		ComposeUnicode:     f.Has(ComposeUnicode),
	}
}
