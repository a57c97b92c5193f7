// Package textutil provides the text preparation primitives used by the
// fuzzy scoring engine.
//
// The primary use cases are:
//   - Normalizing raw input (case folding, trimming, optional NFC composition)
//   - Splitting normalized text into whitespace-delimited tokens
//   - Building deterministic comparison strings from token lists and sets
//
// Token sets are represented as sorted, deduplicated string slices so set
// algebra (intersection, difference) runs as a linear merge and every derived
// comparison string is reproducible for identical token contents.
package textutil
