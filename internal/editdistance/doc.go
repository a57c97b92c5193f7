// Package editdistance converts Levenshtein edit distance into the 0-100
// similarity ratio every scoring heuristic reduces to.
//
// Lengths and distances are counted in runes. Insertion, deletion, and
// substitution each cost one edit.
package editdistance
