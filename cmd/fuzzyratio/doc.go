// Package main hosts the fuzzyratio CLI entrypoint and command graph.
//
// The Cobra-based command tree exposes every scoring algorithm as its own
// subcommand, a generic score command, a side-by-side comparison view, and
// configuration scaffolding. It centralizes configuration resolution, flag
// overrides, and structured logging setup so subcommands only parse their
// arguments and render results.
//
// Scores are written to stdout and logs to stderr, so the output of a single
// score command can be consumed directly by scripts.
package main
