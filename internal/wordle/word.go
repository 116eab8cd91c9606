// Package wordle holds the domain primitives shared by the solver, the
// renderer and the CLI: the fixed word length, the feedback-pattern
// encoding, typed construction errors and word-list loading.
package wordle

// Len is the compile-time word length. The spec fixes this as a build-time
// constant rather than a runtime parameter.
const Len = 5

// NumPatterns is the number of distinct feedback patterns for a word of
// length Len: 3 (grey/yellow/green) raised to the Len-th power.
const NumPatterns = 243 // 3^Len

// AllGreens is the pattern value denoting every letter correct, i.e. the
// guess equals the solution.
const AllGreens = NumPatterns - 1

// MaxGuesses is the depth budget used by the search engine (spec §4.3).
const MaxGuesses = 6
