//go:build vect_debug

package vect

// debugChecks enables the fatal numeric precondition checks.
// Build with -tags vect_debug during development to catch
// zero-length normalizations, zero divisors and non-finite
// intermediates as panics instead of silent NaN propagation.
const debugChecks = true
