// Package quality measures the statistical quality of the random number
// source used for password generation.
//
// It draws a large sample of bounded integers and reports mean, standard
// deviation, and variance for the caller to judge against the values a
// perfect uniform distribution would produce. It is a diagnostic, not a
// correctness gate.
package quality
