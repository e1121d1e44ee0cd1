// Package entropy estimates password strength in bits under a set of
// candidate hypotheses: one per built-in character class, plus an
// optional word-dictionary hypothesis.
//
// Entropy here is log2 of the number of equally likely candidates an
// attacker must search under the hypothesis that produced the password.
package entropy
