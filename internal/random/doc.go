// Package random provides the cryptographically secure uniform selection
// primitive shared by password generation and RNG quality testing.
//
// All range reduction is bias-free: draws use rejection sampling so that
// every outcome in a finite set has exactly equal probability.
package random
