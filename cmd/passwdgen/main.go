// Package main provides the entry point for the passwdgen CLI.
//
// passwdgen is a password generation utility. It generates character-
// and dictionary-word-based passwords, analyzes the entropy of existing
// passwords, tests the statistical quality of the operating system's
// random number generator, and cleans word lists for use as password
// dictionaries.
//
// Usage:
//
//	passwdgen generate --charset alpha-numeric --min-entropy 80
//	passwdgen info
//	passwdgen rng --sample-size 1000000
//	passwdgen wordlist clean raw.txt words.txt
//
// See --help for all available options.
package main

// main is the entry point for passwdgen.
func main() {
	Execute()
}
