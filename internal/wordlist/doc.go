// Package wordlist supplies dictionaries for word-based password
// generation and the dictionary entropy hypothesis, plus the cleaning
// pass that turns raw word lists into usable ones.
//
// A Dictionary is immutable after loading: an ordered sequence of
// distinct lowercase words with constant-time membership lookup.
package wordlist
