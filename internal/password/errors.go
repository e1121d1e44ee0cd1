package password

import "errors"

// Generation request errors.
// All of these are detected synchronously before any randomness is
// consumed, so a failed request never produces a partial password.
// Callers can match them with errors.Is.
var (
	// ErrEmptyAlphabet is returned when the resolved character alphabet
	// has no members, e.g. a request with no character classes.
	ErrEmptyAlphabet = errors.New("invalid request: resolved alphabet is empty")

	// ErrEmptyDictionary is returned when word mode is requested but the
	// dictionary has no words.
	ErrEmptyDictionary = errors.New("invalid request: dictionary is empty, at least one word is required")

	// ErrEntropyUnreachable is returned when a minimum entropy target is
	// requested but the alphabet or dictionary has size 1. Each draw then
	// contributes 0 bits, so no length can reach the target.
	ErrEntropyUnreachable = errors.New("invalid request: minimum entropy unreachable with a single-member alphabet")

	// ErrInvalidLength is returned when a negative length or word count
	// is requested.
	ErrInvalidLength = errors.New("invalid request: length must be positive")

	// ErrInvalidMinEntropy is returned when a negative minimum entropy
	// is requested.
	ErrInvalidMinEntropy = errors.New("invalid request: minimum entropy must be positive")
)
