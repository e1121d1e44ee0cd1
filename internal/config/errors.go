package config

import "errors"

// Configuration validation errors.
// Package-level sentinels so callers can match them with errors.Is
// while still getting a human-readable message.
var (
	// ErrInvalidLength is returned when a negative length or word count
	// is configured. Zero means "not specified" and is valid.
	ErrInvalidLength = errors.New("invalid length: must not be negative")

	// ErrInvalidMinEntropy is returned when the minimum entropy target
	// is negative.
	ErrInvalidMinEntropy = errors.New("invalid minimum entropy: must not be negative")

	// ErrInvalidSampleSize is returned when the RNG test sample size is
	// not positive.
	ErrInvalidSampleSize = errors.New("invalid sample size: must be positive")

	// ErrInvalidConcurrency is returned when the RNG test worker count
	// is not positive.
	ErrInvalidConcurrency = errors.New("invalid concurrency: must be positive")

	// ErrConflictingReportFormats is returned when both --json and
	// --markdown are specified.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrUnknownSeparator is returned for an unrecognized separator name.
	ErrUnknownSeparator = errors.New("unknown separator")

	// ErrEmptySeparator is returned when the resolved separator is empty.
	ErrEmptySeparator = errors.New("separator must not be empty")
)
