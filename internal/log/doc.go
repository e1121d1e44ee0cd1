// Package log provides logging utilities for passwdgen.
// Its SecureHandler guarantees that passwords never leak into log
// output, even at debug level.
package log
