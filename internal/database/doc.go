// Package database provides SQLite-based persistence for RNG quality
// test history, so runs can be compared across time.
package database
