package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/nao1215/passwdgen/internal/charset"
	"github.com/nao1215/passwdgen/internal/quality"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "passwdgen"

	// DefaultCharset is the generation approach used when none is
	// requested: dictionary-word passwords, the most memorable kind.
	DefaultCharset = charset.Dict

	// DefaultSeparatorName is the named separator used for word-based
	// passwords when none is requested.
	DefaultSeparatorName = "dash"

	// systemWordList is the conventional Unix word list location, used
	// as a last-resort dictionary when the user supplies none.
	systemWordList = "/usr/share/dict/words"
)

// separators maps CLI separator names to the literal separator string.
// Named rather than literal on the command line because a bare space or
// empty string is awkward to pass through a shell.
var separators = map[string]string{
	"dash":       "-",
	"underscore": "_",
	"period":     ".",
	"space":      " ",
}

// SeparatorNames returns the valid separator names in stable order.
func SeparatorNames() []string {
	return []string{"dash", "underscore", "period", "space"}
}

// ParseSeparator resolves a named separator to its literal string.
func ParseSeparator(name string) (string, error) {
	if sep, ok := separators[name]; ok {
		return sep, nil
	}
	return "", fmt.Errorf("%w: %q (valid: %s)", ErrUnknownSeparator, name, strings.Join(SeparatorNames(), ", "))
}

// Config holds all configuration options for passwdgen.
// A single flat struct populated from CLI flags and the optional
// .passwdgen config file, passed through the application by value
// rather than via global state.
type Config struct {
	// Charset selects the character classes (or dictionary mode) for
	// generation and charset-specific operations.
	Charset charset.ID

	// DictionaryPath is the path of the word list file. Empty means
	// discover one via FindDictionary.
	DictionaryPath string

	// Encoding is the IANA text encoding name for dictionary and
	// password files. Empty means UTF-8.
	Encoding string

	// Separator is the literal separator joining words in word-based
	// passwords.
	Separator string

	// Length is the requested character count (character mode) or is
	// ignored (word mode). Zero means not specified.
	Length int

	// WordCount is the requested word count for word mode.
	// Zero means not specified.
	WordCount int

	// MinEntropy is the minimum entropy target in bits.
	// Zero means not specified. Ignored when an explicit size is given.
	MinEntropy float64

	// SampleSize is the number of samples for the RNG quality test.
	SampleSize int

	// Concurrency is the number of sampling workers for the RNG
	// quality test.
	Concurrency int

	// PasswordFile reads passwords from a file (one per line) instead
	// of prompting.
	PasswordFile string

	// ShowInfo additionally prints the entropy report after generating.
	ShowInfo bool

	// Clipboard copies the generated password to the system clipboard
	// instead of printing it.
	Clipboard bool

	// JSONReport selects JSON report output.
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport selects Markdown report output.
	// Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile writes the report to this path instead of stdout.
	ReportFile string

	// Verbose enables slog.LevelDebug output.
	Verbose bool

	// DBDir is the directory holding the quality-run history database.
	// Defaults to the XDG data directory.
	DBDir string
}

// NewConfig creates a Config with defaults applied.
// Zero values for sizes mean "not specified" so that explicit-size
// versus minimum-entropy resolution happens in one place, the
// password package.
func NewConfig() *Config {
	return &Config{
		Charset:     DefaultCharset,
		Separator:   separators[DefaultSeparatorName],
		SampleSize:  quality.DefaultSampleSize,
		Concurrency: 1,
		DBDir:       XDGDataDir(),
	}
}

// XDGDataDir returns the XDG data directory for passwdgen.
// On Linux: ~/.local/share/passwdgen
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for passwdgen.
// On Linux: ~/.config/passwdgen
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// FindDictionary resolves the word list path to load.
// Resolution order: the explicit path if set, then words.txt in the
// XDG data directory, then the system word list. Returns an empty
// string when nothing is found; whether that is an error depends on
// the caller (estimation works without a dictionary, word-mode
// generation does not).
func FindDictionary(explicit string) string {
	if explicit != "" {
		return explicit
	}

	xdgList := filepath.Join(XDGDataDir(), "words.txt")
	if _, err := os.Stat(xdgList); err == nil {
		return xdgList
	}

	if _, err := os.Stat(systemWordList); err == nil {
		return systemWordList
	}

	return ""
}

// Validate checks the configuration and returns the first problem
// found as a sentinel error. Called once after flag parsing, before
// any work begins, so every command fails fast with a clear message.
func (c *Config) Validate() error {
	if c.Length < 0 {
		return ErrInvalidLength
	}
	if c.WordCount < 0 {
		return ErrInvalidLength
	}
	if c.MinEntropy < 0 {
		return ErrInvalidMinEntropy
	}
	if c.SampleSize <= 0 {
		return ErrInvalidSampleSize
	}
	if c.Concurrency <= 0 {
		return ErrInvalidConcurrency
	}
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}
	if c.Separator == "" {
		return ErrEmptySeparator
	}
	return nil
}
