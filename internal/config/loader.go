package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/nao1215/passwdgen/internal/charset"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".passwdgen"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File is the YAML configuration file structure.
// It carries default values for generation so a user does not have to
// repeat flags like --charset or --dictionary on every invocation.
type File struct {
	Defaults Defaults `yaml:"defaults"`
}

// Defaults are the user's preferred generation settings.
// Zero values leave the built-in defaults in place.
type Defaults struct {
	// Charset is a charset name, e.g. "dict" or "alpha-numeric".
	Charset string `yaml:"charset"`

	// Separator is a named separator, e.g. "dash".
	Separator string `yaml:"separator"`

	// Length is the default character count for character mode.
	Length int `yaml:"length"`

	// WordCount is the default word count for word mode.
	WordCount int `yaml:"word-count"`

	// MinEntropy is the default minimum entropy target in bits.
	MinEntropy float64 `yaml:"min-entropy"`

	// Dictionary is the word list path.
	Dictionary string `yaml:"dictionary"`

	// Encoding is the IANA text encoding of the word list.
	Encoding string `yaml:"encoding"`
}

// LoadConfigFile loads defaults from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound; callers
// decide whether that matters based on whether the path was explicit.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}
	return &cf, nil
}

// FindConfigFile searches for the configuration file in order:
// the explicit path if given, .passwdgen in the current directory,
// .passwdgen in the home directory, then config.yaml in the XDG config
// directory. Returns an empty string when nothing is found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	if cwd, err := os.Getwd(); err == nil {
		candidate := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		candidate := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	candidate := filepath.Join(XDGConfigDir(), "config.yaml")
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}

	return ""
}

// Apply copies the file's defaults into cfg.
// Flags parsed after this call override whatever the file set, which
// gives the precedence users expect: built-in < config file < flag.
func (f *File) Apply(cfg *Config) error {
	if f.Defaults.Charset != "" {
		id, err := charset.Parse(f.Defaults.Charset)
		if err != nil {
			return err
		}
		cfg.Charset = id
	}
	if f.Defaults.Separator != "" {
		sep, err := ParseSeparator(f.Defaults.Separator)
		if err != nil {
			return err
		}
		cfg.Separator = sep
	}
	if f.Defaults.Length != 0 {
		cfg.Length = f.Defaults.Length
	}
	if f.Defaults.WordCount != 0 {
		cfg.WordCount = f.Defaults.WordCount
	}
	if f.Defaults.MinEntropy != 0 {
		cfg.MinEntropy = f.Defaults.MinEntropy
	}
	if f.Defaults.Dictionary != "" {
		cfg.DictionaryPath = f.Defaults.Dictionary
	}
	if f.Defaults.Encoding != "" {
		cfg.Encoding = f.Defaults.Encoding
	}
	return nil
}
