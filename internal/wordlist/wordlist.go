package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// Dictionary is an ordered sequence of distinct lowercase words.
// It is immutable once loaded; case treatment is fixed at load time by
// lowercasing every word. Lookup is O(1) via an internal index.
type Dictionary struct {
	words []string
	index map[string]struct{}
}

// New builds a Dictionary from the given words.
// Words are lowercased and trimmed; empty words and duplicates are
// dropped while first-seen order is preserved.
func New(words []string) *Dictionary {
	d := &Dictionary{
		words: make([]string, 0, len(words)),
		index: make(map[string]struct{}, len(words)),
	}
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if _, dup := d.index[w]; dup {
			continue
		}
		d.index[w] = struct{}{}
		d.words = append(d.words, w)
	}
	return d
}

// Len returns the number of words in the dictionary.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.words)
}

// Word returns the word at position i.
func (d *Dictionary) Word(i int) string {
	return d.words[i]
}

// Words returns the full word sequence. The returned slice is a copy so
// callers cannot mutate the dictionary.
func (d *Dictionary) Words() []string {
	out := make([]string, len(d.words))
	copy(out, d.words)
	return out
}

// Contains reports whether w is present in the dictionary.
// Matching is case-insensitive because words are lowercased at load time.
func (d *Dictionary) Contains(w string) bool {
	if d == nil {
		return false
	}
	_, ok := d.index[strings.ToLower(w)]
	return ok
}

// Option configures dictionary loading and cleaning.
type Option func(*options)

type options struct {
	encoding string
}

// WithEncoding selects the text encoding of the input (and output, for
// Clean) by IANA name, e.g. "ISO-8859-1" or "windows-1252".
// When empty, input is read as UTF-8.
func WithEncoding(name string) Option {
	return func(o *options) {
		o.encoding = name
	}
}

// DecodeReader wraps r with a decoder for the named IANA encoding.
// An empty name returns r unchanged (UTF-8 passthrough).
func DecodeReader(r io.Reader, name string) (io.Reader, error) {
	if name == "" {
		return r, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("wordlist: unknown encoding %q: %w", name, err)
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}

// encodeWriter wraps w with an encoder for the named encoding.
func encodeWriter(w io.Writer, name string) (io.Writer, error) {
	if name == "" {
		return w, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("wordlist: unknown encoding %q: %w", name, err)
	}
	return transform.NewWriter(w, enc.NewEncoder()), nil
}

// Load reads a word list from r, one word per line.
// Lines are trimmed and lowercased; empty lines and duplicates are
// skipped. The input is assumed to be a cleaned word list (see Clean).
func Load(r io.Reader, opts ...Option) (*Dictionary, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	decoded, err := DecodeReader(r, o.encoding)
	if err != nil {
		return nil, err
	}

	var words []string
	scanner := bufio.NewScanner(decoded)
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("wordlist: read word list: %w", err)
	}

	return New(words), nil
}

// LoadFile reads a word list from the file at path.
func LoadFile(path string, opts ...Option) (*Dictionary, error) {
	f, err := os.Open(path) //nolint:gosec // User-provided dictionary path is intentional
	if err != nil {
		return nil, fmt.Errorf("wordlist: open dictionary: %w", err)
	}
	defer f.Close()

	return Load(f, opts...)
}

// CleanResult reports what a Clean pass did.
type CleanResult struct {
	// WordsRead is the number of input lines processed.
	WordsRead int

	// WordsWritten is the number of cleaned words written out.
	WordsWritten int

	// Elapsed is the wall-clock duration of the cleaning pass.
	Elapsed time.Duration
}

// Clean reads a raw word list from r line by line, strips punctuation,
// digits, and whitespace from each line, lowercases what remains, drops
// empty results and duplicates, and writes one cleaned word per line
// to w. It returns counts of words read and written plus elapsed time.
func Clean(r io.Reader, w io.Writer, opts ...Option) (CleanResult, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	start := time.Now()

	decoded, err := DecodeReader(r, o.encoding)
	if err != nil {
		return CleanResult{}, err
	}
	encoded, err := encodeWriter(w, o.encoding)
	if err != nil {
		return CleanResult{}, err
	}

	var result CleanResult
	seen := make(map[string]struct{})
	out := bufio.NewWriter(encoded)
	scanner := bufio.NewScanner(decoded)
	for scanner.Scan() {
		result.WordsRead++

		word := cleanWord(scanner.Text())
		if word == "" {
			continue
		}
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}

		if _, err := out.WriteString(word + "\n"); err != nil {
			return result, fmt.Errorf("wordlist: write cleaned word: %w", err)
		}
		result.WordsWritten++
	}
	if err := scanner.Err(); err != nil {
		return result, fmt.Errorf("wordlist: read word list: %w", err)
	}
	if err := out.Flush(); err != nil {
		return result, fmt.Errorf("wordlist: flush cleaned output: %w", err)
	}

	result.Elapsed = time.Since(start)
	return result, nil
}

// cleanWord lowercases the line and keeps only letters.
func cleanWord(line string) string {
	var sb strings.Builder
	for _, r := range line {
		if unicode.IsLetter(r) {
			sb.WriteRune(unicode.ToLower(r))
		}
	}
	return sb.String()
}
