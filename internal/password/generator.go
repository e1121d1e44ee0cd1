package password

import (
	"math"
	"strings"

	"github.com/nao1215/passwdgen/internal/charset"
	"github.com/nao1215/passwdgen/internal/random"
	"github.com/nao1215/passwdgen/internal/wordlist"
)

// Default sizes used when a request specifies neither an explicit size
// nor a minimum entropy target.
const (
	// DefaultLength is the default character count for character mode.
	DefaultLength = 12

	// DefaultWordCount is the default word count for word mode.
	DefaultWordCount = 4

	// DefaultSeparator joins words in word mode when none is configured.
	DefaultSeparator = "-"
)

// Mode selects the generation strategy.
type Mode int

const (
	// ModeCharacters draws independent uniform characters from a
	// character-class alphabet.
	ModeCharacters Mode = iota

	// ModeWords draws independent uniform words (with replacement) from
	// a dictionary and joins them with a separator.
	ModeWords
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeCharacters:
		return "characters"
	case ModeWords:
		return "words"
	default:
		return "unknown"
	}
}

// Request describes one password to generate.
//
// Size resolution: an explicit Length/WordCount always wins; otherwise
// MinEntropy determines the smallest size whose entropy meets the
// target; otherwise the documented defaults apply. A zero Length,
// WordCount, or MinEntropy means "not specified".
type Request struct {
	// Mode selects character- or word-based generation.
	Mode Mode

	// Classes are the character classes whose union forms the alphabet
	// in character mode. Ignored in word mode.
	Classes []charset.ID

	// Dictionary supplies the words for word mode. Ignored in
	// character mode.
	Dictionary *wordlist.Dictionary

	// Separator joins words in word mode. Empty means DefaultSeparator.
	Separator string

	// Length is the explicit character count for character mode.
	Length int

	// WordCount is the explicit word count for word mode.
	WordCount int

	// MinEntropy is the minimum entropy target in bits. Used only when
	// the explicit size is not specified.
	MinEntropy float64
}

// Generator produces passwords from a random Source.
type Generator struct {
	src random.Source
}

// Option configures a Generator.
type Option func(*Generator)

// WithSource sets the random source. Defaults to the crypto/rand-backed
// CryptoSource. Tests use this to substitute a deterministic source.
func WithSource(src random.Source) Option {
	return func(g *Generator) {
		if src != nil {
			g.src = src
		}
	}
}

// NewGenerator creates a Generator.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{src: random.NewCryptoSource()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate produces one password for the request.
// All request validation happens before the first random draw; an
// invalid request consumes no randomness and returns a sentinel error
// from this package.
func (g *Generator) Generate(req Request) (string, error) {
	switch req.Mode {
	case ModeWords:
		return g.generateWords(req)
	default:
		return g.generateCharacters(req)
	}
}

// generateCharacters draws req.Length uniform characters from the union
// alphabet of the requested classes.
func (g *Generator) generateCharacters(req Request) (string, error) {
	alphabet, err := charset.Union(req.Classes...)
	if err != nil {
		return "", err
	}
	if len(alphabet) == 0 {
		return "", ErrEmptyAlphabet
	}

	bitsPerChar := float64(0)
	if len(alphabet) > 1 {
		bitsPerChar = math.Log2(float64(len(alphabet)))
	}

	length, err := resolveCount(req.Length, req.MinEntropy, bitsPerChar, DefaultLength)
	if err != nil {
		return "", err
	}

	buf := make([]byte, length)
	for i := range buf {
		c, err := random.PickByte(g.src, alphabet)
		if err != nil {
			return "", err
		}
		buf[i] = c
	}
	return string(buf), nil
}

// generateWords draws req.WordCount uniform words with replacement and
// joins them with the separator.
func (g *Generator) generateWords(req Request) (string, error) {
	if req.Dictionary.Len() == 0 {
		return "", ErrEmptyDictionary
	}

	bitsPerWord := float64(0)
	if req.Dictionary.Len() > 1 {
		bitsPerWord = math.Log2(float64(req.Dictionary.Len()))
	}

	count, err := resolveCount(req.WordCount, req.MinEntropy, bitsPerWord, DefaultWordCount)
	if err != nil {
		return "", err
	}

	separator := req.Separator
	if separator == "" {
		separator = DefaultSeparator
	}

	words := req.Dictionary.Words()
	picked := make([]string, count)
	for i := range picked {
		w, err := random.PickString(g.src, words)
		if err != nil {
			return "", err
		}
		picked[i] = w
	}
	return strings.Join(picked, separator), nil
}

// resolveCount determines how many symbols to draw.
// An explicit count always wins; otherwise a minimum entropy target is
// converted to the smallest count meeting it; otherwise def applies.
func resolveCount(explicit int, minEntropy, bitsPerSymbol float64, def int) (int, error) {
	if explicit < 0 {
		return 0, ErrInvalidLength
	}
	if explicit > 0 {
		return explicit, nil
	}
	if minEntropy < 0 {
		return 0, ErrInvalidMinEntropy
	}
	if minEntropy > 0 {
		return countForEntropy(minEntropy, bitsPerSymbol)
	}
	return def, nil
}

// countForEntropy returns ceil(minEntropy / bitsPerSymbol) with
// integer-safe rounding. Floating-point division can land a hair above
// or below an integer at exact powers of two, so the result of Ceil is
// corrected in both directions against the multiplication that the
// round-trip invariant is stated in.
func countForEntropy(minEntropy, bitsPerSymbol float64) (int, error) {
	if bitsPerSymbol == 0 {
		return 0, ErrEntropyUnreachable
	}

	n := int(math.Ceil(minEntropy / bitsPerSymbol))
	for n > 1 && float64(n-1)*bitsPerSymbol >= minEntropy {
		n--
	}
	for float64(n)*bitsPerSymbol < minEntropy {
		n++
	}
	if n < 1 {
		n = 1
	}
	return n, nil
}
