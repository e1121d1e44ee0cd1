package entropy

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/nao1215/passwdgen/internal/charset"
	"github.com/nao1215/passwdgen/internal/wordlist"
)

// DefaultSeparator is the token separator assumed by the dictionary
// hypothesis when none is configured.
const DefaultSeparator = "-"

// Report holds the entropy of a password under every hypothesis the
// password is consistent with. A character-class hypothesis is included
// only when the class alphabet covers every character of the password;
// an alphabet that does not cover the password would underestimate the
// attack cost and is omitted instead.
type Report struct {
	// Length is the password length in characters.
	Length int

	// Charsets maps each included character-class hypothesis to its
	// entropy in bits. The map is unordered; display ordering is a
	// presentation concern handled by report writers.
	Charsets map[charset.ID]float64

	// HasDictionary reports whether the dictionary hypothesis applies,
	// i.e. the password decomposes entirely into separator-delimited
	// dictionary words.
	HasDictionary bool

	// DictionaryBits is the entropy under the dictionary hypothesis.
	// Only meaningful when HasDictionary is true.
	DictionaryBits float64

	// DictionaryWords is the number of dictionary words the password
	// decomposes into. Only meaningful when HasDictionary is true.
	DictionaryWords int
}

// Bits returns the entropy under the given character-class hypothesis
// and whether that hypothesis is included in the report.
func (r *Report) Bits(id charset.ID) (float64, bool) {
	bits, ok := r.Charsets[id]
	return bits, ok
}

// Option configures an estimation.
type Option func(*estimator)

type estimator struct {
	dict      *wordlist.Dictionary
	separator string
}

// WithDictionary supplies a dictionary so the dictionary hypothesis is
// evaluated in addition to the character-class hypotheses.
func WithDictionary(d *wordlist.Dictionary) Option {
	return func(e *estimator) {
		e.dict = d
	}
}

// WithSeparator sets the token separator used when testing whether a
// password decomposes into dictionary words. Defaults to DefaultSeparator.
func WithSeparator(sep string) Option {
	return func(e *estimator) {
		if sep != "" {
			e.separator = sep
		}
	}
}

// Estimate computes the entropy of password under each built-in
// character-class hypothesis and, when a dictionary is supplied, under
// the dictionary hypothesis.
//
// For an included class with alphabet size A and password length L the
// entropy is L*log2(A), modelling a uniform draw from that alphabet.
// An empty password is not an error: every class hypothesis is included
// with 0 bits and the dictionary hypothesis is omitted.
func Estimate(password string, opts ...Option) *Report {
	e := estimator{separator: DefaultSeparator}
	for _, opt := range opts {
		opt(&e)
	}

	length := utf8.RuneCountInString(password)
	report := &Report{
		Length:   length,
		Charsets: make(map[charset.ID]float64),
	}

	for _, class := range charset.All() {
		if !class.Contains(password) {
			continue
		}
		report.Charsets[class.ID] = float64(length) * class.BitsPerSymbol()
	}

	if e.dict != nil && e.dict.Len() > 0 && password != "" {
		if words, ok := decompose(password, e.separator, e.dict); ok {
			report.HasDictionary = true
			report.DictionaryWords = words
			report.DictionaryBits = float64(words) * dictBitsPerWord(e.dict.Len())
		}
	}

	return report
}

// decompose splits password by sep and reports the token count if every
// token is found verbatim in the dictionary. A password that does not
// decompose entirely into dictionary words fails the hypothesis.
func decompose(password, sep string, dict *wordlist.Dictionary) (int, bool) {
	tokens := strings.Split(password, sep)
	for _, tok := range tokens {
		if tok == "" || !dict.Contains(tok) {
			return 0, false
		}
	}
	return len(tokens), true
}

// dictBitsPerWord returns log2 of the dictionary size. A one-word
// dictionary carries no uncertainty and yields 0.
func dictBitsPerWord(n int) float64 {
	if n <= 1 {
		return 0
	}
	return math.Log2(float64(n))
}
