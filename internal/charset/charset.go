package charset

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// ID identifies a built-in character class or generation mode.
// String() gives the stable CLI and report name for each value.
type ID int

const (
	// Numeric is the decimal digit alphabet (0-9, 10 characters).
	Numeric ID = iota

	// AlphaLower is the lowercase letter alphabet (a-z, 26 characters).
	AlphaLower

	// AlphaUpper is the uppercase letter alphabet (A-Z, 26 characters).
	AlphaUpper

	// Special is the ASCII punctuation and symbol alphabet (32 characters).
	Special

	// Alpha is the union of AlphaLower and AlphaUpper (52 characters).
	Alpha

	// AlphaNumeric is the union of Alpha and Numeric (62 characters).
	AlphaNumeric

	// Printable is the union of AlphaNumeric and Special (94 characters).
	// This covers every printable ASCII character except space.
	Printable

	// Dict selects dictionary-word generation rather than a character
	// alphabet. It has no member set; the alphabet size is the word
	// count of the dictionary supplied at generation time.
	Dict
)

// String returns the stable name used on the command line and in reports.
func (id ID) String() string {
	switch id {
	case Numeric:
		return "numeric"
	case AlphaLower:
		return "alpha-lower"
	case AlphaUpper:
		return "alpha-upper"
	case Special:
		return "special"
	case Alpha:
		return "alpha"
	case AlphaNumeric:
		return "alpha-numeric"
	case Printable:
		return "printable"
	case Dict:
		return "dict"
	default:
		return "unknown"
	}
}

// Member alphabets for the built-in classes.
// Special covers the 32 printable ASCII punctuation characters.
const (
	numericMembers    = "0123456789"
	alphaLowerMembers = "abcdefghijklmnopqrstuvwxyz"
	alphaUpperMembers = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	specialMembers    = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

// Class describes one built-in character class.
// Members is the candidate alphabet; Priority orders classes for
// display, with the smallest (most restrictive) alphabet first.
type Class struct {
	ID          ID
	DisplayName string
	Members     string
	Priority    int
}

// Size returns the alphabet size of the class.
func (c Class) Size() int {
	return len(c.Members)
}

// BitsPerSymbol returns log2 of the alphabet size, the entropy
// contributed by one uniformly drawn character. A single-character
// alphabet carries no uncertainty and yields 0.
func (c Class) BitsPerSymbol() float64 {
	if c.Size() <= 1 {
		return 0
	}
	return math.Log2(float64(c.Size()))
}

// Contains reports whether every rune of s belongs to the class alphabet.
// The empty string is a member of every alphabet.
func (c Class) Contains(s string) bool {
	for _, r := range s {
		if !strings.ContainsRune(c.Members, r) {
			return false
		}
	}
	return true
}

// registry is the canonical table of built-in character classes.
// Estimation and generation both read this table so that a generated
// password's self-reported entropy matches the entropy target used to
// size it. Built once at package init and never mutated afterwards.
var registry = map[ID]Class{
	Numeric: {
		ID:          Numeric,
		DisplayName: "Numeric",
		Members:     numericMembers,
		Priority:    1,
	},
	AlphaLower: {
		ID:          AlphaLower,
		DisplayName: "Lowercase letters",
		Members:     alphaLowerMembers,
		Priority:    2,
	},
	AlphaUpper: {
		ID:          AlphaUpper,
		DisplayName: "Uppercase letters",
		Members:     alphaUpperMembers,
		Priority:    3,
	},
	Special: {
		ID:          Special,
		DisplayName: "Special characters",
		Members:     specialMembers,
		Priority:    4,
	},
	Alpha: {
		ID:          Alpha,
		DisplayName: "Letters",
		Members:     alphaLowerMembers + alphaUpperMembers,
		Priority:    5,
	},
	AlphaNumeric: {
		ID:          AlphaNumeric,
		DisplayName: "Letters and digits",
		Members:     alphaLowerMembers + alphaUpperMembers + numericMembers,
		Priority:    6,
	},
	Printable: {
		ID:          Printable,
		DisplayName: "All printable characters",
		Members:     alphaLowerMembers + alphaUpperMembers + numericMembers + specialMembers,
		Priority:    7,
	},
}

// Lookup returns the Class for the given ID.
// Dict and unknown IDs have no alphabet and report ok=false.
func Lookup(id ID) (Class, bool) {
	c, ok := registry[id]
	return c, ok
}

// All returns every built-in character class ordered by priority
// (smallest alphabet first). Dict is not included because it is a
// generation mode, not an alphabet.
func All() []Class {
	classes := make([]Class, 0, len(registry))
	for _, c := range registry {
		classes = append(classes, c)
	}
	sort.Slice(classes, func(i, j int) bool {
		return classes[i].Priority < classes[j].Priority
	})
	return classes
}

// Names returns the CLI names of all selectable charsets, Dict included,
// in display order. Used for flag help and validation messages.
func Names() []string {
	names := make([]string, 0, len(registry)+1)
	for _, c := range All() {
		names = append(names, c.ID.String())
	}
	names = append(names, Dict.String())
	return names
}

// Parse resolves a CLI charset name to its ID.
func Parse(name string) (ID, error) {
	for id := Numeric; id <= Dict; id++ {
		if id.String() == name {
			return id, nil
		}
	}
	return 0, fmt.Errorf("unknown charset %q (valid: %s)", name, strings.Join(Names(), ", "))
}

// Union combines the member sets of the given classes into a single
// deduplicated alphabet. The result preserves first-seen character
// order so union alphabets are stable across runs.
func Union(ids ...ID) (string, error) {
	var sb strings.Builder
	seen := make(map[rune]struct{})
	for _, id := range ids {
		c, ok := Lookup(id)
		if !ok {
			return "", fmt.Errorf("charset %q has no character alphabet", id)
		}
		for _, r := range c.Members {
			if _, dup := seen[r]; dup {
				continue
			}
			seen[r] = struct{}{}
			sb.WriteRune(r)
		}
	}
	return sb.String(), nil
}
