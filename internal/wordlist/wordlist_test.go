package wordlist

import (
	"strings"
	"testing"
)

// TestNew tests dictionary construction rules.
func TestNew(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "lowercases and preserves order",
			input:    []string{"Apple", "BANANA", "cherry"},
			expected: []string{"apple", "banana", "cherry"},
		},
		{
			name:     "drops duplicates after case folding",
			input:    []string{"apple", "Apple", "APPLE", "pear"},
			expected: []string{"apple", "pear"},
		},
		{
			name:     "drops empty and whitespace-only words",
			input:    []string{"", "  ", "fig"},
			expected: []string{"fig"},
		},
		{
			name:     "empty input",
			input:    nil,
			expected: []string{},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			d := New(tc.input)
			if d.Len() != len(tc.expected) {
				t.Fatalf("Len() = %d, expected %d", d.Len(), len(tc.expected))
			}
			for i, w := range tc.expected {
				if d.Word(i) != w {
					t.Errorf("Word(%d) = %q, expected %q", i, d.Word(i), w)
				}
			}
		})
	}
}

// TestDictionaryContains tests case-insensitive membership.
func TestDictionaryContains(t *testing.T) {
	t.Parallel()

	d := New([]string{"correct", "horse", "battery", "staple"})

	if !d.Contains("horse") {
		t.Error("expected Contains(\"horse\") to be true")
	}
	if !d.Contains("HORSE") {
		t.Error("expected case-insensitive match for \"HORSE\"")
	}
	if d.Contains("pony") {
		t.Error("expected Contains(\"pony\") to be false")
	}

	var nilDict *Dictionary
	if nilDict.Contains("horse") {
		t.Error("nil dictionary should contain nothing")
	}
	if nilDict.Len() != 0 {
		t.Error("nil dictionary should have length 0")
	}
}

// TestDictionaryWordsIsCopy tests that Words returns an independent slice.
func TestDictionaryWordsIsCopy(t *testing.T) {
	t.Parallel()

	d := New([]string{"one", "two"})
	words := d.Words()
	words[0] = "mutated"
	if d.Word(0) != "one" {
		t.Error("mutating Words() result must not affect the dictionary")
	}
}

// TestLoad tests reading a word list from a stream.
func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("one word per line", func(t *testing.T) {
		t.Parallel()
		d, err := Load(strings.NewReader("alpha\nbravo\ncharlie\n"))
		if err != nil {
			t.Fatalf("Load returned error: %v", err)
		}
		if d.Len() != 3 {
			t.Errorf("Len() = %d, expected 3", d.Len())
		}
		if !d.Contains("bravo") {
			t.Error("expected loaded dictionary to contain \"bravo\"")
		}
	})

	t.Run("unknown encoding fails", func(t *testing.T) {
		t.Parallel()
		if _, err := Load(strings.NewReader("a\n"), WithEncoding("no-such-encoding")); err == nil {
			t.Error("expected error for unknown encoding")
		}
	})

	t.Run("latin-1 input decodes", func(t *testing.T) {
		t.Parallel()
		// "café" in ISO-8859-1: é is a single 0xE9 byte.
		raw := []byte{'c', 'a', 'f', 0xE9, '\n'}
		d, err := Load(strings.NewReader(string(raw)), WithEncoding("ISO-8859-1"))
		if err != nil {
			t.Fatalf("Load returned error: %v", err)
		}
		if !d.Contains("café") {
			t.Errorf("expected decoded dictionary to contain %q, words: %v", "café", d.Words())
		}
	})
}

// TestClean tests the word list cleaning pass.
func TestClean(t *testing.T) {
	t.Parallel()

	t.Run("strips punctuation digits and whitespace", func(t *testing.T) {
		t.Parallel()
		input := "Apple!\n  ba2nana  \ncherry's\n123\n\ncherrys\n"
		var out strings.Builder

		result, err := Clean(strings.NewReader(input), &out)
		if err != nil {
			t.Fatalf("Clean returned error: %v", err)
		}

		if result.WordsRead != 6 {
			t.Errorf("WordsRead = %d, expected 6", result.WordsRead)
		}
		// "123" cleans to nothing, "" is empty, and "cherry's" collides
		// with "cherrys" after cleaning.
		if result.WordsWritten != 3 {
			t.Errorf("WordsWritten = %d, expected 3", result.WordsWritten)
		}
		expected := "apple\nbanana\ncherrys\n"
		if out.String() != expected {
			t.Errorf("output = %q, expected %q", out.String(), expected)
		}
	})

	t.Run("reports elapsed time", func(t *testing.T) {
		t.Parallel()
		var out strings.Builder
		result, err := Clean(strings.NewReader("word\n"), &out)
		if err != nil {
			t.Fatalf("Clean returned error: %v", err)
		}
		if result.Elapsed < 0 {
			t.Error("expected non-negative elapsed time")
		}
	})

	t.Run("unknown encoding fails before reading", func(t *testing.T) {
		t.Parallel()
		var out strings.Builder
		if _, err := Clean(strings.NewReader("word\n"), &out, WithEncoding("bogus")); err == nil {
			t.Error("expected error for unknown encoding")
		}
	})
}
