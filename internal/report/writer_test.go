package report

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/nao1215/passwdgen/internal/entropy"
	"github.com/nao1215/passwdgen/internal/quality"
	"github.com/nao1215/passwdgen/internal/wordlist"
)

// sampleEntropyReport returns a report for a lowercase+digit password.
func sampleEntropyReport() *entropy.Report {
	return entropy.Estimate("abc123")
}

func sampleDictReport() *entropy.Report {
	dict := wordlist.New([]string{"correct", "horse", "battery", "staple"})
	return entropy.Estimate("correct-horse", entropy.WithDictionary(dict))
}

func sampleQualityResult() *quality.Result {
	return &quality.Result{
		SampleSize: 1_000_000,
		Mean:       50.012345,
		StdDev:     29.141592,
		Variance:   849.232323,
		Elapsed:    1234 * time.Millisecond,
		CreatedAt:  time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
	}
}

// TestSimpleWriterEntropy tests the text rendering of entropy reports.
func TestSimpleWriterEntropy(t *testing.T) {
	t.Parallel()

	t.Run("charset rows", func(t *testing.T) {
		t.Parallel()

		var sb strings.Builder
		n, err := NewSimpleWriter(&sb).WriteEntropy(sampleEntropyReport())
		if err != nil {
			t.Fatalf("WriteEntropy returned error: %v", err)
		}
		out := sb.String()
		if n != len(out) {
			t.Errorf("reported %d bytes, wrote %d", n, len(out))
		}

		if !strings.Contains(out, "Password length: 6 characters") {
			t.Errorf("missing length line: %s", out)
		}
		// "abc123" is outside pure lowercase but inside the union.
		if !strings.Contains(out, "Lowercase letters") || !strings.Contains(out, "not in character set") {
			t.Errorf("expected excluded hypothesis row: %s", out)
		}
		if !strings.Contains(out, "Letters and digits") {
			t.Errorf("expected included union row: %s", out)
		}
	})

	t.Run("dictionary row", func(t *testing.T) {
		t.Parallel()

		var sb strings.Builder
		if _, err := NewSimpleWriter(&sb).WriteEntropy(sampleDictReport()); err != nil {
			t.Fatalf("WriteEntropy returned error: %v", err)
		}
		if !strings.Contains(sb.String(), "Dictionary words") {
			t.Errorf("expected dictionary row: %s", sb.String())
		}
		if !strings.Contains(sb.String(), "(2 words)") {
			t.Errorf("expected word count in dictionary row: %s", sb.String())
		}
	})
}

// TestSimpleWriterQuality tests the text rendering of quality results.
func TestSimpleWriterQuality(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	if _, err := NewSimpleWriter(&sb).WriteQuality(sampleQualityResult()); err != nil {
		t.Fatalf("WriteQuality returned error: %v", err)
	}
	out := sb.String()

	for _, want := range []string{"Samples", "1000000", "50.012345", "29.141592", "849.232323", "1.234 seconds"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in output: %s", want, out)
		}
	}
}

// TestJSONWriterEntropy tests that entropy JSON round-trips with stable
// hypothesis names.
func TestJSONWriterEntropy(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	if _, err := NewJSONWriter(&sb).WriteEntropy(sampleDictReport()); err != nil {
		t.Fatalf("WriteEntropy returned error: %v", err)
	}

	var decoded struct {
		Length   int                `json:"length"`
		Charsets map[string]float64 `json:"charsets"`
		Dict     *struct {
			Bits  float64 `json:"bits"`
			Words int     `json:"words"`
		} `json:"dictionary"`
	}
	if err := json.Unmarshal([]byte(sb.String()), &decoded); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}

	if decoded.Length != 13 {
		t.Errorf("length = %d, expected 13", decoded.Length)
	}
	if _, ok := decoded.Charsets["printable"]; !ok {
		t.Errorf("expected printable hypothesis key, got %v", decoded.Charsets)
	}
	if _, ok := decoded.Charsets["alpha-lower"]; ok {
		t.Error("alpha-lower must be excluded for a password containing a separator")
	}
	if decoded.Dict == nil || decoded.Dict.Words != 2 {
		t.Errorf("dictionary section = %+v, expected 2 words", decoded.Dict)
	}
}

// TestJSONWriterQuality tests quality JSON output.
func TestJSONWriterQuality(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	if _, err := NewJSONWriter(&sb).WriteQuality(sampleQualityResult()); err != nil {
		t.Fatalf("WriteQuality returned error: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(sb.String()), &decoded); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if decoded["sample_size"].(float64) != 1_000_000 {
		t.Errorf("sample_size = %v, expected 1000000", decoded["sample_size"])
	}
}

// TestMarkdownWriter tests the markdown table rendering.
func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	t.Run("entropy", func(t *testing.T) {
		t.Parallel()

		var sb strings.Builder
		if _, err := NewMarkdownWriter(&sb).WriteEntropy(sampleEntropyReport()); err != nil {
			t.Fatalf("WriteEntropy returned error: %v", err)
		}
		out := sb.String()
		if !strings.Contains(out, "# Password Entropy Report") {
			t.Errorf("missing title: %s", out)
		}
		if !strings.Contains(out, "Hypothesis") || !strings.Contains(out, "Entropy (bits)") {
			t.Errorf("missing table header: %s", out)
		}
	})

	t.Run("quality", func(t *testing.T) {
		t.Parallel()

		var sb strings.Builder
		if _, err := NewMarkdownWriter(&sb).WriteQuality(sampleQualityResult()); err != nil {
			t.Fatalf("WriteQuality returned error: %v", err)
		}
		out := sb.String()
		if !strings.Contains(out, "# RNG Quality Report") {
			t.Errorf("missing title: %s", out)
		}
		if !strings.Contains(out, "29.154759") {
			t.Errorf("missing theoretical stddev: %s", out)
		}
	})
}

// TestMultiWriter tests fan-out to multiple writers.
func TestMultiWriter(t *testing.T) {
	t.Parallel()

	var a, b strings.Builder
	mw := NewMultiWriter(NewSimpleWriter(&a), NewJSONWriter(&b))

	if _, err := mw.WriteQuality(sampleQualityResult()); err != nil {
		t.Fatalf("WriteQuality returned error: %v", err)
	}
	if a.Len() == 0 || b.Len() == 0 {
		t.Error("expected both writers to receive output")
	}
}
