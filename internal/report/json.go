package report

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/nao1215/passwdgen/internal/entropy"
	"github.com/nao1215/passwdgen/internal/quality"
)

// JSONWriter outputs structured JSON for tool integration.
type JSONWriter struct {
	baseWriter
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer) *JSONWriter {
	return &JSONWriter{baseWriter: newBaseWriter(output)}
}

// jsonEntropyReport is the wire shape of an entropy report. Hypothesis
// keys are the stable charset names rather than internal IDs.
type jsonEntropyReport struct {
	Length     int                `json:"length"`
	Charsets   map[string]float64 `json:"charsets"`
	Dictionary *jsonDictEntropy   `json:"dictionary,omitempty"`
}

type jsonDictEntropy struct {
	Bits  float64 `json:"bits"`
	Words int     `json:"words"`
}

// WriteEntropy outputs the entropy report as indented JSON.
func (w *JSONWriter) WriteEntropy(report *entropy.Report) (int, error) {
	out := jsonEntropyReport{
		Length:   report.Length,
		Charsets: make(map[string]float64, len(report.Charsets)),
	}
	for id, bits := range report.Charsets {
		out.Charsets[id.String()] = bits
	}
	if report.HasDictionary {
		out.Dictionary = &jsonDictEntropy{
			Bits:  report.DictionaryBits,
			Words: report.DictionaryWords,
		}
	}
	return w.encode(out)
}

// WriteQuality outputs the quality result as indented JSON.
func (w *JSONWriter) WriteQuality(result *quality.Result) (int, error) {
	return w.encode(result)
}

// encode writes v as indented JSON and reports the bytes written.
func (w *JSONWriter) encode(v any) (int, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return 0, err
	}
	return w.output.Write(buf.Bytes())
}
