package report

import (
	"io"

	"github.com/nao1215/passwdgen/internal/entropy"
	"github.com/nao1215/passwdgen/internal/quality"
)

// Writer outputs entropy and RNG quality reports.
// Implementations render the same data in different formats, so the
// commands can switch between terminal text, JSON, and Markdown with
// one flag.
type Writer interface {
	// WriteEntropy outputs a password entropy report.
	// Returns the number of bytes written and any error encountered.
	WriteEntropy(report *entropy.Report) (int, error)

	// WriteQuality outputs an RNG quality test result.
	WriteQuality(result *quality.Result) (int, error)
}

// MultiWriter writes to multiple Writers simultaneously, e.g. terminal
// and file. It stops on the first error encountered.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// WriteEntropy outputs the entropy report to all configured Writers.
func (m *MultiWriter) WriteEntropy(report *entropy.Report) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.WriteEntropy(report)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// WriteQuality outputs the quality result to all configured Writers.
func (m *MultiWriter) WriteQuality(result *quality.Result) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.WriteQuality(result)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides the shared output destination for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
