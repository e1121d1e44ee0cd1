package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/passwdgen/internal/charset"
	"github.com/nao1215/passwdgen/internal/entropy"
	"github.com/nao1215/passwdgen/internal/quality"
)

// dictionaryRowName labels the dictionary hypothesis row in text output.
const dictionaryRowName = "Dictionary words"

// SimpleWriter outputs human-readable text reports for terminal display.
// Plain ASCII rather than ANSI color, so output pipes cleanly to files
// and other tools.
type SimpleWriter struct {
	baseWriter
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer) *SimpleWriter {
	return &SimpleWriter{baseWriter: newBaseWriter(output)}
}

// WriteEntropy outputs the entropy report as an aligned table, one row
// per candidate hypothesis. Hypotheses the password is not consistent
// with are shown as "not in character set" so users can see at a
// glance which alphabets cover their password.
func (w *SimpleWriter) WriteEntropy(report *entropy.Report) (int, error) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Password length: %d characters\n\n", report.Length))
	sb.WriteString("Entropy\n")
	sb.WriteString("-------\n")

	width := nameColumnWidth()
	for _, class := range charset.All() {
		bits, ok := report.Bits(class.ID)
		if ok {
			sb.WriteString(fmt.Sprintf("%-*s : %.6f bits\n", width, class.DisplayName, bits))
		} else {
			sb.WriteString(fmt.Sprintf("%-*s : not in character set\n", width, class.DisplayName))
		}
	}

	if report.HasDictionary {
		sb.WriteString(fmt.Sprintf("%-*s : %.6f bits (%d words)\n",
			width, dictionaryRowName, report.DictionaryBits, report.DictionaryWords))
	}
	sb.WriteString("\n")

	return w.output.Write([]byte(sb.String()))
}

// WriteQuality outputs the quality statistics with the theoretical
// uniform-distribution values the caller should judge them against.
func (w *SimpleWriter) WriteQuality(result *quality.Result) (int, error) {
	var sb strings.Builder

	sb.WriteString("Statistics\n")
	sb.WriteString("----------\n")
	sb.WriteString(fmt.Sprintf("Samples            : %d\n", result.SampleSize))
	sb.WriteString(fmt.Sprintf("Mean               : %.6f (should approach 50.0 as the sample size increases)\n", result.Mean))
	sb.WriteString(fmt.Sprintf("Standard deviation : %.6f (theoretical uniform value is 29.154759)\n", result.StdDev))
	sb.WriteString(fmt.Sprintf("Variance           : %.6f (theoretical uniform value is 850.0)\n", result.Variance))
	sb.WriteString(fmt.Sprintf("Time taken         : %.3f seconds\n\n", result.Elapsed.Seconds()))

	return w.output.Write([]byte(sb.String()))
}

// nameColumnWidth returns the widest hypothesis display name, so rows
// align regardless of which hypotheses are included.
func nameColumnWidth() int {
	width := len(dictionaryRowName)
	for _, class := range charset.All() {
		if len(class.DisplayName) > width {
			width = len(class.DisplayName)
		}
	}
	return width
}
