package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/nao1215/markdown"

	"github.com/nao1215/passwdgen/internal/charset"
	"github.com/nao1215/passwdgen/internal/entropy"
	"github.com/nao1215/passwdgen/internal/quality"
)

// MarkdownWriter outputs reports in GitHub Flavored Markdown, for
// documentation and sharing. Built on the nao1215/markdown fluent
// builder for type-safe tables.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{baseWriter: newBaseWriter(output)}
}

// WriteEntropy outputs the entropy report as a Markdown table, one row
// per candidate hypothesis in priority order.
func (w *MarkdownWriter) WriteEntropy(report *entropy.Report) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Password Entropy Report")
	md.PlainText("")
	md.PlainText(fmt.Sprintf("Password length: **%d** characters", report.Length))
	md.PlainText("")

	rows := make([][]string, 0, 8)
	for _, class := range charset.All() {
		bits, ok := report.Bits(class.ID)
		if ok {
			rows = append(rows, []string{
				class.DisplayName,
				strconv.Itoa(class.Size()),
				fmt.Sprintf("%.6f", bits),
			})
		} else {
			rows = append(rows, []string{class.DisplayName, strconv.Itoa(class.Size()), "not in character set"})
		}
	}
	if report.HasDictionary {
		rows = append(rows, []string{
			dictionaryRowName,
			fmt.Sprintf("%d words", report.DictionaryWords),
			fmt.Sprintf("%.6f", report.DictionaryBits),
		})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Hypothesis", "Alphabet size", "Entropy (bits)"},
		Rows:   rows,
	})
	md.PlainText("")

	return len(md.String()), md.Build()
}

// WriteQuality outputs the quality result as a Markdown table with the
// theoretical uniform values alongside the measured ones.
func (w *MarkdownWriter) WriteQuality(result *quality.Result) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("RNG Quality Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Statistic", "Measured", "Theoretical uniform"},
		Rows: [][]string{
			{"Samples", strconv.Itoa(result.SampleSize), "-"},
			{"Mean", fmt.Sprintf("%.6f", result.Mean), "50.0"},
			{"Standard deviation", fmt.Sprintf("%.6f", result.StdDev), "29.154759"},
			{"Variance", fmt.Sprintf("%.6f", result.Variance), "850.0"},
			{"Time taken", fmt.Sprintf("%.3f s", result.Elapsed.Seconds()), "-"},
		},
	})
	md.PlainText("")

	return len(md.String()), md.Build()
}
