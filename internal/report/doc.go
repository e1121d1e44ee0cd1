// Package report renders entropy and RNG quality results.
//
// Writers implement the Writer interface and can be used
// interchangeably or composed via MultiWriter:
//   - SimpleWriter: human-readable text for terminal display
//   - JSONWriter: structured JSON for tool integration
//   - MarkdownWriter: GitHub Flavored Markdown for sharing
package report
