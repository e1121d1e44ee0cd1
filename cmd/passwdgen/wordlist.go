package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/nao1215/passwdgen/internal/wordlist"
)

// NewWordlistCmd creates the wordlist command group.
func NewWordlistCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wordlist",
		Short: "Manage dictionary word lists",
		Long: `Wordlist manages the dictionary files used for word-based password
generation and for the dictionary entropy hypothesis.`,
	}

	cmd.AddCommand(NewWordlistCleanCmd())
	return cmd
}

// NewWordlistCleanCmd creates the wordlist clean subcommand.
func NewWordlistCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean <input> <output>",
		Short: "Clean a raw word list for use as a password dictionary",
		Long: `Clean normalizes a raw word list into the format the other commands
expect: punctuation, digits, and whitespace are stripped from each
line, what remains is lowercased, and empty results and duplicates
are dropped. The output has one word per line.

Examples:
  # Clean the system word list into the local data directory
  passwdgen wordlist clean /usr/share/dict/words words.txt

  # Clean a Latin-1 encoded list
  passwdgen wordlist clean -e ISO-8859-1 raw.txt words.txt`,
		Args: cobra.ExactArgs(2),
		RunE: runWordlistCleanCmd,
	}

	cmd.Flags().StringP("encoding", "e", "",
		"IANA text encoding of the input and output files (default UTF-8)")

	return cmd
}

// runWordlistCleanCmd executes the wordlist clean subcommand.
func runWordlistCleanCmd(cmd *cobra.Command, args []string) error {
	encoding, err := cmd.Flags().GetString("encoding")
	if err != nil {
		return err
	}

	in, err := os.Open(args[0]) //nolint:gosec // User-provided path is intentional
	if err != nil {
		return fmt.Errorf("failed to open word list: %w", err)
	}
	defer in.Close()

	out, err := os.OpenFile(args[1], os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create cleaned word list: %w", err)
	}

	var opts []wordlist.Option
	if encoding != "" {
		opts = append(opts, wordlist.WithEncoding(encoding))
	}

	result, err := wordlist.Clean(in, out, opts...)
	if err != nil {
		_ = out.Close()
		return fmt.Errorf("failed to clean word list: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to finish cleaned word list: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Read %d words, wrote %d words in %s.\n",
		result.WordsRead, result.WordsWritten, result.Elapsed.Round(time.Millisecond))
	return nil
}
