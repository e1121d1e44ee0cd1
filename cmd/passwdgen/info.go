package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/nao1215/passwdgen/internal/config"
	"github.com/nao1215/passwdgen/internal/entropy"
	"github.com/nao1215/passwdgen/internal/wordlist"
)

// NewInfoCmd creates the info command.
func NewInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Compute entropy information about one or more passwords",
		Long: `Info computes the entropy of a password under every character-class
hypothesis the password is consistent with, and under the dictionary
hypothesis when a word list is available.

The password is read from, in order of preference:
  1. --password-file (a text file, one password per line)
  2. piped standard input
  3. an interactive hidden prompt

Examples:
  # Interactively check a password
  passwdgen info

  # Check a piped password against a dictionary
  echo 'correct-horse-battery-staple' | passwdgen info -d words.txt

  # Check a file of passwords and write a JSON report
  passwdgen info --password-file passwords.txt --json -o report.json`,
		Args: cobra.NoArgs,
		RunE: runInfoCmd,
	}

	cmd.Flags().StringP("dictionary", "d", "",
		"Path to the dictionary file (plain text, one word per line)")
	cmd.Flags().StringP("encoding", "e", "",
		"IANA text encoding of input files (default UTF-8)")
	cmd.Flags().String("password-file", "",
		"Read passwords from a file instead of the prompt (one per line)")
	cmd.Flags().String("config", "",
		"Configuration file path (default: .passwdgen in current or home directory)")
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	return cmd
}

// runInfoCmd executes the info command.
func runInfoCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildInfoConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(getVerboseFlag(cmd))
	slog.SetDefault(logger)

	dict, err := loadDictionary(cfg, logger, false)
	if err != nil {
		return err
	}

	passwords, err := readPasswords(cfg, cmd.InOrStdin())
	if err != nil {
		return err
	}

	output, closeOutput, err := openReportOutput(cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer closeOutput() //nolint:errcheck // Best effort close

	writer := newReportWriter(cfg, output)
	opts := []entropy.Option{entropy.WithSeparator(cfg.Separator)}
	if dict != nil {
		opts = append(opts, entropy.WithDictionary(dict))
	}

	for _, passwd := range passwords {
		logger.Debug("estimating entropy", "password", passwd, "length", len(passwd))
		if _, err := writer.WriteEntropy(entropy.Estimate(passwd, opts...)); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}

	return nil
}

// buildInfoConfig creates a Config from the info command flags.
func buildInfoConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	if err := applyConfigFile(cfg, configPath); err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("dictionary") {
		if cfg.DictionaryPath, err = cmd.Flags().GetString("dictionary"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("encoding") {
		if cfg.Encoding, err = cmd.Flags().GetString("encoding"); err != nil {
			return nil, err
		}
	}
	if cfg.PasswordFile, err = cmd.Flags().GetString("password-file"); err != nil {
		return nil, err
	}
	if cfg.JSONReport, err = cmd.Flags().GetBool("json"); err != nil {
		return nil, err
	}
	if cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown"); err != nil {
		return nil, err
	}
	if cfg.ReportFile, err = cmd.Flags().GetString("output"); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadDictionary loads the word list resolved by the config.
// When required is false, a missing dictionary is not an error; the
// dictionary hypothesis is simply skipped.
func loadDictionary(cfg *config.Config, logger *slog.Logger, required bool) (*wordlist.Dictionary, error) {
	path := config.FindDictionary(cfg.DictionaryPath)
	if path == "" {
		if required {
			return nil, fmt.Errorf("no dictionary found: supply one with --dictionary or place words.txt in %s", config.XDGDataDir())
		}
		return nil, nil
	}

	var opts []wordlist.Option
	if cfg.Encoding != "" {
		opts = append(opts, wordlist.WithEncoding(cfg.Encoding))
	}

	dict, err := wordlist.LoadFile(path, opts...)
	if err != nil {
		return nil, err
	}
	logger.Debug("dictionary loaded", "path", path, "words", dict.Len())

	if required && dict.Len() == 0 {
		return nil, fmt.Errorf("dictionary %s contains no words", path)
	}
	return dict, nil
}

// readPasswords collects the passwords to analyze: from the password
// file when given, from piped stdin, or from an interactive hidden
// prompt as the last resort.
func readPasswords(cfg *config.Config, stdin io.Reader) ([]string, error) {
	if cfg.PasswordFile != "" {
		return readPasswordFile(cfg)
	}

	if f, ok := stdin.(*os.File); ok && isTerminal(f) {
		passwd, err := promptPassword()
		if err != nil {
			return nil, err
		}
		return []string{passwd}, nil
	}

	// Piped input: the whole stream is one password, minus the single
	// trailing newline a shell pipeline appends.
	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("failed to read password from stdin: %w", err)
	}
	passwd := strings.TrimSuffix(string(data), "\n")
	return []string{passwd}, nil
}

// readPasswordFile reads passwords from the configured file, one per line.
func readPasswordFile(cfg *config.Config) ([]string, error) {
	f, err := os.Open(cfg.PasswordFile) //nolint:gosec // User-provided path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to open password file: %w", err)
	}
	defer f.Close()

	var reader io.Reader = f
	if cfg.Encoding != "" {
		// Reuse the wordlist decoder so password files honor --encoding
		// the same way dictionaries do.
		decoded, err := wordlist.DecodeReader(f, cfg.Encoding)
		if err != nil {
			return nil, err
		}
		reader = decoded
	}

	var passwords []string
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			passwords = append(passwords, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read password file: %w", err)
	}
	return passwords, nil
}

// promptPassword asks for a password interactively without echoing it.
func promptPassword() (string, error) {
	var passwd string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Password to check").
				EchoMode(huh.EchoModePassword).
				Value(&passwd),
		),
	)
	if err := form.Run(); err != nil {
		return "", fmt.Errorf("password prompt failed: %w", err)
	}
	return passwd, nil
}

// isTerminal reports whether f is attached to a character device.
func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
