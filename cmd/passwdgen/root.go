package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nao1215/passwdgen/internal/config"
	"github.com/nao1215/passwdgen/internal/log"
	"github.com/nao1215/passwdgen/internal/report"
)

// NewRootCmd creates the root command for passwdgen.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passwdgen",
		Short: "Password generation and entropy analysis utility",
		Long: `passwdgen generates passwords, measures password entropy, and tests
the quality of the operating system's random number generator.

Passwords can be built from character sets (letters, digits, symbols)
or from dictionary words joined by a separator. Either an explicit
length or a minimum entropy target sizes the result; the same entropy
model used for sizing also powers the 'info' command, so a generated
password always self-reports at least its target entropy.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewInfoCmd())
	cmd.AddCommand(NewGenerateCmd())
	cmd.AddCommand(NewRngCmd())
	cmd.AddCommand(NewWordlistCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// setupLogger creates a structured logger based on verbosity.
// The handler is wrapped in SecureHandler so password-bearing
// attributes never reach the log output.
func setupLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := log.NewSecureHandler(slog.NewTextHandler(os.Stderr, opts))
	return slog.New(handler)
}

// applyConfigFile merges the .passwdgen config file into cfg.
// An explicitly specified file must exist; an implicit one is optional.
func applyConfigFile(cfg *config.Config, explicitPath string) error {
	configPath := config.FindConfigFile(explicitPath)
	if configPath == "" {
		if explicitPath != "" {
			return fmt.Errorf("configuration file not found: %s", explicitPath)
		}
		return nil
	}

	cf, err := config.LoadConfigFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config file %s: %w", configPath, err)
	}
	return cf.Apply(cfg)
}

// openReportOutput resolves the report destination: the configured file
// (creating parent directories), or fallback when no file is set.
// Report files are created with 0600 because entropy reports describe
// real passwords.
func openReportOutput(cfg *config.Config, fallback io.Writer) (io.Writer, func() error, error) {
	if cfg.ReportFile == "" {
		return fallback, func() error { return nil }, nil
	}

	dir := filepath.Dir(cfg.ReportFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, f.Close, nil
}

// newReportWriter picks the report format requested by the config.
func newReportWriter(cfg *config.Config, output io.Writer) report.Writer {
	switch {
	case cfg.JSONReport:
		return report.NewJSONWriter(output)
	case cfg.MarkdownReport:
		return report.NewMarkdownWriter(output)
	default:
		return report.NewSimpleWriter(output)
	}
}
