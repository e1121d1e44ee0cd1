package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nao1215/passwdgen/internal/config"
	"github.com/nao1215/passwdgen/internal/report"
)

// TestNewRootCmd tests the root command creation.
func TestNewRootCmd(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "passwdgen" {
			t.Errorf("expected use 'passwdgen', got %q", cmd.Use)
		}
	})

	t.Run("has short description", func(t *testing.T) {
		t.Parallel()
		if cmd.Short == "" {
			t.Error("expected non-empty short description")
		}
	})

	t.Run("has long description", func(t *testing.T) {
		t.Parallel()
		if cmd.Long == "" {
			t.Error("expected non-empty long description")
		}
	})

	t.Run("has version", func(t *testing.T) {
		t.Parallel()
		if cmd.Version == "" {
			t.Error("expected non-empty version")
		}
	})

	t.Run("has verbose flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.PersistentFlags().Lookup("verbose")
		if flag == nil {
			t.Fatal("expected verbose flag")
		}
		if flag.Shorthand != "v" {
			t.Errorf("expected shorthand 'v', got %q", flag.Shorthand)
		}
		if flag.DefValue != "false" {
			t.Errorf("expected default 'false', got %q", flag.DefValue)
		}
	})

	t.Run("has subcommands", func(t *testing.T) {
		t.Parallel()
		want := map[string]bool{
			"info":     false,
			"generate": false,
			"rng":      false,
			"wordlist": false,
			"init":     false,
			"version":  false,
		}
		for _, sub := range cmd.Commands() {
			name := strings.Fields(sub.Use)[0]
			if _, ok := want[name]; ok {
				want[name] = true
			}
		}
		for name, found := range want {
			if !found {
				t.Errorf("expected %s subcommand", name)
			}
		}
	})

	t.Run("silences usage and errors", func(t *testing.T) {
		t.Parallel()
		if !cmd.SilenceUsage {
			t.Error("expected SilenceUsage to be true")
		}
		if !cmd.SilenceErrors {
			t.Error("expected SilenceErrors to be true")
		}
	})
}

// TestSetupLogger tests logger creation at both verbosity levels.
func TestSetupLogger(t *testing.T) {
	t.Parallel()

	t.Run("non-verbose logger", func(t *testing.T) {
		t.Parallel()
		logger := setupLogger(false)
		if logger == nil {
			t.Fatal("expected non-nil logger")
		}
	})

	t.Run("verbose logger", func(t *testing.T) {
		t.Parallel()
		logger := setupLogger(true)
		if logger == nil {
			t.Fatal("expected non-nil logger")
		}
	})
}

// TestOpenReportOutput tests report output destination resolution.
func TestOpenReportOutput(t *testing.T) {
	t.Parallel()

	t.Run("falls back to given writer", func(t *testing.T) {
		t.Parallel()
		cfg := config.NewConfig()
		var buf bytes.Buffer

		output, closeOutput, err := openReportOutput(cfg, &buf)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer closeOutput() //nolint:errcheck // Test cleanup

		if output != &buf {
			t.Error("expected fallback writer to be returned")
		}
	})

	t.Run("creates report file with parent directories", func(t *testing.T) {
		t.Parallel()
		cfg := config.NewConfig()
		cfg.ReportFile = filepath.Join(t.TempDir(), "reports", "out.txt")

		output, closeOutput, err := openReportOutput(cfg, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output == nil {
			t.Fatal("expected non-nil output writer")
		}
		if err := closeOutput(); err != nil {
			t.Errorf("unexpected close error: %v", err)
		}
	})
}

// TestNewReportWriter tests report format selection.
func TestNewReportWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	t.Run("default is simple", func(t *testing.T) {
		t.Parallel()
		cfg := config.NewConfig()
		if _, ok := newReportWriter(cfg, &buf).(*report.SimpleWriter); !ok {
			t.Error("expected SimpleWriter by default")
		}
	})

	t.Run("json flag selects json", func(t *testing.T) {
		t.Parallel()
		cfg := config.NewConfig()
		cfg.JSONReport = true
		if _, ok := newReportWriter(cfg, &buf).(*report.JSONWriter); !ok {
			t.Error("expected JSONWriter when JSONReport set")
		}
	})

	t.Run("markdown flag selects markdown", func(t *testing.T) {
		t.Parallel()
		cfg := config.NewConfig()
		cfg.MarkdownReport = true
		if _, ok := newReportWriter(cfg, &buf).(*report.MarkdownWriter); !ok {
			t.Error("expected MarkdownWriter when MarkdownReport set")
		}
	})
}
