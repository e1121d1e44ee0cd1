package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/nao1215/passwdgen/internal/charset"
	"github.com/nao1215/passwdgen/internal/config"
	"github.com/nao1215/passwdgen/internal/entropy"
	"github.com/nao1215/passwdgen/internal/password"
	"github.com/nao1215/passwdgen/internal/wordlist"
)

// NewGenerateCmd creates the generate command.
func NewGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random password",
		Long: `Generate produces a random password using a cryptographically secure
random source.

The default charset is "dict": the password is made of random dictionary
words joined by a separator, which tends to be far easier to memorize
than random characters at the same entropy. Any character-class charset
switches to character-based generation.

With --length, exactly that many words or characters are drawn. With
--min-entropy, the smallest size whose entropy meets the target is used.
Otherwise the defaults apply (4 words or 12 characters).

Examples:
  # Four dictionary words joined by dashes
  passwdgen generate

  # A 16-character alphanumeric password
  passwdgen generate --charset alpha-numeric -l 16

  # At least 70 bits of entropy from printable characters
  passwdgen generate --charset printable -m 70

  # Copy to the clipboard instead of printing
  passwdgen generate -c`,
		Args: cobra.NoArgs,
		RunE: runGenerateCmd,
	}

	cmd.Flags().StringP("charset", "t", config.DefaultCharset.String(),
		fmt.Sprintf("Character set to use (%s)", strings.Join(charset.Names(), ", ")))
	cmd.Flags().IntP("length", "l", 0,
		"Number of characters (or words, for the dict charset) to generate")
	cmd.Flags().IntP("min-entropy", "m", 0,
		"Minimum entropy of the generated password, in bits")
	cmd.Flags().StringP("separator", "s", config.DefaultSeparatorName,
		fmt.Sprintf("Word separator for the dict charset (%s)", strings.Join(config.SeparatorNames(), ", ")))
	cmd.Flags().StringP("dictionary", "d", "",
		"Path to the dictionary file (plain text, one word per line)")
	cmd.Flags().StringP("encoding", "e", "",
		"IANA text encoding of the dictionary file (default UTF-8)")
	cmd.Flags().BoolP("info", "i", false,
		"Also print the entropy report for the generated password")
	cmd.Flags().BoolP("clipboard", "c", false,
		"Copy the password to the clipboard instead of printing it")
	cmd.Flags().String("config", "",
		"Configuration file path (default: .passwdgen in current or home directory)")

	return cmd
}

// runGenerateCmd executes the generate command.
func runGenerateCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildGenerateConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(getVerboseFlag(cmd))
	slog.SetDefault(logger)

	var dict *wordlist.Dictionary
	if cfg.Charset == charset.Dict {
		if dict, err = loadDictionary(cfg, logger, true); err != nil {
			return err
		}
	}

	passwd, err := password.NewGenerator().Generate(buildRequest(cfg, dict))
	if err != nil {
		return fmt.Errorf("failed to generate password: %w", err)
	}

	if cfg.Clipboard {
		if err := clipboard.WriteAll(passwd); err != nil {
			return fmt.Errorf("failed to copy password to clipboard: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Password copied to clipboard.")
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), passwd)
	}

	if cfg.ShowInfo {
		opts := []entropy.Option{entropy.WithSeparator(cfg.Separator)}
		if dict != nil {
			opts = append(opts, entropy.WithDictionary(dict))
		}
		writer := newReportWriter(cfg, cmd.OutOrStdout())
		if _, err := writer.WriteEntropy(entropy.Estimate(passwd, opts...)); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}

	return nil
}

// buildGenerateConfig creates a Config from the generate command flags.
// Flags beat config-file defaults, which beat built-in defaults.
func buildGenerateConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	if err := applyConfigFile(cfg, configPath); err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("charset") {
		name, err := cmd.Flags().GetString("charset")
		if err != nil {
			return nil, err
		}
		if cfg.Charset, err = charset.Parse(name); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("separator") {
		name, err := cmd.Flags().GetString("separator")
		if err != nil {
			return nil, err
		}
		if cfg.Separator, err = config.ParseSeparator(name); err != nil {
			return nil, err
		}
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
	if cmd.Flags().Changed("length") {
		length, err := cmd.Flags().GetInt("length")
		if err != nil {
			return nil, err
		}
		// One flag covers both modes; which field it lands in depends on
		// the charset.
		if cfg.Charset == charset.Dict {
			cfg.WordCount = length
		} else {
			cfg.Length = length
		}
	}
	if cmd.Flags().Changed("min-entropy") {
		minEntropy, err := cmd.Flags().GetInt("min-entropy")
		if err != nil {
			return nil, err
		}
		cfg.MinEntropy = float64(minEntropy)
	}
	if cfg.ShowInfo, err = cmd.Flags().GetBool("info"); err != nil {
		return nil, err
	}
	if cfg.Clipboard, err = cmd.Flags().GetBool("clipboard"); err != nil {
		return nil, err
	}

	return cfg, nil
}

// buildRequest maps the resolved configuration onto a generation request.
func buildRequest(cfg *config.Config, dict *wordlist.Dictionary) password.Request {
	if cfg.Charset == charset.Dict {
		return password.Request{
			Mode:       password.ModeWords,
			Dictionary: dict,
			Separator:  cfg.Separator,
			WordCount:  cfg.WordCount,
			MinEntropy: cfg.MinEntropy,
		}
	}
	return password.Request{
		Mode:       password.ModeCharacters,
		Classes:    []charset.ID{cfg.Charset},
		Length:     cfg.Length,
		MinEntropy: cfg.MinEntropy,
	}
}
