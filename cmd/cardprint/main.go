// Package main is the cardprint command line tool. It paginates a text file
// (or stdin) into print cards and writes them in one of the local formats.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pricofy/cardprint/internal/cards"
	"github.com/pricofy/cardprint/internal/config"
	"github.com/pricofy/cardprint/internal/render"
)

// emptyMessage is shown when the input holds no text.
const emptyMessage = "Nothing to print: the input is empty."

type options struct {
	maxChars  int
	threshold int
	format    string
	verbose   bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options
	var logger *zap.Logger

	cmd := &cobra.Command{
		Use:   "cardprint [file]",
		Short: "Split text into evenly sized print cards",
		Long: `cardprint reads plain text from a file (or stdin when no file or "-" is
given) and splits it into numbered cards for fixed-size print layout.

Paragraphs are separated by blank lines. Cards are filled sentence by
sentence up to --max-chars characters, then adjacent cards are evened out
until they differ by at most --threshold characters.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := zap.NewProductionConfig()
			cfg.OutputPaths = []string{"stderr"}
			cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
			if opts.verbose {
				cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = cfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts, logger)
		},
	}

	cmd.Flags().IntVarP(&opts.maxChars, "max-chars", "m", 0, "hard character cap per card (default from config, 320)")
	cmd.Flags().IntVarP(&opts.threshold, "threshold", "t", 0, "largest tolerated length gap between adjacent cards (default from config, 60)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", render.FormatText,
		"output format: "+strings.Join(localFormats(), ", "))
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

func localFormats() []string {
	var names []string
	for _, name := range render.Formats() {
		if !render.IsRemote(name) {
			names = append(names, name)
		}
	}
	return names
}

func run(cmd *cobra.Command, args []string, opts options, logger *zap.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("max-chars") {
		opts.maxChars = cfg.MaxCharsPerCard
	}
	if !cmd.Flags().Changed("threshold") {
		opts.threshold = cfg.RebalanceThreshold
	}

	r, err := render.ForFormat(opts.format)
	if err != nil {
		return err
	}

	text, err := readInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	doc, err := cards.Paginate(text, opts.maxChars, cards.WithRebalanceThreshold(opts.threshold))
	if err != nil {
		return err
	}
	logger.Debug("paginated",
		zap.Int("cards", len(doc.Cards)),
		zap.Int("chars", doc.Len()),
		zap.Int("maxChars", opts.maxChars),
		zap.Int("threshold", opts.threshold))

	if doc.Empty() {
		fmt.Fprintln(cmd.ErrOrStderr(), emptyMessage)
		return nil
	}

	return r.Render(cmd.OutOrStdout(), doc)
}

func readInput(stdin io.Reader, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(b), nil
	}

	b, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return string(b), nil
}
