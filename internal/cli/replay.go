package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/tessro/sift/internal/config"
	"github.com/tessro/sift/internal/logging"
	"github.com/tessro/sift/internal/provider"
	"github.com/tessro/sift/internal/replay"
)

var (
	replayProvider string
	replayFormat   string
	replayColor    string
	replayOut      string
)

var replayCmd = &cobra.Command{
	Use:   "replay <stream-file>",
	Short: "Re-extract assistant text from a captured stream",
	Long: `Run provider extraction over a saved stream file (e.g., a raw audit
log) and render the assistant's messages as a transcript. A one-line
completion verdict goes to stderr.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func runReplay(cmd *cobra.Command, args []string) error {
	cleanup, err := logging.Setup("", logging.ParseLevel(os.Getenv("SIFT_LOG_LEVEL")))
	if err != nil {
		logging.Discard()
	} else {
		defer cleanup()
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("provider") {
		cfg.Provider = replayProvider
	}
	cfg.Normalize()

	res, err := replay.Extract(args[0], provider.Resolve(cfg.Provider), cfg.Promise)
	if err != nil {
		return err
	}
	slog.Debug("replay finished",
		"file", args[0],
		"provider", res.Provider,
		"messages", len(res.Messages),
		"completed", res.Completed,
	)

	out, closeOut, err := replayOutput(cmd)
	if err != nil {
		return err
	}
	defer closeOut()

	switch strings.ToLower(replayFormat) {
	case "", "text":
		if err := replay.WriteText(out, res, textColorMode()); err != nil {
			return err
		}
	case "html":
		title := filepath.Base(args[0])
		if err := replay.WriteHTML(out, res, title); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported format: %s", replayFormat)
	}

	fmt.Fprintln(cmd.ErrOrStderr(), res.Summary())
	return nil
}

// replayOutput resolves -o: stdout by default, else the named file.
func replayOutput(cmd *cobra.Command) (io.Writer, func(), error) {
	if replayOut == "" {
		return cmd.OutOrStdout(), func() {}, nil
	}
	f, err := os.Create(replayOut)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output file: %w", err)
	}
	return f, func() { f.Close() }, nil
}

// textColorMode resolves --color for the text renderer. Auto means ANSI
// only when stdout is a terminal and no file output was requested.
func textColorMode() string {
	switch replayColor {
	case "always", "never":
		return replayColor
	default:
		if replayOut == "" && isatty.IsTerminal(os.Stdout.Fd()) {
			return "auto"
		}
		return "never"
	}
}

func init() {
	replayCmd.Flags().StringVar(&replayProvider, "provider", "", "event dialect: pi, codex, or claude")
	replayCmd.Flags().StringVar(&replayFormat, "format", "text", "output format: text or html")
	replayCmd.Flags().StringVar(&replayColor, "color", "auto", "ANSI rendering in text mode: auto, always, or never")
	replayCmd.Flags().StringVarP(&replayOut, "out", "o", "", "write output to this file instead of stdout")

	rootCmd.AddCommand(replayCmd)
}
