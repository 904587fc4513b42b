package cli

import (
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tessro/sift/internal/config"
	"github.com/tessro/sift/internal/filter"
	"github.com/tessro/sift/internal/id"
	"github.com/tessro/sift/internal/logging"
	"github.com/tessro/sift/internal/provider"
	"github.com/tessro/sift/internal/status"
)

var (
	runProvider  string
	runPromise   string
	runExitCode  int
	runStart     int64
	runHeader    bool
	runRawLog    string
	runHeartbeat int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Filter an assistant event stream from stdin",
	Long: `Read the assistant's JSON Lines stream on stdin, extract assistant
text per the selected provider, and detect the completion promise.

The stream is always drained to EOF. On stream end the cleaned final
message (if any) goes to stdout and the process exits with the
completion exit code when a completion was recorded, 0 otherwise.`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	// Stdout is the final-output contract and stderr the status line, so
	// logs go to a file; failing that, nowhere.
	cleanup, err := logging.Setup("", logging.ParseLevel(os.Getenv("SIFT_LOG_LEVEL")))
	if err != nil {
		logging.Discard()
	} else {
		defer cleanup()
	}
	slog.SetDefault(slog.Default().With("run", id.Generate()))

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	applyRunFlags(cmd, &cfg)
	cfg.Normalize()

	if cfg.Provider != "" && !provider.Known(cfg.Provider) {
		slog.Warn("unknown provider, nothing will be extracted", "provider", cfg.Provider)
	}
	slog.Debug("starting run",
		"provider", cfg.Provider,
		"raw_log", cfg.RawLogPath,
		"heartbeat_interval", cfg.HeartbeatInterval,
	)

	f := filter.New(filter.Options{
		Provider:           provider.Resolve(cfg.Provider),
		Promise:            cfg.Promise,
		CompletionExitCode: cfg.CompletionExitCode,
		RunStartEpoch:      cfg.RunStartEpoch,
		Header:             cfg.Header,
		RawLog:             filter.OpenRawLog(cfg.RawLogPath),
	})

	hb := status.NewHeartbeat(f.Board(), time.Duration(cfg.HeartbeatInterval)*time.Second)
	hb.Start()
	defer hb.Stop()

	f.Run(os.Stdin)
	exitCode = f.Finalize()
	return nil
}

// applyRunFlags overlays explicitly-set flags, the highest config layer.
func applyRunFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("provider") {
		cfg.Provider = runProvider
	}
	if flags.Changed("promise") {
		cfg.Promise = runPromise
	}
	if flags.Changed("exit-code") {
		cfg.CompletionExitCode = runExitCode
	}
	if flags.Changed("run-start") {
		cfg.RunStartEpoch = runStart
	}
	if flags.Changed("header") {
		cfg.Header = runHeader
	}
	if flags.Changed("raw-log") {
		cfg.RawLogPath = runRawLog
	}
	if flags.Changed("heartbeat") {
		cfg.HeartbeatInterval = runHeartbeat
	}
}

func init() {
	runCmd.Flags().StringVar(&runProvider, "provider", "", "event dialect: pi, codex, or claude")
	runCmd.Flags().StringVar(&runPromise, "promise", config.DefaultPromise, "completion marker literal")
	runCmd.Flags().IntVar(&runExitCode, "exit-code", config.DefaultCompletionExitCode, "exit code when a completion is recorded")
	runCmd.Flags().Int64Var(&runStart, "run-start", 0, "run start in epoch seconds (enables the elapsed-time banner)")
	runCmd.Flags().BoolVar(&runHeader, "header", true, "write the clear-line escape and banner before the final output")
	runCmd.Flags().StringVar(&runRawLog, "raw-log", "", "append the verbatim input stream to this file")
	runCmd.Flags().IntVar(&runHeartbeat, "heartbeat", config.DefaultHeartbeatInterval, "seconds between status lines on stderr (0 disables)")

	rootCmd.AddCommand(runCmd)
}
