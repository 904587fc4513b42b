// Package cli wires the sift command tree.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// siftDir is the global --sift-dir flag value.
var siftDir string

// exitCode is the process exit status selected by the run command. The
// completion exit code travels through here rather than through an error:
// exiting 10 is the success path, not a failure.
var exitCode int

var rootCmd = &cobra.Command{
	Use:   "sift",
	Short: "Completion filter for coding-agent event streams",
	Long: `sift reads a coding assistant's JSON Lines event stream on stdin,
detects a completion marker in the assistant's final message, and exits
with a distinguishing code a supervising retry loop can branch on.

  codex exec --json "do the thing" | sift run --provider codex`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Set SIFT_DIR environment variable if --sift-dir is provided.
		// This allows all path helpers to use the override.
		if siftDir != "" {
			if err := os.Setenv("SIFT_DIR", siftDir); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&siftDir, "sift-dir", "", "base directory for sift data (overrides ~/.sift)")
}

// Execute runs the command tree and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return exitCode
}
