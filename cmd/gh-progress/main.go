package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/github/gh-progress/pkg/cli"
	"github.com/github/gh-progress/pkg/console"
	"github.com/github/gh-progress/pkg/constants"
	"github.com/spf13/cobra"
)

// Build-time variables set by GoReleaser
var version = "dev"

var rootCmd = &cobra.Command{
	Use:     constants.CLIName.String(),
	Short:   "Draw terminal progress bars from templates",
	Version: version,
	Long: `Draw single or multi-line progress bars in the terminal.

Templates mix text with tokens that are replaced on every render:
  :bar       the bar itself, sized to the remaining terminal width
  :current   ticks so far         :total     ticks at completion
  :elapsed   time since start     :eta       estimated time remaining
  :percent   completion ratio     :rate      ticks per second

Common Tasks:
  ` + constants.CLIName.String() + ` demo                   # Watch a bar fill up
  ` + constants.CLIName.String() + ` lines -t 120           # Tick once per line of stdin
  ` + constants.CLIName.String() + ` humantime 90000        # Format a duration in milliseconds

For detailed help on any command, use:
  ` + constants.CLIName.String() + ` [command] --help`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	rootCmd.SetOut(os.Stderr)

	// Errors are formatted in main
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	rootCmd.AddCommand(cli.NewDemoCommand())
	rootCmd.AddCommand(cli.NewLinesCommand())
	rootCmd.AddCommand(cli.NewHumanTimeCommand())
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		errMsg := err.Error()
		if strings.HasPrefix(errMsg, "✗") {
			fmt.Fprintln(os.Stderr, errMsg)
		} else {
			fmt.Fprintln(os.Stderr, console.FormatErrorMessage(errMsg))
		}
		os.Exit(1)
	}
}
