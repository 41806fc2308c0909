package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/github/gh-progress/pkg/constants"
	"github.com/github/gh-progress/pkg/progress"
	"github.com/spf13/cobra"
)

// NewHumanTimeCommand creates the humantime command
func NewHumanTimeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "humantime <duration>...",
		Short: "Format durations the way :elapsed and :eta display them",
		Long: `Format each argument as a human readable duration.

Arguments are milliseconds ("90061000") or Go durations ("1h30m").

Examples:
  ` + constants.CLIName.String() + ` humantime 999         # 999 ms
  ` + constants.CLIName.String() + ` humantime 90000       # 1 minute 30 seconds
  ` + constants.CLIName.String() + ` humantime 25h1m1s     # 1 day 1 hour 1 minute 1 second`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				formatted, err := formatHumanTimeArg(arg)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatted)
			}
			return nil
		},
	}
	return cmd
}

func formatHumanTimeArg(arg string) (string, error) {
	if ms, err := strconv.ParseFloat(arg, 64); err == nil {
		return progress.HumanTime(ms), nil
	}
	d, err := time.ParseDuration(arg)
	if err != nil {
		return "", fmt.Errorf("invalid duration %q: expected milliseconds or a duration like 1m30s", arg)
	}
	return progress.FormatDuration(d), nil
}
