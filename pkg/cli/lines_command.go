package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/github/gh-progress/pkg/console"
	"github.com/github/gh-progress/pkg/constants"
	"github.com/github/gh-progress/pkg/logger"
	"github.com/github/gh-progress/pkg/progress"
	"github.com/github/gh-progress/pkg/stringutil"
	"github.com/spf13/cobra"
)

var linesLog = logger.New("cli:lines")

// maxLineTokenLength bounds the :line token so the bar keeps some room
const maxLineTokenLength = 40

// LinesConfig holds configuration for the lines command
type LinesConfig struct {
	Bar    BarConfig
	Input  io.Reader       // Lines to count (default: stdin)
	Echo   io.Writer       // Receives each line when Passthrough is set (default: stdout)
	Stream progress.Stream // Bar output (default: stderr)
	Out    io.Writer       // Summary output (default: stderr)

	Passthrough bool // Copy input lines to Echo
}

// NewLinesCommand creates the lines command
func NewLinesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lines",
		Short: "Tick a progress bar once per line read from stdin",
		Long: `Read stdin line by line and advance the bar once per line.

The most recent line is available to the template as the :line token.
The bar is drawn on stderr so stdout can be used with --passthrough.

Examples:
  find . -type f | ` + constants.CLIName.String() + ` lines -t "$(find . -type f | wc -l)"
  make 2>&1 | ` + constants.CLIName.String() + ` lines -t 240 -f ':percent :line' --passthrough > build.log`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			barConfig, err := barConfigFromFlags(cmd)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("format") && barConfig.Format == constants.DefaultFormat {
				barConfig.Format = constants.DefaultFormat + " :line"
			}
			passthrough, _ := cmd.Flags().GetBool("passthrough")

			return RunLines(LinesConfig{
				Bar:         barConfig,
				Input:       cmd.InOrStdin(),
				Echo:        cmd.OutOrStdout(),
				Out:         cmd.ErrOrStderr(),
				Passthrough: passthrough,
			})
		},
	}

	addBarFlags(cmd)
	cmd.Flags().Bool("passthrough", false, "Copy every input line to stdout")

	return cmd
}

// RunLines ticks a bar for every line of input. Input ending before the
// total is reached leaves the bar at its last value.
func RunLines(config LinesConfig) error {
	if config.Input == nil {
		config.Input = os.Stdin
	}
	if config.Echo == nil {
		config.Echo = os.Stdout
	}
	if config.Out == nil {
		config.Out = os.Stderr
	}
	if config.Stream == nil {
		config.Stream = progress.NewTerminalStream(os.Stderr)
	}

	bar, err := config.Bar.NewBar(config.Stream, nil)
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(config.Input)
	count := 0
	for scanner.Scan() {
		line := scanner.Text()
		count++
		if config.Passthrough {
			fmt.Fprintln(config.Echo, line)
		}
		bar.Tick(progress.Tokens{"line": stringutil.Truncate(line, maxLineTokenLength)})
	}
	if err := scanner.Err(); err != nil {
		bar.Terminate()
		return fmt.Errorf("failed to read input: %w", err)
	}

	linesLog.Printf("Input finished: lines=%d, total=%d, completed=%t", count, bar.Total(), bar.Completed())
	if !bar.Completed() {
		bar.Terminate()
		fmt.Fprintln(config.Out, console.FormatWarningMessage(fmt.Sprintf("Input ended after %d of %d lines", count, bar.Total())))
		return nil
	}
	if count > bar.Total() {
		fmt.Fprintln(config.Out, console.FormatWarningMessage(fmt.Sprintf("Read %d lines, more than the expected %d", count, bar.Total())))
		return nil
	}
	fmt.Fprintln(config.Out, console.FormatSuccessMessage(fmt.Sprintf("Read %d lines", count)))
	return nil
}
