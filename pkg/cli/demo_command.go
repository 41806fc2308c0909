package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/github/gh-progress/pkg/console"
	"github.com/github/gh-progress/pkg/constants"
	"github.com/github/gh-progress/pkg/logger"
	"github.com/github/gh-progress/pkg/progress"
	"github.com/spf13/cobra"
)

var demoLog = logger.New("cli:demo")

// defaultDemoTotal is used when neither flags nor config set a total
const defaultDemoTotal = 100

// DemoConfig holds configuration for the demo command
type DemoConfig struct {
	Bar            BarConfig
	Interval       time.Duration   // Delay between ticks
	InterruptEvery int             // Print a log line every N ticks (0 disables)
	Interactive    bool            // Prompt for format and total
	Stream         progress.Stream // Bar output (default: stderr)
	Out            io.Writer       // Summary output (default: stderr)
}

// NewDemoCommand creates the demo command
func NewDemoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Draw a progress bar for simulated work",
		Long: `Draw a progress bar that advances one tick per interval until it completes.

Useful for trying out templates, glyphs and throttling before using them in a script.

Examples:
  ` + constants.CLIName.String() + ` demo                                  # 100 ticks with the default template
  ` + constants.CLIName.String() + ` demo -t 50 -f ':bar :percent :rate/s'  # Custom template
  ` + constants.CLIName.String() + ` demo --interrupt-every 10             # Print a log line every 10 ticks
  ` + constants.CLIName.String() + ` demo --config bar.yaml                # Load settings from a file
  ` + constants.CLIName.String() + ` demo --interactive                    # Prompt for template and total`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			barConfig, err := barConfigFromFlags(cmd)
			if err != nil {
				return err
			}
			interval, _ := cmd.Flags().GetDuration("interval")
			interruptEvery, _ := cmd.Flags().GetInt("interrupt-every")
			interactive, _ := cmd.Flags().GetBool("interactive")

			return RunDemo(cmd.Context(), DemoConfig{
				Bar:            barConfig,
				Interval:       interval,
				InterruptEvery: interruptEvery,
				Interactive:    interactive,
				Out:            cmd.ErrOrStderr(),
			})
		},
	}

	addBarFlags(cmd)
	cmd.Flags().Duration("interval", 50*time.Millisecond, "Delay between ticks")
	cmd.Flags().Int("interrupt-every", 0, "Print a log line above the bar every N ticks")
	cmd.Flags().BoolP("interactive", "i", false, "Prompt for the template and total")

	return cmd
}

// RunDemo advances a bar once per interval until it completes or ctx is done
func RunDemo(ctx context.Context, config DemoConfig) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if config.Out == nil {
		config.Out = os.Stderr
	}
	if config.Stream == nil {
		config.Stream = progress.NewTerminalStream(os.Stderr)
	}

	if config.Interactive {
		if err := promptBarConfig(&config.Bar); err != nil {
			return err
		}
	}
	if config.Bar.Total == 0 {
		config.Bar.Total = defaultDemoTotal
	}

	demoLog.Printf("Starting demo: total=%d, interval=%s, interruptEvery=%d", config.Bar.Total, config.Interval, config.InterruptEvery)

	started := time.Now()
	bar, err := config.Bar.NewBar(config.Stream, func(b *progress.Bar) {
		demoLog.Printf("Demo bar complete: current=%d", b.Current())
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(config.Out, console.FormatProgressMessage(fmt.Sprintf("Simulating %d ticks", bar.Total())))

	timer := time.NewTimer(config.Interval)
	defer timer.Stop()

	for tick := 1; !bar.Completed(); tick++ {
		select {
		case <-ctx.Done():
			bar.Terminate()
			return ctx.Err()
		case <-timer.C:
		}
		timer.Reset(config.Interval)

		bar.Tick(progress.Tokens{"step": tick})
		if config.InterruptEvery > 0 && tick%config.InterruptEvery == 0 && !bar.Completed() {
			bar.Interrupt(console.FormatInfoMessage(fmt.Sprintf("Processed %d of %d items", bar.Current(), bar.Total())))
		}
	}

	elapsed := console.FormatMutedText("in " + progress.FormatDuration(time.Since(started)))
	fmt.Fprintln(config.Out, console.FormatSuccessMessage(fmt.Sprintf("Completed %d ticks %s", bar.Current(), elapsed)))
	return nil
}

// promptBarConfig asks for the template and total, keeping current values
// as defaults
func promptBarConfig(config *BarConfig) error {
	format, err := console.PromptInput("Bar template", "Tokens: :bar :current :total :elapsed :eta :percent :rate", config.Format, func(s string) error {
		if s == "" {
			return fmt.Errorf("template cannot be empty")
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to read template: %w", err)
	}

	defaultTotal := config.Total
	if defaultTotal == 0 {
		defaultTotal = defaultDemoTotal
	}
	totalText, err := console.PromptInput("Total ticks", "The bar completes after this many ticks", strconv.Itoa(defaultTotal), validatePositiveInt)
	if err != nil {
		return fmt.Errorf("failed to read total: %w", err)
	}

	config.Format = format
	config.Total, _ = strconv.Atoi(totalText)
	return nil
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return fmt.Errorf("must be a positive whole number")
	}
	return nil
}
