package cli

import (
	"github.com/github/gh-progress/pkg/constants"
	"github.com/spf13/cobra"
)

// addBarFlags registers the flags shared by commands that draw a bar
func addBarFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("config", "c", "", "YAML file with bar settings; flags override its values")
	cmd.Flags().StringP("format", "f", constants.DefaultFormat, "Bar template (tokens: :bar :current :total :elapsed :eta :percent :rate)")
	cmd.Flags().IntP("total", "t", 0, "Number of ticks at which the bar completes")
	cmd.Flags().Int("current", 0, "Starting tick count")
	cmd.Flags().IntP("width", "w", 0, "Maximum bar width in columns (default: total)")
	cmd.Flags().String("complete", string(constants.DefaultCompleteGlyph), "Glyph for the completed part of the bar")
	cmd.Flags().String("incomplete", string(constants.DefaultIncompleteGlyph), "Glyph for the remaining part of the bar")
	cmd.Flags().String("head", "", "Glyph for the leading edge of the bar (default: complete glyph)")
	cmd.Flags().String("throttle", "", "Minimum time between redraws, e.g. 50ms; 0 redraws on every tick (default 16ms)")
	cmd.Flags().Bool("clear", false, "Remove the bar from the terminal when it completes")
	cmd.Flags().Bool("callback-on-terminate", false, "Run the completion callback after the terminal is released")
}

// barConfigFromFlags loads --config when given and applies every flag the
// user set explicitly on top of it. Unset flags only fill empty config fields.
func barConfigFromFlags(cmd *cobra.Command) (BarConfig, error) {
	var config BarConfig
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := LoadBarConfig(path)
		if err != nil {
			return config, err
		}
		config = loaded
	}

	flags := cmd.Flags()
	stringFlag := func(name string, target *string) {
		if flags.Changed(name) || *target == "" {
			*target, _ = flags.GetString(name)
		}
	}
	intFlag := func(name string, target *int) {
		if flags.Changed(name) || *target == 0 {
			*target, _ = flags.GetInt(name)
		}
	}
	boolFlag := func(name string, target *bool) {
		if flags.Changed(name) {
			*target, _ = flags.GetBool(name)
		}
	}

	stringFlag("format", &config.Format)
	intFlag("total", &config.Total)
	intFlag("current", &config.Current)
	intFlag("width", &config.Width)
	stringFlag("complete", &config.Complete)
	stringFlag("incomplete", &config.Incomplete)
	stringFlag("head", &config.Head)
	stringFlag("throttle", &config.RenderThrottle)
	boolFlag("clear", &config.Clear)
	boolFlag("callback-on-terminate", &config.CallbackOnTerminate)

	barConfigLog.Printf("Resolved bar config: format=%q, total=%d, width=%d, throttle=%q",
		config.Format, config.Total, config.Width, config.RenderThrottle)
	return config, nil
}
