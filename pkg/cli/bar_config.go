package cli

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/github/gh-progress/pkg/logger"
	"github.com/github/gh-progress/pkg/progress"
	"github.com/goccy/go-yaml"
)

var barConfigLog = logger.New("cli:bar_config")

// BarConfig holds progress bar settings read from a YAML file or flags
type BarConfig struct {
	Format              string `yaml:"format"`
	Total               int    `yaml:"total"`
	Current             int    `yaml:"current,omitempty"`
	Width               int    `yaml:"width,omitempty"`
	Head                string `yaml:"head,omitempty"`
	Complete            string `yaml:"complete,omitempty"`
	Incomplete          string `yaml:"incomplete,omitempty"`
	RenderThrottle      string `yaml:"renderThrottle,omitempty"` // Go duration or milliseconds; "0" renders every tick
	Clear               bool   `yaml:"clear,omitempty"`
	CallbackOnTerminate bool   `yaml:"callbackOnTerminate,omitempty"`
}

// LoadBarConfig reads a BarConfig from a YAML file
func LoadBarConfig(path string) (BarConfig, error) {
	barConfigLog.Printf("Loading bar config: path=%s", path)

	var config BarConfig
	content, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("failed to read bar config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(content, &config); err != nil {
		return config, fmt.Errorf("failed to parse bar config %s: %w", path, err)
	}
	if _, err := parseThrottle(config.RenderThrottle); err != nil {
		return config, fmt.Errorf("invalid renderThrottle in %s: %w", path, err)
	}
	return config, nil
}

// Options converts the config into progress bar options drawing on stream
func (c BarConfig) Options(stream progress.Stream, callback func(*progress.Bar)) (progress.Options, error) {
	throttle, err := parseThrottle(c.RenderThrottle)
	if err != nil {
		return progress.Options{}, err
	}
	return progress.Options{
		Current:             c.Current,
		Total:               c.Total,
		Width:               c.Width,
		Stream:              stream,
		Head:                c.Head,
		Complete:            c.Complete,
		Incomplete:          c.Incomplete,
		RenderThrottle:      throttle,
		Clear:               c.Clear,
		Callback:            callback,
		CallbackOnTerminate: c.CallbackOnTerminate,
	}, nil
}

// NewBar creates a progress bar from the config
func (c BarConfig) NewBar(stream progress.Stream, callback func(*progress.Bar)) (*progress.Bar, error) {
	opts, err := c.Options(stream, callback)
	if err != nil {
		return nil, err
	}
	bar, err := progress.NewWithOptions(c.Format, opts)
	if err != nil {
		return nil, fmt.Errorf("invalid progress bar configuration: %w", err)
	}
	return bar, nil
}

// parseThrottle accepts a Go duration ("50ms") or a bare number of
// milliseconds ("16"). An empty value selects the bar's default.
func parseThrottle(value string) (*time.Duration, error) {
	if value == "" {
		return nil, nil
	}
	if ms, err := strconv.Atoi(value); err == nil {
		if ms < 0 {
			return nil, fmt.Errorf("render throttle must not be negative: %s", value)
		}
		return progress.Throttle(time.Duration(ms) * time.Millisecond), nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return nil, fmt.Errorf("invalid render throttle %q: expected a duration like 50ms or a number of milliseconds", value)
	}
	if d < 0 {
		return nil, fmt.Errorf("render throttle must not be negative: %s", value)
	}
	return progress.Throttle(d), nil
}
