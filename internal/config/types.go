package config

import "time"

// Config holds the user-tunable settings for proc-peek.
type Config struct {
	// Interval is the TUI refresh interval.
	Interval time.Duration `yaml:"interval"`

	// Sort is the default sort key: cpu, memory, name, or pid.
	Sort string `yaml:"sort"`

	// Count is the default row count for the one-shot listing.
	Count int `yaml:"count"`

	// Thresholds controls the warning/critical coloring of percentage
	// metrics in the TUI.
	Thresholds Thresholds `yaml:"thresholds"`
}

// Thresholds are percentage cutoffs for metric coloring.
type Thresholds struct {
	Warning  int `yaml:"warning"`
	Critical int `yaml:"critical"`
}

// Default values applied when a key is absent from the config file.
const (
	DefaultInterval = 2 * time.Second
	DefaultSort     = "cpu"
	DefaultCount    = 10
	DefaultWarning  = 70
	DefaultCritical = 90

	// MinInterval guards against refresh loops tight enough to burn a
	// core just sampling.
	MinInterval = 500 * time.Millisecond
)

// DefaultConfig returns a Config with all defaults filled in.
func DefaultConfig() *Config {
	return &Config{
		Interval: DefaultInterval,
		Sort:     DefaultSort,
		Count:    DefaultCount,
		Thresholds: Thresholds{
			Warning:  DefaultWarning,
			Critical: DefaultCritical,
		},
	}
}
