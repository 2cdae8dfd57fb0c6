package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/procpeek/proc-peek/internal/errors"
)

const (
	// ConfigFileName is the per-directory config file name.
	ConfigFileName = ".proc-peek.yaml"
	// GlobalConfigDir is the directory for global config, under $HOME.
	GlobalConfigDir = ".config/proc-peek"
	// GlobalConfigFile is the global config file name.
	GlobalConfigFile = "config.yaml"
)

// Load reads config from the specified path.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Config file not found",
				"Run 'proc-peek init' to create one, or specify a path with --config")
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file",
			"Check the file exists and is valid YAML")
	}

	return parseConfig(v)
}

// Find locates the config file using the search order:
// 1. Explicit path (from --config flag)
// 2. .proc-peek.yaml in the current directory
// 3. ~/.config/proc-peek/config.yaml (global defaults)
//
// Returns the path to the config file, or empty string if not found.
func Find(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine current directory",
			"Check directory permissions")
	}

	localConfig := filepath.Join(cwd, ConfigFileName)
	if _, err := os.Stat(localConfig); err == nil {
		return localConfig, nil
	}

	home, err := os.UserHomeDir()
	if err == nil {
		globalConfig := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
		if _, err := os.Stat(globalConfig); err == nil {
			return globalConfig, nil
		}
	}

	return "", nil
}

// LoadOrDefault loads config from the resolved path, or returns the
// defaults when no config file exists anywhere in the search order.
func LoadOrDefault(explicit string) (*Config, error) {
	path, err := Find(explicit)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return DefaultConfig(), nil
	}
	return Load(path)
}

// parseConfig converts viper config to our Config struct with defaults
// merged in, then validates the result.
func parseConfig(v *viper.Viper) (*Config, error) {
	v.SetDefault("interval", DefaultInterval.String())
	v.SetDefault("sort", DefaultSort)
	v.SetDefault("count", DefaultCount)
	v.SetDefault("thresholds.warning", DefaultWarning)
	v.SetDefault("thresholds.critical", DefaultCritical)

	cfg := &Config{
		Sort:  v.GetString("sort"),
		Count: v.GetInt("count"),
		Thresholds: Thresholds{
			Warning:  v.GetInt("thresholds.warning"),
			Critical: v.GetInt("thresholds.critical"),
		},
	}

	interval, err := time.ParseDuration(v.GetString("interval"))
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Invalid interval: %s", v.GetString("interval")),
			"Use a duration like 2s, 5s, or 1m")
	}
	cfg.Interval = interval

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks config values for consistency.
func Validate(cfg *Config) error {
	if cfg.Interval < MinInterval {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Interval too short: %s", cfg.Interval),
			fmt.Sprintf("Minimum interval is %s", MinInterval))
	}
	if cfg.Count < 1 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Count must be at least 1, got %d", cfg.Count),
			"Set count to a positive integer")
	}
	switch cfg.Sort {
	case "cpu", "memory", "name", "pid":
	default:
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown sort key: %q", cfg.Sort),
			"Valid sort keys are cpu, memory, name, pid")
	}
	if cfg.Thresholds.Warning < 1 || cfg.Thresholds.Warning > 100 ||
		cfg.Thresholds.Critical < 1 || cfg.Thresholds.Critical > 100 {
		return errors.New(errors.ErrConfig,
			"Thresholds must be between 1 and 100",
			"Check thresholds.warning and thresholds.critical")
	}
	if cfg.Thresholds.Warning >= cfg.Thresholds.Critical {
		return errors.New(errors.ErrConfig,
			"Warning threshold must be below the critical threshold",
			fmt.Sprintf("Got warning=%d, critical=%d", cfg.Thresholds.Warning, cfg.Thresholds.Critical))
	}
	return nil
}
