package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/procpeek/proc-peek/internal/config"
	"github.com/procpeek/proc-peek/internal/errors"
	"github.com/procpeek/proc-peek/internal/ui"
)

var initForce bool

// initCmd writes a starter config file to the current directory.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a .proc-peek.yaml config file",
	Long: `Write a starter configuration file with the default settings.

The file is created in the current directory. Edit it to change the
refresh interval, default sort key, row count, or coloring thresholds.

Examples:
  proc-peek init
  proc-peek init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(initForce)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing config file")
}

// initFile mirrors the on-disk config layout, with defaults filled in.
type initFile struct {
	Interval   string `yaml:"interval"`
	Sort       string `yaml:"sort"`
	Count      int    `yaml:"count"`
	Thresholds struct {
		Warning  int `yaml:"warning"`
		Critical int `yaml:"critical"`
	} `yaml:"thresholds"`
}

func initCommand(force bool) error {
	configPath := filepath.Join(".", config.ConfigFileName)

	if _, err := os.Stat(configPath); err == nil && !force {
		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	defaults := config.DefaultConfig()
	var out initFile
	out.Interval = defaults.Interval.String()
	out.Sort = defaults.Sort
	out.Count = defaults.Count
	out.Thresholds.Warning = defaults.Thresholds.Warning
	out.Thresholds.Critical = defaults.Thresholds.Critical

	data, err := yaml.Marshal(&out)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to serialize config",
			"This is a bug; please report it")
	}

	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Failed to write %s", configPath),
			"Check directory permissions")
	}

	fmt.Printf("%s Created %s\n", ui.SymbolSuccess, configPath)
	return nil
}
