package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

// boardConfig is the YAML shape of a --config file. Every field is
// optional; explicit command-line flags always win over file values.
type boardConfig struct {
	Rows      int    `yaml:"rows"`
	Cols      int    `yaml:"cols"`
	Mines     int    `yaml:"mines"`
	Algorithm string `yaml:"algorithm"`
}

func loadConfig(path string) (boardConfig, error) {
	var config boardConfig

	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("parse config %s: %w", path, err)
	}
	return config, nil
}

// applyConfig fills in board settings from the config file for every flag
// the user did not set explicitly.
func applyConfig(cmd *cobra.Command, path string) error {
	config, err := loadConfig(path)
	if err != nil {
		return err
	}

	if config.Rows != 0 && !cmd.Flags().Changed("rows") {
		rows = config.Rows
	}
	if config.Cols != 0 && !cmd.Flags().Changed("cols") {
		cols = config.Cols
	}
	if config.Mines != 0 && !cmd.Flags().Changed("mines") {
		mines = config.Mines
	}
	if config.Algorithm != "" && !cmd.Flags().Changed("algorithm") {
		if err := (*algorithmValue)(&algorithm).Set(config.Algorithm); err != nil {
			return fmt.Errorf("config %s: %w", path, err)
		}
	}
	return nil
}
