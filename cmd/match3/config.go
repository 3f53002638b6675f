package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-match3/internal/config"
)

var flagEffective bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the game configuration as YAML",
	Long: `Print the built-in default configuration, ready to copy to
~/.arcade/configs/match3.yaml and edit.

With --effective, print the configuration after the search order and
--config/--difficulty flags have been applied.

Examples:
  match3 config > ~/.arcade/configs/match3.yaml
  match3 config --effective --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	addGameConfigFlags(configCmd)
	configCmd.Flags().BoolVar(&flagEffective, "effective", false, "Print the resolved configuration instead of the default file")
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	if !flagEffective {
		_, err := os.Stdout.Write(config.GetDefaultYAML("match3"))
		return err
	}

	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	_, err = os.Stdout.Write(out)
	return err
}
