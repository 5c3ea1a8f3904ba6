package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tictactoe/internal/config"
)

var flagShowDefault bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration tictactoe would run with, as YAML.

Values come from the first config file found (--config, then
~/.tictactoe/config.yaml, then ./configs/tictactoe.yaml, then the built-in
default), with TICTACTOE_* environment variables applied on top.

Examples:
  tictactoe config
  tictactoe config --default > ~/.tictactoe/config.yaml
  TICTACTOE_DIFFICULTY=hard tictactoe config`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagShowDefault, "default", false, "Print the built-in default config file instead")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if flagShowDefault {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), string(data))
	return err
}
