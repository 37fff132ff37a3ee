package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/sacrifice-runner/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in YAML configuration. Save it to
~/.sacrifice/configs/sacrifice.yaml or ./configs/sacrifice.yaml and edit
the values you want to change; missing keys keep their defaults.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	},
}
