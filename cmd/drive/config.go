package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-drive/internal/config"
)

var (
	flagPreset   string
	flagDefaults bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game config",
	Long: `Print the drive config as YAML after the search order is applied:
--config, ~/.neon-drive/configs/drive.yaml, ./configs/drive.yaml, then the
built-in defaults. Use the output as a starting point for a custom file.

Examples:
  drive config > my-drive.yaml
  drive config --preset practice
  drive config --defaults`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagPreset, "preset", "", "Apply a difficulty preset: contest, practice, easy")
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults, ignoring config files")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if flagDefaults {
		_, err := cmd.OutOrStdout().Write(config.DefaultDriveYAML())
		return err
	}

	cfg, err := config.LoadDrive(flagConfig)
	if err != nil {
		return fmt.Errorf("cannot load config: %w", err)
	}
	if flagPreset != "" {
		preset, err := config.ParsePreset(flagPreset)
		if err != nil {
			return err
		}
		config.ApplyDrivePreset(&cfg, preset)
	}

	data, err := config.MarshalDrive(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
