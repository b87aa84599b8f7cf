package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/marcus/dropdown/internal/config"
	"github.com/marcus/dropdown/internal/output"
	"github.com/marcus/dropdown/pkg/dropdown"
	"github.com/spf13/cobra"
)

var (
	initFlags dropdownFlags
	initForce bool
)

var initCmd = &cobra.Command{
	Use:   "init option...",
	Short: "Write a config file for an option list",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			path = filepath.Join(getBaseDir(), config.DefaultFile)
		}

		cfg := initFlags.config(args)
		if err := validateConfig(cfg); err != nil {
			output.Error("%v", err)
			return err
		}

		if _, err := os.Stat(path); err == nil && !initForce {
			output.Error("%s already exists (use --force to overwrite)", path)
			return fmt.Errorf("config exists: %s", path)
		}
		if err := config.SaveFile(path, &cfg); err != nil {
			output.Error("failed to write config: %v", err)
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "WROTE %s\n", path)
		return nil
	},
}

func init() {
	addDropdownFlags(initCmd, &initFlags)
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing config")
	rootCmd.AddCommand(initCmd)
}

// validateConfig rejects settings a dropdown could not be built from.
func validateConfig(cfg config.Config) error {
	if _, err := dropdown.ParseProfile(cfg.Profile); err != nil {
		return err
	}
	return dropdown.Validate(cfg.Options)
}
