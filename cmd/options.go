package cmd

import (
	"log/slog"

	"github.com/marcus/dropdown/internal/config"
	"github.com/marcus/dropdown/pkg/dropdown"
	"github.com/spf13/cobra"
)

// dropdownFlags are the widget settings every subcommand accepts.
type dropdownFlags struct {
	name       string
	listID     string
	profile    string
	maxVisible int
	width      int
}

func addDropdownFlags(cmd *cobra.Command, f *dropdownFlags) {
	cmd.Flags().StringVarP(&f.name, "name", "n", "", "accessible name")
	cmd.Flags().StringVar(&f.listID, "list-id", "", "listbox identifier")
	cmd.Flags().StringVarP(&f.profile, "profile", "p", "", "keyboard profile: highlight or direct")
	cmd.Flags().IntVar(&f.maxVisible, "max-visible", 0, "rows shown in the open list")
	cmd.Flags().IntVarP(&f.width, "width", "w", 0, "content width")
}

func (f dropdownFlags) config(args []string) config.Config {
	return config.Config{
		Name:       f.name,
		Options:    args,
		ListID:     f.listID,
		Profile:    f.profile,
		MaxVisible: f.maxVisible,
		Width:      f.width,
	}
}

// loadConfig reads the config file and applies flags and positional options
// on top of it.
func loadConfig(f dropdownFlags, args []string) (config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.Load(getBaseDir())
	}
	if err != nil {
		return config.Config{}, err
	}
	return cfg.Merge(f.config(args)), nil
}

// newDropdown builds the widget described by cfg.
func newDropdown(cfg config.Config, extra ...dropdown.Option) (*dropdown.Model, error) {
	profile, err := dropdown.ParseProfile(cfg.Profile)
	if err != nil {
		return nil, err
	}

	opts := []dropdown.Option{
		dropdown.WithName(cfg.Name),
		dropdown.WithID(cfg.ListID),
		dropdown.WithProfile(profile),
		dropdown.WithMaxVisible(cfg.MaxVisible),
		dropdown.WithWidth(cfg.Width),
		dropdown.WithLogger(slog.Default()),
	}
	return dropdown.New(cfg.Options, append(opts, extra...)...)
}
