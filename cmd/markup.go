package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/marcus/dropdown/internal/config"
	"github.com/marcus/dropdown/internal/output"
	"github.com/marcus/dropdown/pkg/aria"
	"github.com/marcus/dropdown/pkg/dropdown"
	"github.com/spf13/cobra"
)

var (
	markupFlags    dropdownFlags
	markupOpen     bool
	markupSelected int
)

var markupCmd = &cobra.Command{
	Use:   "markup [option...]",
	Short: "Print the accessible HTML markup for an option list",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(markupFlags, args)
		if err != nil {
			output.Error("%v", err)
			return err
		}
		tree, err := stateTree(cfg, markupSelected, markupOpen)
		if err != nil {
			output.Error("%v", err)
			return err
		}
		return writeMarkup(cmd.Context(), cmd.OutOrStdout(), tree)
	},
}

func init() {
	addDropdownFlags(markupCmd, &markupFlags)
	markupCmd.Flags().BoolVar(&markupOpen, "open", false, "render with the list expanded")
	markupCmd.Flags().IntVar(&markupSelected, "selected", 0, "index of the confirmed option")
	rootCmd.AddCommand(markupCmd)
}

// stateTree builds the accessibility tree of a dropdown in the given state.
func stateTree(cfg config.Config, selected int, open bool) (aria.Tree, error) {
	dd, err := newDropdown(cfg, dropdown.WithSelected(selected))
	if err != nil {
		return aria.Tree{}, err
	}
	defer dd.Dispose()
	if open {
		dd.Open()
	}
	return dd.Accessibility(), nil
}

func writeMarkup(ctx context.Context, w io.Writer, tree aria.Tree) error {
	if err := aria.Markup(tree).Render(ctx, w); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}
