package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
	"github.com/marcus/dropdown/internal/output"
	"github.com/marcus/dropdown/pkg/aria"
	"github.com/spf13/cobra"
)

var (
	inspectFlags    dropdownFlags
	inspectOpen     bool
	inspectSelected int
	inspectPlain    bool
	inspectTree     bool
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [option...]",
	Short: "Show the accessibility report for an option list",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(inspectFlags, args)
		if err != nil {
			output.Error("%v", err)
			return err
		}
		tree, err := stateTree(cfg, inspectSelected, inspectOpen)
		if err != nil {
			output.Error("%v", err)
			return err
		}

		w := cmd.OutOrStdout()
		switch {
		case inspectTree:
			fmt.Fprintln(w, output.RenderTree(output.FromAria(tree), output.TreeRenderOptions{ShowDetails: true}))
			return nil
		case inspectPlain:
			_, err := io.WriteString(w, aria.Markdown(tree))
			return err
		}
		return renderReport(w, tree)
	},
}

func init() {
	addDropdownFlags(inspectCmd, &inspectFlags)
	inspectCmd.Flags().BoolVar(&inspectOpen, "open", false, "inspect with the list expanded")
	inspectCmd.Flags().IntVar(&inspectSelected, "selected", 0, "index of the confirmed option")
	inspectCmd.Flags().BoolVar(&inspectPlain, "plain", false, "print raw Markdown")
	inspectCmd.Flags().BoolVar(&inspectTree, "tree", false, "print the accessibility tree")
	rootCmd.AddCommand(inspectCmd)
}

func renderReport(w io.Writer, tree aria.Tree) error {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return err
	}
	out, err := r.Render(aria.Markdown(tree))
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}
