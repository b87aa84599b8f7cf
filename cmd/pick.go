package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/marcus/dropdown/internal/output"
	"github.com/marcus/dropdown/pkg/dropdown"
	"github.com/marcus/dropdown/pkg/mouse"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var errCancelled = errors.New("selection cancelled")

var pickFlags dropdownFlags

var pickCmd = &cobra.Command{
	Use:   "pick [option...]",
	Short: "Pick one option interactively and print it",
	Long: `Show a dropdown on the terminal and print the confirmed option to stdout.

Tab moves focus between the dropdown and the Done button; leaving the
dropdown closes its list. Enter on Done prints the selection, ctrl+c aborts.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			output.Error("pick needs an interactive terminal")
			return errors.New("stdin is not a terminal")
		}

		cfg, err := loadConfig(pickFlags, args)
		if err != nil {
			output.Error("%v", err)
			return err
		}
		dd, err := newDropdown(cfg)
		if err != nil {
			output.Error("%v", err)
			return err
		}

		// The picker draws on stderr so stdout only carries the result.
		p := tea.NewProgram(newPickModel(dd),
			tea.WithOutput(os.Stderr),
			tea.WithMouseCellMotion(),
		)
		final, err := p.Run()
		if err != nil {
			return err
		}

		pm := final.(*pickModel)
		if !pm.submitted {
			return errCancelled
		}
		fmt.Fprintln(cmd.OutOrStdout(), pm.dd.Value())
		return nil
	},
}

func init() {
	addDropdownFlags(pickCmd, &pickFlags)
	rootCmd.AddCommand(pickCmd)
}

type pickFocus int

const (
	focusDropdown pickFocus = iota
	focusDone
)

// Picker layout: title line, blank line, then the dropdown.
const pickHeaderLines = 2

const regionDone = "done-button"

type pickKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
	Quit   key.Binding
	dd     dropdown.KeyMap
}

func newPickKeyMap(dd dropdown.KeyMap) pickKeyMap {
	return pickKeyMap{
		Next:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev")),
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "done")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		dd:     dd,
	}
}

func (k pickKeyMap) ShortHelp() []key.Binding {
	return append(k.dd.ShortHelp(), k.Next, k.Quit)
}

func (k pickKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var (
	pickTitle  = lipgloss.NewStyle().Bold(true)
	pickStatus = lipgloss.NewStyle().Foreground(dropdown.Muted)
	doneButton = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("238")).
			Padding(0, 2)
	doneButtonFocused = lipgloss.NewStyle().
				Foreground(lipgloss.Color("255")).
				Background(dropdown.Primary).
				Bold(true).
				Padding(0, 2)
)

// pickModel hosts a dropdown next to a Done button.
type pickModel struct {
	dd        *dropdown.Model
	keys      pickKeyMap
	help      help.Model
	hits      *mouse.Handler
	focus     pickFocus
	status    string
	submitted bool
}

func newPickModel(dd *dropdown.Model) *pickModel {
	dd.SetOrigin(0, pickHeaderLines)
	dd.Focus()
	return &pickModel{
		dd:   dd,
		keys: newPickKeyMap(dd.KeyMap()),
		help: help.New(),
		hits: mouse.NewHandler(),
	}
}

func (m *pickModel) Init() tea.Cmd {
	return nil
}

func (m *pickModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dropdown.ChangedMsg:
		m.status = fmt.Sprintf("selected %s", msg.Value)
		slog.Debug("pick: changed", "index", msg.Index, "value", msg.Value)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if m.focus == focusDropdown && m.dd.Consumes(msg) {
			return m, m.dd.Update(msg)
		}
		switch {
		case key.Matches(msg, m.keys.Next, m.keys.Prev):
			return m, m.toggleFocus()
		case key.Matches(msg, m.keys.Submit):
			if m.focus == focusDone {
				m.submitted = true
				return m, tea.Quit
			}
		}
		return m, nil

	case tea.MouseMsg:
		cmd := m.dd.Update(msg)
		action := m.hits.HandleMouse(msg)
		if action.Type == mouse.ActionClick && action.Region != nil && action.Region.ID == regionDone {
			m.focus = focusDone
			m.submitted = true
			return m, tea.Batch(cmd, tea.Quit)
		}
		if m.dd.FocusWithin() {
			m.focus = focusDropdown
		}
		return m, cmd
	}

	// Frame messages and anything else the dropdown scheduled.
	return m, m.dd.Update(msg)
}

func (m *pickModel) toggleFocus() tea.Cmd {
	if m.focus == focusDropdown {
		m.focus = focusDone
		return m.dd.Blur()
	}
	m.focus = focusDropdown
	m.dd.Focus()
	return nil
}

func (m *pickModel) View() string {
	title := "Select an option"
	if name := m.dd.Name(); name != "" {
		title = name
	}

	button := doneButton.Render("Done")
	if m.focus == focusDone {
		button = doneButtonFocused.Render("Done")
	}

	ddView := m.dd.View()
	// Button sits on the trigger's text row, two cells right of it.
	ddWidth := lipgloss.Width(strings.SplitN(ddView, "\n", 2)[0])
	m.hits.Clear()
	m.hits.HitMap.AddRect(regionDone, ddWidth+2, pickHeaderLines+1, lipgloss.Width(button), 1, nil)

	body := lipgloss.JoinHorizontal(lipgloss.Top, ddView, "  ", "\n"+button)

	var sb strings.Builder
	sb.WriteString(pickTitle.Render(title) + "\n\n")
	sb.WriteString(body + "\n\n")
	if m.status != "" {
		sb.WriteString(pickStatus.Render(m.status) + "\n")
	}
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}
