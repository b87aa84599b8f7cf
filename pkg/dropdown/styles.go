package dropdown

import "github.com/charmbracelet/lipgloss"

// Palette, matching the modal and monitor colors.
var (
	Primary      = lipgloss.Color("212")
	Muted        = lipgloss.Color("241")
	BorderNormal = lipgloss.Color("240")
	BorderHover  = lipgloss.Color("245")
)

// Styles holds every style the dropdown renders with. It is a plain value;
// each Model carries its own copy.
type Styles struct {
	Trigger        lipgloss.Style
	TriggerFocused lipgloss.Style
	Chevron        lipgloss.Style
	Listbox        lipgloss.Style

	OptionNormal   lipgloss.Style
	OptionSelected lipgloss.Style
	Check          lipgloss.Style
	Indicator      lipgloss.Style

	HoverBackground     lipgloss.TerminalColor
	HighlightBackground lipgloss.TerminalColor
}

// DefaultStyles returns the default look.
func DefaultStyles() Styles {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderNormal).
		Padding(0, 1)

	return Styles{
		Trigger:        box,
		TriggerFocused: box.BorderForeground(Primary),
		Chevron:        lipgloss.NewStyle().Foreground(Muted),
		Listbox:        box,

		OptionNormal: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		OptionSelected: lipgloss.NewStyle().
			Foreground(Primary),
		Check: lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true),
		Indicator: lipgloss.NewStyle().Foreground(Muted),

		HoverBackground:     lipgloss.Color("236"),
		HighlightBackground: lipgloss.Color("238"),
	}
}

// Option returns the style of one option row. It depends only on its
// arguments.
func (s Styles) Option(highlighted, selected, hovered bool) lipgloss.Style {
	st := s.OptionNormal
	if selected {
		st = s.OptionSelected
	}
	if hovered {
		st = st.Background(s.HoverBackground)
	}
	if highlighted {
		st = st.Background(s.HighlightBackground).Bold(true)
	}
	return st
}

// Box returns the trigger style for the focus state.
func (s Styles) Box(focused bool) lipgloss.Style {
	if focused {
		return s.TriggerFocused
	}
	return s.Trigger
}
