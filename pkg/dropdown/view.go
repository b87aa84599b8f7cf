package dropdown

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Mouse region identifiers
const (
	regionTrigger = "dropdown-trigger"
	regionListbox = "dropdown-listbox"
	regionOption  = "dropdown-option" // Data: option index
)

// Rows taken by the bordered trigger.
const triggerHeight = 3

// listWindow is the slice of options visible in the open list.
type listWindow struct {
	start, end   int
	above, below bool
}

func (m *Model) visibleCount() int {
	return min(m.maxVisible, len(m.options))
}

func (m *Model) clampScroll(offset int) int {
	return min(max(offset, 0), len(m.options)-m.visibleCount())
}

func (m *Model) window() listWindow {
	start := m.clampScroll(m.scrollOffset)
	end := start + m.visibleCount()
	return listWindow{
		start: start,
		end:   end,
		above: start > 0,
		below: end < len(m.options),
	}
}

// syncScroll centres the highlighted option whenever the list opens or the
// highlight moves while open.
func (m *Model) syncScroll() {
	if m.open && (!m.scrolledOpen || m.highlighted != m.scrolledHighlight) {
		m.scrollOffset = m.clampScroll(m.highlighted - m.visibleCount()/2)
	}
	m.scrolledOpen, m.scrolledHighlight = m.open, m.highlighted
}

// ScrollOffset returns the index of the first visible option.
func (m *Model) ScrollOffset() int {
	return m.window().start
}

// layout registers hit regions for the current state. Option regions carry
// their index, so clicks resolve without looking labels up.
func (m *Model) layout() {
	m.mouse.Clear()
	if m.disposed {
		return
	}

	x, y := m.originX, m.originY
	w := m.width + 4 // padding + border
	m.mouse.HitMap.AddRect(regionTrigger, x, y, w, triggerHeight, nil)
	if !m.open {
		return
	}

	win := m.window()
	top := y + triggerHeight
	h := win.end - win.start + 2
	if win.above {
		h++
	}
	if win.below {
		h++
	}
	m.mouse.HitMap.AddRect(regionListbox, x, top, w, h, nil)

	rowY := top + 1
	if win.above {
		rowY++
	}
	for i := win.start; i < win.end; i++ {
		m.mouse.HitMap.AddRect(regionOption, x+1, rowY+i-win.start, w-2, 1, i)
	}
}

// View renders the trigger and, while open, the list below it.
func (m *Model) View() string {
	m.layout()
	trigger := m.renderTrigger()
	if !m.open {
		return trigger
	}
	return lipgloss.JoinVertical(lipgloss.Left, trigger, m.renderList())
}

func (m *Model) renderTrigger() string {
	chevron := "▾"
	if m.open {
		chevron = "▴"
	}
	content := fit(m.options[m.selected], m.width-2) + " " + m.styles.Chevron.Render(chevron)
	return m.styles.Box(m.FocusWithin()).Width(m.width + 2).Render(content)
}

func (m *Model) renderList() string {
	win := m.window()
	lines := make([]string, 0, win.end-win.start+2)

	if win.above {
		lines = append(lines, m.styles.Indicator.Render(fit("↑ more above", m.width)))
	}
	for i := win.start; i < win.end; i++ {
		mark := "  "
		if i == m.selected {
			mark = " " + m.styles.Check.Render("✓")
		}
		style := m.styles.Option(i == m.highlighted, i == m.selected, i == m.hovered)
		lines = append(lines, style.Render(fit(m.options[i], m.width-2))+mark)
	}
	if win.below {
		lines = append(lines, m.styles.Indicator.Render(fit("↓ more below", m.width)))
	}

	return m.styles.Listbox.Width(m.width + 2).Render(strings.Join(lines, "\n"))
}

// fit truncates s to w cells and pads it to exactly w.
func fit(s string, w int) string {
	s = ansi.Truncate(s, w, "…")
	if pad := w - ansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}
