package dropdown

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/dropdown/pkg/mouse"
)

// Update applies a key, mouse or frame message. The returned command may
// carry a ChangedMsg or a pending focus check.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.focusCheck.Handle(msg) {
		m.afterUpdate()
		return nil
	}
	if m.disposed {
		return nil
	}

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd = m.handleKey(msg)
	case tea.MouseMsg:
		cmd = m.handleMouse(msg)
	}
	m.afterUpdate()
	return cmd
}

// Consumes reports whether the dropdown acts on msg in its current state.
// Hosts use it to keep keys such as enter from reaching an enclosing form.
func (m *Model) Consumes(msg tea.KeyMsg) bool {
	if m.disposed || !m.FocusWithin() {
		return false
	}
	return key.Matches(msg, m.keys.Up, m.keys.Down, m.keys.Confirm, m.keys.Cancel)
}

func (m *Model) afterUpdate() {
	if m.disposed {
		return
	}
	m.syncScroll()
	m.layout()
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if !m.FocusWithin() {
		return nil
	}
	if m.profile == ProfileDirect {
		return m.handleKeyDirect(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.highlighted = max(m.highlighted-1, 0)

	case key.Matches(msg, m.keys.Down):
		if !m.open {
			m.setOpen(true)
			return nil
		}
		m.highlighted = min(m.highlighted+1, len(m.options)-1)

	case key.Matches(msg, m.keys.Confirm):
		// Enter never reaches the host, open or not.
		if m.open {
			return m.confirm(m.highlighted)
		}

	case key.Matches(msg, m.keys.Cancel):
		m.highlighted = m.selected
		m.setOpen(false)
	}
	return nil
}

func (m *Model) handleKeyDirect(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Up):
		return m.step(-1)

	case key.Matches(msg, m.keys.Down):
		if !m.open {
			m.setOpen(true)
			return nil
		}
		return m.step(1)

	case key.Matches(msg, m.keys.Confirm):
		switch m.focus {
		case ElementOption:
			return m.confirm(m.focusIndex)
		case ElementTrigger:
			m.setOpen(!m.open)
		}

	case key.Matches(msg, m.keys.Cancel):
		m.setOpen(false)
	}
	return nil
}

// step moves the selection itself by delta, clamped to the list.
func (m *Model) step(delta int) tea.Cmd {
	i := min(max(m.selected+delta, 0), len(m.options)-1)
	m.highlighted = i
	if m.open {
		m.focus = ElementOption
		m.focusIndex = i
	}
	return m.setSelected(i)
}

// confirm commits option i and closes the list.
func (m *Model) confirm(i int) tea.Cmd {
	m.highlighted = i
	cmd := m.setSelected(i)
	m.setOpen(false)
	return cmd
}

func (m *Model) setSelected(i int) tea.Cmd {
	prev := m.selected
	m.selected = i
	if prev == i {
		return nil
	}

	change := Change{Index: i, Value: m.options[i], Previous: prev}
	m.logger.Debug("dropdown: selection changed", "id", m.id, "index", i, "value", change.Value)
	if m.onChange != nil {
		m.onChange(change)
	}
	id := m.id
	return func() tea.Msg {
		return ChangedMsg{ID: id, Change: change}
	}
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	action := m.mouse.HandleMouse(msg)

	switch action.Type {
	case mouse.ActionClick:
		if action.Region == nil {
			return m.Blur()
		}
		switch action.Region.ID {
		case regionTrigger:
			m.focus = ElementTrigger
			m.setOpen(!m.open)
		case regionListbox:
			m.FocusElement(ElementListbox)
		case regionOption:
			idx, ok := action.Region.Data.(int)
			if !ok {
				return nil
			}
			m.FocusOption(idx)
			return m.confirm(idx)
		}

	case mouse.ActionHover:
		m.hovered = -1
		if action.Region != nil && action.Region.ID == regionOption {
			if idx, ok := action.Region.Data.(int); ok {
				m.hovered = idx
			}
		}

	case mouse.ActionScrollUp, mouse.ActionScrollDown:
		if !m.open || action.Region == nil || action.Region.ID == regionTrigger {
			return nil
		}
		delta := 1
		if action.Type == mouse.ActionScrollUp {
			delta = -1
		}
		m.scrollOffset = m.clampScroll(m.scrollOffset + delta)
	}
	return nil
}
