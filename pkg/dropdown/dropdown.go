// Package dropdown implements an accessible single-select dropdown for
// bubbletea programs, following the WAI-ARIA combo-box / listbox pattern.
//
// The model keeps three pieces of state: the confirmed selection, the open
// flag and a keyboard highlight. The trigger shows the confirmed selection.
// The popup list shows every option, marks the selection with a check and
// the highlight with a background.
//
// # Quick Start
//
//	dd, err := dropdown.New([]string{"Red", "Green", "Blue"},
//	    dropdown.WithName("Color"),
//	    dropdown.WithOnChange(func(c dropdown.Change) { ... }),
//	)
//	dd.Focus()
//
//	// In Update():
//	cmd := dd.Update(msg)
//
//	// In View():
//	content := dd.View()
//
// # Keys (default profile)
//
//   - down: open the list, then move the highlight down
//   - up: move the highlight up
//   - enter: confirm the highlight and close
//   - esc: drop the highlight back to the selection and close
//
// # Focus
//
// Hosts move focus with Focus and Blur. Blur closes the list one frame
// later, and only if focus has not come back inside the dropdown by then.
// Clicks outside the dropdown's regions count as a blur.
package dropdown

import (
	"log/slog"
	"slices"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/dropdown/pkg/aria"
	"github.com/marcus/dropdown/pkg/frame"
	"github.com/marcus/dropdown/pkg/mouse"
)

const (
	defaultMaxVisible = 5
	defaultWidth      = 24
	minWidth          = 4
)

// Element identifies where focus sits inside the dropdown.
type Element int

const (
	ElementNone Element = iota // focus is outside the dropdown
	ElementTrigger
	ElementListbox
	ElementOption
)

func (e Element) String() string {
	switch e {
	case ElementTrigger:
		return "trigger"
	case ElementListbox:
		return "listbox"
	case ElementOption:
		return "option"
	default:
		return "none"
	}
}

// Change describes a confirmed selection change.
type Change struct {
	Index    int
	Value    string
	Previous int
}

// ChangedMsg is emitted through Update's command when the selection changes.
type ChangedMsg struct {
	ID string
	Change
}

// Model is a dropdown instance. It must be used from the bubbletea event
// loop only.
type Model struct {
	id      string
	name    string
	options []string
	profile Profile

	selected    int
	highlighted int
	open        bool

	focus      Element
	focusIndex int // option index while focus == ElementOption
	hovered    int // -1 when no option is hovered

	maxVisible   int
	width        int
	scrollOffset int

	// Last open/highlight pair seen by syncScroll.
	scrolledOpen      bool
	scrolledHighlight int

	styles   Styles
	keys     KeyMap
	onChange func(Change)
	logger   *slog.Logger

	mouse            *mouse.Handler
	originX, originY int
	focusCheck       *frame.Checker
	frameInterval    time.Duration
	disposed         bool

	initialSelected int
}

// Option configures a Model.
type Option func(*Model)

// WithName sets the accessible name.
func WithName(name string) Option {
	return func(m *Model) { m.name = name }
}

// WithID sets the listbox identifier referenced by aria-controls.
func WithID(id string) Option {
	return func(m *Model) {
		if id != "" {
			m.id = id
		}
	}
}

// WithOnChange registers a callback run on every selection change.
func WithOnChange(fn func(Change)) Option {
	return func(m *Model) { m.onChange = fn }
}

// WithProfile sets the keyboard profile.
func WithProfile(p Profile) Option {
	return func(m *Model) { m.profile = p }
}

// WithMaxVisible sets how many option rows the open list shows at once.
func WithMaxVisible(n int) Option {
	return func(m *Model) {
		if n > 0 {
			m.maxVisible = n
		}
	}
}

// WithWidth sets the content width of the trigger and the list.
func WithWidth(w int) Option {
	return func(m *Model) {
		if w >= minWidth {
			m.width = w
		}
	}
}

// WithSelected sets the initially selected option.
func WithSelected(i int) Option {
	return func(m *Model) { m.initialSelected = i }
}

// WithStyles replaces the default styles.
func WithStyles(s Styles) Option {
	return func(m *Model) { m.styles = s }
}

// WithKeyMap replaces the default key bindings.
func WithKeyMap(k KeyMap) Option {
	return func(m *Model) { m.keys = k }
}

// WithLogger sets the logger for state transitions. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithFrameInterval delays the focus-out check by d instead of the next loop
// iteration.
func WithFrameInterval(d time.Duration) Option {
	return func(m *Model) { m.frameInterval = d }
}

// New builds a closed dropdown over options. The options must be non-empty
// and unique; otherwise New returns a *ValidationError.
func New(options []string, opts ...Option) (*Model, error) {
	m := &Model{
		id:         aria.DefaultListID,
		options:    slices.Clone(options),
		hovered:    -1,
		maxVisible: defaultMaxVisible,
		width:      defaultWidth,
		styles:     DefaultStyles(),
		keys:       DefaultKeyMap(),
		logger:     slog.Default(),
		mouse:      mouse.NewHandler(),
	}
	for _, opt := range opts {
		opt(m)
	}

	if err := Validate(m.options); err != nil {
		return nil, err
	}
	if m.initialSelected < 0 || m.initialSelected >= len(m.options) {
		return nil, &ValidationError{Errors: []error{
			&IndexError{Index: m.initialSelected, Len: len(m.options)},
		}}
	}
	m.selected = m.initialSelected
	m.highlighted = m.initialSelected
	m.scrolledHighlight = m.highlighted

	m.focusCheck = frame.AfterFrame(m.checkFocus, frame.WithFrameInterval(m.frameInterval))
	m.layout()
	return m, nil
}

// ID returns the listbox identifier.
func (m *Model) ID() string { return m.id }

// Name returns the accessible name.
func (m *Model) Name() string { return m.name }

// Options returns a copy of the option labels.
func (m *Model) Options() []string { return slices.Clone(m.options) }

// Profile returns the keyboard profile.
func (m *Model) Profile() Profile { return m.profile }

// Selected returns the confirmed option index.
func (m *Model) Selected() int { return m.selected }

// Value returns the confirmed option label.
func (m *Model) Value() string { return m.options[m.selected] }

// Highlighted returns the highlighted option index.
func (m *Model) Highlighted() int { return m.highlighted }

// IsOpen reports whether the list is showing.
func (m *Model) IsOpen() bool { return m.open }

// KeyMap returns the active key bindings.
func (m *Model) KeyMap() KeyMap { return m.keys }

// Focused returns the element holding focus and, for ElementOption, its index.
func (m *Model) Focused() (Element, int) {
	if m.focus == ElementOption {
		return m.focus, m.focusIndex
	}
	return m.focus, -1
}

// FocusWithin reports whether focus is anywhere inside the dropdown.
func (m *Model) FocusWithin() bool {
	return m.focus != ElementNone
}

// Focus puts focus on the trigger.
func (m *Model) Focus() {
	m.FocusElement(ElementTrigger)
}

// FocusElement moves focus to the trigger or the listbox. The listbox only
// takes focus while open.
func (m *Model) FocusElement(el Element) {
	if m.disposed {
		return
	}
	switch el {
	case ElementTrigger:
		m.focus = ElementTrigger
	case ElementListbox:
		if m.open {
			m.focus = ElementListbox
		}
	}
}

// FocusOption moves focus onto option i while the list is open and reports
// whether it did.
func (m *Model) FocusOption(i int) bool {
	if m.disposed || !m.open || i < 0 || i >= len(m.options) {
		return false
	}
	m.focus = ElementOption
	m.focusIndex = i
	return true
}

// Blur moves focus outside the dropdown and returns the command for the
// deferred containment check. It returns nil when focus was already outside.
func (m *Model) Blur() tea.Cmd {
	if m.disposed || m.focus == ElementNone {
		return nil
	}
	m.focus = ElementNone
	return m.focusCheck.Schedule()
}

// checkFocus runs one frame after a blur. It reads live state, so stale or
// repeated checks are harmless.
func (m *Model) checkFocus() {
	if m.disposed {
		return
	}
	if !m.FocusWithin() && m.open {
		m.logger.Debug("dropdown: focus left, closing", "id", m.id)
		m.setOpen(false)
	}
}

// Dispose detaches the model. Pending frame checks and later messages are
// ignored.
func (m *Model) Dispose() {
	m.disposed = true
	m.focus = ElementNone
	m.mouse.Clear()
}

// SetOrigin places the dropdown's top-left corner at (x, y) for mouse hit
// testing.
func (m *Model) SetOrigin(x, y int) {
	m.originX, m.originY = x, y
	m.layout()
}

// Accessibility returns the ARIA contract for the current state.
func (m *Model) Accessibility() aria.Tree {
	return aria.Build(aria.Input{
		Name:             m.name,
		ListID:           m.id,
		Options:          m.options,
		Selected:         m.selected,
		Open:             m.open,
		FocusableOptions: m.profile == ProfileDirect,
	})
}

// Open shows the list without moving focus.
func (m *Model) Open() {
	if m.disposed {
		return
	}
	m.setOpen(true)
	m.afterUpdate()
}

// Close hides the list. The highlight is left as is.
func (m *Model) Close() {
	if m.disposed {
		return
	}
	m.setOpen(false)
	m.afterUpdate()
}

func (m *Model) setOpen(open bool) {
	if m.open == open {
		return
	}
	m.open = open
	if !open {
		m.hovered = -1
		if m.focus == ElementOption || m.focus == ElementListbox {
			m.focus = ElementTrigger
		}
	}
	m.logger.Debug("dropdown: toggled", "id", m.id, "open", open)
}
