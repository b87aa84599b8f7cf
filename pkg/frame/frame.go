// Package frame defers work to the next rendering frame of a bubbletea program.
//
// A Checker wraps a callback. Schedule returns a command whose message comes
// back through Update on a later loop iteration, after the current View has
// been produced. Handle runs the callback when that message arrives.
//
//	check := frame.AfterFrame(func() {
//	    if !m.focusInside() {
//	        m.close()
//	    }
//	})
//
//	// On blur:
//	return check.Schedule()
//
//	// In Update():
//	if check.Handle(msg) {
//	    return nil
//	}
//
// Every Schedule call delivers its own message. Nothing is coalesced or
// cancelled, so callbacks should read live state instead of values captured
// at scheduling time.
package frame

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Msg is delivered once per Schedule call.
type Msg struct {
	checker *Checker
	seq     uint64
}

// Seq is the scheduling sequence number of this message, starting at 1.
func (m Msg) Seq() uint64 { return m.seq }

// Checker runs a callback one frame after it is scheduled.
type Checker struct {
	fn        func()
	interval  time.Duration
	scheduled uint64
	ran       uint64
}

// Option configures a Checker.
type Option func(*Checker)

// WithFrameInterval delays delivery by d, which lines the callback up with
// the renderer's next flush instead of the next loop iteration.
func WithFrameInterval(d time.Duration) Option {
	return func(c *Checker) {
		if d > 0 {
			c.interval = d
		}
	}
}

// AfterFrame returns a Checker for fn.
func AfterFrame(fn func(), opts ...Option) *Checker {
	c := &Checker{fn: fn}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Schedule returns a command that delivers this checker's Msg on the next
// frame. It does not block.
func (c *Checker) Schedule() tea.Cmd {
	c.scheduled++
	msg := Msg{checker: c, seq: c.scheduled}
	if c.interval > 0 {
		return tea.Tick(c.interval, func(time.Time) tea.Msg {
			return msg
		})
	}
	return func() tea.Msg {
		return msg
	}
}

// Handle runs the callback if msg was produced by this checker's Schedule
// and reports whether it did.
func (c *Checker) Handle(msg tea.Msg) bool {
	m, ok := msg.(Msg)
	if !ok || m.checker != c {
		return false
	}
	c.ran++
	if c.fn != nil {
		c.fn()
	}
	return true
}

// Pending returns how many scheduled frames have not been handled yet.
func (c *Checker) Pending() int {
	return int(c.scheduled - c.ran)
}
