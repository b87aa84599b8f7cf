package mouse

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 20, H: 10}

	cases := []struct {
		x, y     int
		expected bool
	}{
		{10, 10, true},  // Top-left corner
		{29, 10, true},  // Top-right edge (exclusive width)
		{10, 19, true},  // Bottom-left edge (exclusive height)
		{29, 19, true},  // Bottom-right corner
		{15, 15, true},  // Center
		{9, 10, false},  // Just left
		{30, 10, false}, // Just right (exclusive)
		{10, 9, false},  // Just above
		{10, 20, false}, // Just below (exclusive)
	}

	for _, tc := range cases {
		got := r.Contains(tc.x, tc.y)
		if got != tc.expected {
			t.Errorf("Rect(%+v).Contains(%d, %d) = %v, want %v", r, tc.x, tc.y, got, tc.expected)
		}
	}
}

func TestHitMapBasic(t *testing.T) {
	hm := NewHitMap()

	hm.AddRect("trigger", 0, 0, 20, 3, nil)
	hm.AddRect("option", 0, 4, 20, 1, 2)

	r := hm.Test(5, 1)
	if r == nil || r.ID != "trigger" {
		t.Errorf("expected hit on trigger, got %v", r)
	}

	r = hm.Test(5, 4)
	if r == nil || r.ID != "option" {
		t.Fatalf("expected hit on option, got %v", r)
	}
	if idx, ok := r.Data.(int); !ok || idx != 2 {
		t.Errorf("expected option data 2, got %v", r.Data)
	}

	r = hm.Test(5, 3)
	if r != nil {
		t.Errorf("expected no hit, got %v", r)
	}
}

func TestHitMapPriority(t *testing.T) {
	hm := NewHitMap()

	// Later regions have higher priority
	hm.AddRect("listbox", 0, 0, 20, 10, nil)
	hm.AddRect("option", 1, 2, 18, 1, 1)

	r := hm.Test(5, 2)
	if r == nil || r.ID != "option" {
		t.Errorf("expected hit on option, got %v", r)
	}

	r = hm.Test(5, 5)
	if r == nil || r.ID != "listbox" {
		t.Errorf("expected hit on listbox, got %v", r)
	}
}

func TestHitMapClear(t *testing.T) {
	hm := NewHitMap()

	hm.AddRect("region1", 0, 0, 50, 50, nil)
	hm.AddRect("region2", 60, 0, 50, 50, nil)

	if len(hm.Regions()) != 2 {
		t.Errorf("expected 2 regions, got %d", len(hm.Regions()))
	}

	hm.Clear()

	if len(hm.Regions()) != 0 {
		t.Errorf("expected 0 regions after clear, got %d", len(hm.Regions()))
	}
	if r := hm.Test(10, 10); r != nil {
		t.Errorf("expected no hit after clear, got %v", r)
	}
}

func TestHandleMouseActions(t *testing.T) {
	h := NewHandler()
	h.HitMap.AddRect("button", 10, 10, 30, 10, nil)

	action := h.HandleMouse(tea.MouseMsg{
		X:      20,
		Y:      15,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	if action.Type != ActionClick {
		t.Errorf("expected ActionClick, got %v", action.Type)
	}
	if action.Region == nil || action.Region.ID != "button" {
		t.Errorf("expected region 'button', got %v", action.Region)
	}

	action = h.HandleMouse(tea.MouseMsg{
		X:      25,
		Y:      15,
		Action: tea.MouseActionMotion,
	})
	if action.Type != ActionHover {
		t.Errorf("expected ActionHover, got %v", action.Type)
	}

	action = h.HandleMouse(tea.MouseMsg{
		X:      20,
		Y:      15,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonWheelDown,
	})
	if action.Type != ActionScrollDown {
		t.Errorf("expected ActionScrollDown, got %v", action.Type)
	}

	action = h.HandleMouse(tea.MouseMsg{
		X:      20,
		Y:      15,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonWheelUp,
	})
	if action.Type != ActionScrollUp {
		t.Errorf("expected ActionScrollUp, got %v", action.Type)
	}

	action = h.HandleMouse(tea.MouseMsg{
		X:      20,
		Y:      15,
		Action: tea.MouseActionRelease,
		Button: tea.MouseButtonLeft,
	})
	if action.Type != ActionNone {
		t.Errorf("expected ActionNone on release, got %v", action.Type)
	}
}

func TestHandleMouseMiss(t *testing.T) {
	h := NewHandler()
	h.HitMap.AddRect("button", 10, 10, 30, 10, nil)

	action := h.HandleMouse(tea.MouseMsg{
		X:      1,
		Y:      1,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	if action.Type != ActionClick {
		t.Errorf("expected ActionClick, got %v", action.Type)
	}
	if action.Region != nil {
		t.Errorf("expected no region on miss, got %v", action.Region)
	}
}

func TestHandlerClear(t *testing.T) {
	h := NewHandler()
	h.HitMap.AddRect("button", 10, 10, 30, 10, nil)

	h.Clear()

	if len(h.HitMap.Regions()) != 0 {
		t.Errorf("expected 0 regions after Clear, got %d", len(h.HitMap.Regions()))
	}
}
