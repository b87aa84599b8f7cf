// Package aria describes the WAI-ARIA combo-box / listbox contract of a
// dropdown as data, and renders it as HTML or as a Markdown report.
package aria

import "strconv"

// Role values used by the combo-box pattern.
const (
	RoleCombobox = "combobox"
	RoleListbox  = "listbox"
	RoleOption   = "option"
)

// DefaultListID is the listbox identifier used when none is given.
const DefaultListID = "listoptions"

// Attr is a single markup attribute.
type Attr struct {
	Name  string
	Value string
}

// Node is one element of the accessibility tree. Attrs keep markup order.
type Node struct {
	Tag      string
	Attrs    []Attr
	Text     string
	Children []Node
}

// Attr returns the value of the named attribute.
func (n Node) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Role returns the node's role attribute.
func (n Node) Role() string {
	v, _ := n.Attr("role")
	return v
}

// Tree is the trigger and popup of one dropdown.
type Tree struct {
	Name    string
	Trigger Node
	Listbox Node
}

// Options returns the option nodes in display order.
func (t Tree) Options() []Node {
	return t.Listbox.Children
}

// Input is the state the contract is derived from.
type Input struct {
	Name     string
	ListID   string
	Options  []string
	Selected int
	Open     bool

	// FocusableOptions gives options tabindex 0 instead of -1.
	FocusableOptions bool
}

// Build derives the accessibility tree for in. Selected must index Options.
func Build(in Input) Tree {
	listID := in.ListID
	if listID == "" {
		listID = DefaultListID
	}

	active := ""
	if in.Selected >= 0 && in.Selected < len(in.Options) {
		active = in.Options[in.Selected]
	}

	trigger := Node{Tag: "button", Text: active}
	trigger.Attrs = append(trigger.Attrs,
		Attr{"type", "button"},
		Attr{"role", RoleCombobox},
		Attr{"aria-controls", listID},
		Attr{"aria-expanded", strconv.FormatBool(in.Open)},
		Attr{"aria-haspopup", RoleListbox},
	)
	if in.Name != "" {
		trigger.Attrs = append(trigger.Attrs, Attr{"aria-label", in.Name})
	}
	trigger.Attrs = append(trigger.Attrs,
		Attr{"aria-activedescendant", active},
		Attr{"tabindex", "0"},
	)

	display := "none"
	if in.Open {
		display = "block"
	}
	listbox := Node{Tag: "ul"}
	listbox.Attrs = append(listbox.Attrs,
		Attr{"style", "display: " + display},
		Attr{"role", RoleListbox},
		Attr{"id", listID},
	)
	if in.Name != "" {
		listbox.Attrs = append(listbox.Attrs, Attr{"aria-label", in.Name})
	}
	listbox.Attrs = append(listbox.Attrs, Attr{"tabindex", "-1"})

	optionTab := "-1"
	if in.FocusableOptions {
		optionTab = "0"
	}
	listbox.Children = make([]Node, 0, len(in.Options))
	for i, label := range in.Options {
		listbox.Children = append(listbox.Children, Node{
			Tag:  "li",
			Text: label,
			Attrs: []Attr{
				{"id", label},
				{"role", RoleOption},
				{"aria-selected", strconv.FormatBool(i == in.Selected)},
				{"tabindex", optionTab},
			},
		})
	}

	return Tree{Name: in.Name, Trigger: trigger, Listbox: listbox}
}
