package output

import (
	"fmt"
	"strings"

	"github.com/marcus/dropdown/pkg/aria"
)

// TreeNode represents a node in a tree structure for rendering
type TreeNode struct {
	Role     string
	Text     string
	Details  []string // rendered as key=value pairs after the text
	Selected bool
	Children []TreeNode
}

// TreeRenderOptions configures tree rendering behavior
type TreeRenderOptions struct {
	MaxDepth    int  // 0 = unlimited
	ShowDetails bool // Whether to show attributes
}

// selectedMark returns the marker for the confirmed option
func selectedMark(selected bool) string {
	if selected {
		return " \u2713" // ✓
	}
	return ""
}

// FromAria converts an accessibility tree into a render tree rooted at the
// combobox, with the listbox and its options beneath it.
func FromAria(t aria.Tree) TreeNode {
	listbox := fromNode(t.Listbox)
	for _, opt := range t.Options() {
		child := fromNode(opt)
		selected, _ := opt.Attr("aria-selected")
		child.Selected = selected == "true"
		listbox.Children = append(listbox.Children, child)
	}

	root := TreeNode{Role: "dropdown", Text: t.Name}
	root.Children = []TreeNode{fromNode(t.Trigger), listbox}
	return root
}

func fromNode(n aria.Node) TreeNode {
	node := TreeNode{Role: n.Role(), Text: n.Text}
	for _, a := range n.Attrs {
		if a.Name == "role" {
			continue
		}
		node.Details = append(node.Details, a.Name+"="+a.Value)
	}
	return node
}

// RenderTree renders a tree starting from a single root node
// Returns the complete tree as a string (without the root - just children)
func RenderTree(root TreeNode, opts TreeRenderOptions) string {
	lines := renderTreeNodes(root.Children, opts, 0, "")
	return strings.Join(lines, "\n")
}

// RenderTreeLines renders multiple root nodes and returns individual lines
// Useful for embedding trees in other output
func RenderTreeLines(roots []TreeNode, opts TreeRenderOptions) []string {
	return renderTreeNodes(roots, opts, 0, "")
}

// renderTreeNodes recursively renders tree nodes
func renderTreeNodes(nodes []TreeNode, opts TreeRenderOptions, depth int, prefix string) []string {
	if opts.MaxDepth > 0 && depth >= opts.MaxDepth {
		return nil
	}

	var lines []string

	for i, node := range nodes {
		isLast := i == len(nodes)-1

		// Build connector
		connector := "\u251c\u2500\u2500 " // ├──
		if isLast {
			connector = "\u2514\u2500\u2500 " // └──
		}

		line := prefix + connector + node.Role
		if node.Text != "" {
			line += fmt.Sprintf(" %q", node.Text)
		}
		if opts.ShowDetails && len(node.Details) > 0 {
			line += " [" + strings.Join(node.Details, " ") + "]"
		}
		line += selectedMark(node.Selected)
		lines = append(lines, line)

		// Build prefix for children
		childPrefix := prefix
		if isLast {
			childPrefix += "    "
		} else {
			childPrefix += "\u2502   " // │
		}

		// Recurse for children
		childLines := renderTreeNodes(node.Children, opts, depth+1, childPrefix)
		lines = append(lines, childLines...)
	}

	return lines
}
