package output

import (
	"strings"
	"testing"

	"github.com/marcus/dropdown/pkg/aria"
)

func TestRenderTreeLines_Empty(t *testing.T) {
	lines := RenderTreeLines(nil, TreeRenderOptions{})
	if len(lines) != 0 {
		t.Errorf("expected empty lines, got %d", len(lines))
	}
}

func TestRenderTreeLines_SingleNode(t *testing.T) {
	nodes := []TreeNode{
		{Role: "option", Text: "Red", Details: []string{"id=Red"}, Selected: true},
	}
	lines := RenderTreeLines(nodes, TreeRenderOptions{ShowDetails: true})

	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}

	line := lines[0]
	if !strings.Contains(line, "└──") {
		t.Errorf("expected last-item connector, got: %s", line)
	}
	if !strings.Contains(line, `option "Red"`) {
		t.Errorf("expected role and text in output, got: %s", line)
	}
	if !strings.Contains(line, "[id=Red]") {
		t.Errorf("expected details in output, got: %s", line)
	}
	if !strings.HasSuffix(line, "✓") {
		t.Errorf("expected selected mark, got: %s", line)
	}
}

func TestRenderTreeLines_HidesDetails(t *testing.T) {
	nodes := []TreeNode{{Role: "option", Text: "Red", Details: []string{"id=Red"}}}
	lines := RenderTreeLines(nodes, TreeRenderOptions{})
	if strings.Contains(lines[0], "id=Red") {
		t.Errorf("details shown without ShowDetails: %s", lines[0])
	}
}

func TestRenderTreeLines_WithChildren(t *testing.T) {
	nodes := []TreeNode{
		{Role: "combobox", Text: "Red"},
		{Role: "listbox", Children: []TreeNode{
			{Role: "option", Text: "Red"},
			{Role: "option", Text: "Green"},
		}},
	}
	lines := RenderTreeLines(nodes, TreeRenderOptions{})

	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d: %v", len(lines), lines)
	}
	if !strings.HasPrefix(lines[0], "├──") {
		t.Errorf("expected non-last connector, got: %s", lines[0])
	}
	if !strings.HasPrefix(lines[2], "    ├──") {
		t.Errorf("expected indented child, got: %q", lines[2])
	}
	if !strings.HasPrefix(lines[3], "    └──") {
		t.Errorf("expected indented last child, got: %q", lines[3])
	}
}

func TestRenderTreeLines_MaxDepth(t *testing.T) {
	nodes := []TreeNode{
		{Role: "listbox", Children: []TreeNode{{Role: "option", Text: "Red"}}},
	}
	lines := RenderTreeLines(nodes, TreeRenderOptions{MaxDepth: 1})
	if len(lines) != 1 {
		t.Errorf("expected 1 line with MaxDepth 1, got %d", len(lines))
	}
}

func TestFromAria(t *testing.T) {
	tree := aria.Build(aria.Input{Name: "Color", Options: []string{"Red", "Green"}, Selected: 1})

	root := FromAria(tree)
	out := RenderTree(root, TreeRenderOptions{ShowDetails: true})

	for _, want := range []string{
		`├── combobox "Green" [type=button aria-controls=listoptions`,
		`└── listbox [style=display: none id=listoptions aria-label=Color tabindex=-1]`,
		`    ├── option "Red" [id=Red aria-selected=false tabindex=-1]`,
		`    └── option "Green" [id=Green aria-selected=true tabindex=-1] ✓`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("tree missing %q\ngot:\n%s", want, out)
		}
	}
}
