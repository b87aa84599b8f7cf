package aria

import (
	"fmt"
	"strings"
)

// Markdown renders t as an accessibility report: a heading and one table row
// per element.
func Markdown(t Tree) string {
	var sb strings.Builder

	title := "Dropdown"
	if t.Name != "" {
		title = fmt.Sprintf("Dropdown %q", t.Name)
	}
	sb.WriteString("# " + title + "\n\n")
	sb.WriteString("| Element | Role | Text | Attributes |\n")
	sb.WriteString("|---|---|---|---|\n")

	row := func(element string, n Node) {
		var attrs []string
		for _, a := range n.Attrs {
			if a.Name == "role" {
				continue
			}
			attrs = append(attrs, fmt.Sprintf("`%s=%s`", a.Name, a.Value))
		}
		fmt.Fprintf(&sb, "| %s | %s | %s | %s |\n",
			element, n.Role(), cell(n.Text), cell(strings.Join(attrs, " ")))
	}

	row("trigger", t.Trigger)
	row("popup", t.Listbox)
	for i, opt := range t.Options() {
		row(fmt.Sprintf("option %d", i), opt)
	}

	return sb.String()
}

func cell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
