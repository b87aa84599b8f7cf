package aria

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// ContainerClass is the class of the wrapping element.
const ContainerClass = "select-dropdown"

// Markup renders t as HTML. Attribute order follows the tree; text and
// attribute values are escaped.
func Markup(t Tree) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var sb strings.Builder
		sb.WriteString(`<div class="` + ContainerClass + `">`)
		writeNode(&sb, t.Trigger)
		writeNode(&sb, t.Listbox)
		sb.WriteString(`</div>`)
		_, err := io.WriteString(w, sb.String())
		return err
	})
}

func writeNode(sb *strings.Builder, n Node) {
	sb.WriteString("<" + n.Tag)
	for _, a := range n.Attrs {
		sb.WriteString(" " + a.Name + `="` + templ.EscapeString(a.Value) + `"`)
	}
	sb.WriteString(">")
	sb.WriteString(templ.EscapeString(n.Text))
	for _, c := range n.Children {
		writeNode(sb, c)
	}
	sb.WriteString("</" + n.Tag + ">")
}
