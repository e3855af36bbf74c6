package html

import (
	"html"
	"io"
	"strings"
)

// voidTags are elements serialized without a closing tag.
var voidTags = map[string]bool{
	"br": true, "hr": true, "img": true, "input": true, "meta": true, "link": true,
}

// Render writes the HTML serialization of the tree rooted at n.
//
// Event bindings are not serialized; they exist for the runtime that
// realizes the tree, not for the markup. Text and attribute values are
// escaped.
func (n Node[M]) Render(w io.Writer) error {
	_, err := io.WriteString(w, n.String())
	return err
}

// String returns the HTML serialization of the tree rooted at n.
func (n Node[M]) String() string {
	var sb strings.Builder
	n.render(&sb)
	return sb.String()
}

func (n Node[M]) render(w io.StringWriter) {
	if n.IsText() {
		w.WriteString(html.EscapeString(n.Text))
		return
	}
	w.WriteString("<")
	w.WriteString(n.Tag)
	for _, a := range n.Attrs {
		w.WriteString(" ")
		w.WriteString(a.Key)
		w.WriteString(`="`)
		w.WriteString(html.EscapeString(a.Value))
		w.WriteString(`"`)
	}
	w.WriteString(">")
	if voidTags[n.Tag] {
		return
	}
	for _, c := range n.Children {
		c.render(w)
	}
	w.WriteString("</")
	w.WriteString(n.Tag)
	w.WriteString(">")
}
