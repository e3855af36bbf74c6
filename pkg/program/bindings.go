package program

import (
	"strconv"

	"github.com/go-widgets/dropdown/pkg/html"
)

// Bindings maps stable handler identifiers to the messages bound in one
// rendered tree. A transport serializes the annotated tree to a client,
// receives identifiers back for fired events, and looks up the message
// to dispatch. Bindings are valid only for the tree they were built
// from; rebuild them on every render.
type Bindings[M any] struct {
	msgs map[string]M
}

// Annotate walks the tree, assigns each event binding an identifier,
// and returns a copy whose elements carry the identifier as a
// data-on-<event> attribute, plus data-stop-<event> / data-prevent-<event>
// markers for the binding's options. The original tree is not modified.
func Annotate[M any](root html.Node[M]) (html.Node[M], *Bindings[M]) {
	b := &Bindings[M]{msgs: make(map[string]M)}
	next := 0
	annotated := annotate(root, b, &next)
	return annotated, b
}

// Lookup returns the message bound under id.
func (b *Bindings[M]) Lookup(id string) (M, bool) {
	msg, ok := b.msgs[id]
	return msg, ok
}

// Len returns the number of registered bindings.
func (b *Bindings[M]) Len() int {
	return len(b.msgs)
}

func annotate[M any](n html.Node[M], b *Bindings[M], next *int) html.Node[M] {
	out := n
	if len(n.Attrs) > 0 {
		out.Attrs = make([]html.Attr, len(n.Attrs))
		copy(out.Attrs, n.Attrs)
	}
	for _, h := range n.Handlers {
		id := "h" + strconv.Itoa(*next)
		*next++
		b.msgs[id] = h.Msg
		out.Attrs = append(out.Attrs, html.Attr{Key: "data-on-" + h.Event, Value: id})
		if h.StopPropagation {
			out.Attrs = append(out.Attrs, html.Attr{Key: "data-stop-" + h.Event, Value: "true"})
		}
		if h.PreventDefault {
			out.Attrs = append(out.Attrs, html.Attr{Key: "data-prevent-" + h.Event, Value: "true"})
		}
	}
	if len(n.Children) > 0 {
		out.Children = make([]html.Node[M], len(n.Children))
		for i, c := range n.Children {
			out.Children[i] = annotate(c, b, next)
		}
	}
	return out
}
