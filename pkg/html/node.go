// Package html describes user interfaces as plain values.
//
// A [Node] is one node of a UI description tree: either an element with
// a tag, attributes, event bindings, and children, or a text node. Trees
// are built with struct literals or the El/Text helpers and are never
// mutated after construction; an external runtime reconciles them
// against a real display and routes bound events back as messages.
//
// Node is generic over M, the message type its event bindings carry.
// [Map] converts a tree from one message type to another, which lets a
// host embed a widget's messages inside its own message union.
package html

// Attr is a single attribute on an element node. The value is opaque to
// this package; it is serialized as-is (escaped) and never interpreted.
type Attr struct {
	// Key is the attribute name, e.g. "class".
	Key string
	// Value is the attribute value.
	Value string
}

// Handler binds a DOM-style event on an element to a message. The
// runtime that realizes the tree delivers Msg to the host whenever the
// named event fires on the element.
type Handler[M any] struct {
	// Event is the DOM event name, e.g. "click", "mousedown", "blur".
	Event string
	// Msg is delivered to the host when the event fires.
	Msg M
	// StopPropagation stops the event from bubbling further.
	StopPropagation bool
	// PreventDefault suppresses the default browser action.
	PreventDefault bool
}

// Node is one node of a UI description tree.
//
// An element node has a non-empty Tag. A text node has an empty Tag and
// its content in Text; attributes, handlers, and children on a text
// node are ignored. The zero value is an empty text node.
type Node[M any] struct {
	// Tag is the element name; empty for text nodes.
	Tag string
	// Text is the content of a text node.
	Text string
	// Attrs are the element's attributes in serialization order.
	Attrs []Attr
	// Handlers are the element's event bindings.
	Handlers []Handler[M]
	// Children are the element's child nodes in order.
	Children []Node[M]
}

// El returns an element node with the given tag and children.
func El[M any](tag string, children ...Node[M]) Node[M] {
	return Node[M]{Tag: tag, Children: children}
}

// Text returns a text node with the given content.
func Text[M any](content string) Node[M] {
	return Node[M]{Text: content}
}

// Class returns a class attribute.
func Class(name string) Attr {
	return Attr{Key: "class", Value: name}
}

// On returns a handler for event that emits msg with default event
// behavior (no propagation stop, no default suppression).
func On[M any](event string, msg M) Handler[M] {
	return Handler[M]{Event: event, Msg: msg}
}

// OnWithOptions returns a handler for event that emits msg, optionally
// stopping propagation and suppressing the default browser action.
func OnWithOptions[M any](event string, msg M, stopPropagation, preventDefault bool) Handler[M] {
	return Handler[M]{
		Event:           event,
		Msg:             msg,
		StopPropagation: stopPropagation,
		PreventDefault:  preventDefault,
	}
}

// IsText reports whether n is a text node.
func (n Node[M]) IsText() bool {
	return n.Tag == ""
}

// Attr returns the value of the named attribute and whether it is set.
func (n Node[M]) Attr(key string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// PlainText returns the concatenated text content of n's subtree in
// document order.
func (n Node[M]) PlainText() string {
	if n.IsText() {
		return n.Text
	}
	var out string
	for _, c := range n.Children {
		out += c.PlainText()
	}
	return out
}

// Walk performs a depth-first pre-order traversal of the tree rooted at
// n. The visitor returns false to stop the traversal.
func Walk[M any](n Node[M], visit func(Node[M]) bool) {
	walk(n, visit)
}

func walk[M any](n Node[M], visit func(Node[M]) bool) bool {
	if !visit(n) {
		return false
	}
	for _, c := range n.Children {
		if !walk(c, visit) {
			return false
		}
	}
	return true
}

// Map returns a copy of n with every bound message transformed by fn.
// The tree structure, attributes, and handler options are preserved.
func Map[A, B any](n Node[A], fn func(A) B) Node[B] {
	out := Node[B]{Tag: n.Tag, Text: n.Text}
	if len(n.Attrs) > 0 {
		out.Attrs = make([]Attr, len(n.Attrs))
		copy(out.Attrs, n.Attrs)
	}
	if len(n.Handlers) > 0 {
		out.Handlers = make([]Handler[B], len(n.Handlers))
		for i, h := range n.Handlers {
			out.Handlers[i] = Handler[B]{
				Event:           h.Event,
				Msg:             fn(h.Msg),
				StopPropagation: h.StopPropagation,
				PreventDefault:  h.PreventDefault,
			}
		}
	}
	if len(n.Children) > 0 {
		out.Children = make([]Node[B], len(n.Children))
		for i, c := range n.Children {
			out.Children[i] = Map(c, fn)
		}
	}
	return out
}
