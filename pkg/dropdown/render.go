package dropdown

import (
	"reflect"

	"github.com/go-widgets/dropdown/pkg/html"
)

// Render produces the UI description for the dropdown: a container
// holding the toggle button and the item menu. label extracts the
// visible text for an item; selected is the host's current selection,
// nil when there is none.
//
// Render is pure. It changes no state; every state change goes through
// a later [Widget.Update] call with a message bound here. An empty item
// list and a nil selection are valid and yield a placeholder-only
// button over an empty menu.
func (w Widget[T]) Render(items []T, selected *T, label func(T) string) html.Node[Msg[T]] {
	menuClass := w.settings.ClosedClass
	arrowClass := w.settings.ArrowDownClass
	nextState := Opened
	if w.state == Opened {
		menuClass = w.settings.OpenedClass
		arrowClass = w.settings.ArrowUpClass
		nextState = Closed
	}

	buttonLabel := w.settings.Placeholder
	if selected != nil {
		buttonLabel = label(*selected)
	}

	entries := make([]html.Node[Msg[T]], 0, len(items))
	for _, item := range items {
		itemClass := w.settings.ItemClass
		if selected != nil && reflect.DeepEqual(item, *selected) {
			itemClass = w.settings.ActiveItemClass
		}
		entries = append(entries, html.Node[Msg[T]]{
			Tag:   "li",
			Attrs: []html.Attr{html.Class(itemClass)},
			Handlers: []html.Handler[Msg[T]]{
				// Selection fires on the press phase, before the button
				// can lose focus, and must not bubble into the button's
				// own blur-driven close.
				html.OnWithOptions[Msg[T]]("mousedown", SelectMsg[T]{Item: item}, true, true),
			},
			Children: []html.Node[Msg[T]]{html.Text[Msg[T]](label(item))},
		})
	}

	button := html.Node[Msg[T]]{
		Tag:   "button",
		Attrs: []html.Attr{html.Class(w.settings.ButtonClass)},
		Handlers: []html.Handler[Msg[T]]{
			html.On[Msg[T]]("click", StateMsg{State: nextState}),
			// Leaving focus always closes, regardless of the pending
			// next state computed above.
			html.On[Msg[T]]("blur", StateMsg{State: Closed}),
		},
		Children: []html.Node[Msg[T]]{
			html.Text[Msg[T]](buttonLabel),
			{Tag: "i", Attrs: []html.Attr{html.Class(arrowClass)}},
		},
	}

	return html.Node[Msg[T]]{
		Tag:   "div",
		Attrs: []html.Attr{html.Class(w.settings.ContainerClass)},
		Children: []html.Node[Msg[T]]{
			button,
			{Tag: "ul", Attrs: []html.Attr{html.Class(menuClass)}, Children: entries},
		},
	}
}
