// Package dropdown implements a reusable, generic dropdown-selection
// widget as a pure update/render core.
//
// The widget owns only its own open/closed interaction state. The item
// list and the current selection stay in the host application and are
// passed fresh on every Render call, so the widget is a stateless
// rendering and event-translation layer over the host's data.
//
// # Host loop
//
// The host holds the latest [Widget] value, renders it, and feeds every
// interaction message back through [Widget.Update]:
//
//	w := dropdown.New[string]()
//	node := w.Render(items, selected, func(s string) string { return s })
//	// ... runtime delivers a dropdown.Msg ...
//	w, event := w.Update(msg)
//	if sel, ok := event.(dropdown.ItemSelected[string]); ok {
//	    selected = &sel.Item
//	}
//	// re-render with the new widget value
//
// Update and Render are pure: Update returns a new widget value and
// never mutates the receiver, and Render produces the same tree for the
// same inputs. If the host's runtime delivers events concurrently it
// must apply them in arrival order, persisting each returned widget
// before applying the next; pkg/program provides a loop that does this.
//
// # Items
//
// The item type T is opaque to the widget and compared by value with
// reflect.DeepEqual, never by position, so the active-item marking
// stays correct when the host reorders or regenerates its list.
package dropdown
