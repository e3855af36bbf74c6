package dropdown

// Widget is an opaque dropdown handle bundling the widget's settings
// with its open/closed state. The host must persist the latest value
// returned by [Widget.Update]; it is the only place that state lives.
//
// Widget is generic over T, the host-defined item type. Items are
// borrowed per Render call and never stored.
type Widget[T any] struct {
	settings Settings
	state    State
}

// New returns a closed dropdown with DefaultSettings.
func New[T any]() Widget[T] {
	return NewWithSettings[T](DefaultSettings())
}

// NewWithSettings returns a closed dropdown using the given settings.
func NewWithSettings[T any](settings Settings) Widget[T] {
	return Widget[T]{settings: settings, state: Closed}
}

// Update applies an interaction message and returns the next widget
// value together with the semantic event the host should apply to its
// own state. The receiver is not modified.
//
// A [StateMsg] sets the state to exactly the carried target and emits
// [Unchanged]. A [SelectMsg] flips the current state and emits
// [ItemSelected] carrying the item; selection happens while the menu is
// open, so the flip closes it, but no direction is special-cased.
func (w Widget[T]) Update(msg Msg[T]) (Widget[T], Event[T]) {
	switch m := msg.(type) {
	case StateMsg:
		w.state = m.State
		return w, Unchanged{}
	case SelectMsg[T]:
		w.state = toggle(w.state)
		return w, ItemSelected[T]{Item: m.Item}
	default:
		return w, Unchanged{}
	}
}
