package dropdown

// Msg is an interaction message produced by a rendered dropdown and
// interpreted by [Widget.Update]. It is a closed union: the only
// implementations are [StateMsg] and [SelectMsg].
type Msg[T any] interface {
	isMsg()
}

// StateMsg asks the widget to enter a specific open/closed state.
type StateMsg struct {
	// State is the target state.
	State State
}

func (StateMsg) isMsg() {}

// SelectMsg asks for Item to become the selection.
type SelectMsg[T any] struct {
	// Item is the pressed item.
	Item T
}

func (SelectMsg[T]) isMsg() {}

// Event describes the externally meaningful result of an Update call.
// It is a closed union: the only implementations are [Unchanged] and
// [ItemSelected].
type Event[T any] interface {
	isEvent()
}

// Unchanged reports that nothing externally visible changed.
type Unchanged struct{}

func (Unchanged) isEvent() {}

// ItemSelected reports that the user selected Item. The host applies it
// to its own selection state.
type ItemSelected[T any] struct {
	// Item is the newly selected item.
	Item T
}

func (ItemSelected[T]) isEvent() {}
