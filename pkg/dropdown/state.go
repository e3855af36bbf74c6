package dropdown

// State is the open/closed interaction state of a dropdown menu.
type State int

const (
	// Closed means the menu is not showing.
	Closed State = iota
	// Opened means the menu is showing.
	Opened
)

func (s State) String() string {
	if s == Opened {
		return "opened"
	}
	return "closed"
}

// toggle returns the opposite state. It is its own inverse.
func toggle(s State) State {
	if s == Opened {
		return Closed
	}
	return Opened
}
