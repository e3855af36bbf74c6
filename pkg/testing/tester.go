package testing

import (
	"fmt"

	"github.com/go-widgets/dropdown/pkg/html"
)

// Tester drives a rendered tree without a real UI runtime. It mounts
// the tree a widget's Render produced and simulates raw interactions,
// collecting the messages the tree's bindings emit. The host-side
// update step stays under the test's control: feed the collected
// messages to the widget's Update and Mount the re-rendered tree.
type Tester[M any] struct {
	root    html.Node[M]
	mounted bool
	msgs    []M
}

// NewTester creates an empty tester. Call Mount before interacting.
func NewTester[M any]() *Tester[M] {
	return &Tester[M]{}
}

// Mount replaces the mounted tree. Collected messages are kept.
func (t *Tester[M]) Mount(root html.Node[M]) {
	t.root = root
	t.mounted = true
}

// Root returns the currently mounted tree.
func (t *Tester[M]) Root() html.Node[M] {
	return t.root
}

// Find evaluates a finder against the mounted tree.
func (t *Tester[M]) Find(finder Finder[M]) FinderResult[M] {
	if !t.mounted {
		return FinderResult[M]{finder: finder}
	}
	return FinderResult[M]{
		nodes:  finder.Evaluate(t.root),
		finder: finder,
	}
}

// Press simulates the press phase of an interaction ("mousedown") on
// the first node matched by finder.
func (t *Tester[M]) Press(finder Finder[M]) error {
	return t.fire("mousedown", finder)
}

// Click simulates a full click on the first node matched by finder.
func (t *Tester[M]) Click(finder Finder[M]) error {
	return t.fire("click", finder)
}

// Blur simulates focus leaving the first node matched by finder.
func (t *Tester[M]) Blur(finder Finder[M]) error {
	return t.fire("blur", finder)
}

// fire delivers event to the first matched node. A match without a
// binding for the event is not an error; the interaction simply emits
// nothing, as it would on a real runtime.
func (t *Tester[M]) fire(event string, finder Finder[M]) error {
	result := t.Find(finder)
	if !result.Exists() {
		return fmt.Errorf("%s: finder matched no nodes: %s", event, finder.Description())
	}
	for _, h := range result.First().Handlers {
		if h.Event == event {
			t.msgs = append(t.msgs, h.Msg)
		}
	}
	return nil
}

// Messages returns the messages collected so far, in emission order.
func (t *Tester[M]) Messages() []M {
	return t.msgs
}

// TakeMessages returns the collected messages and clears the queue.
func (t *Tester[M]) TakeMessages() []M {
	msgs := t.msgs
	t.msgs = nil
	return msgs
}
