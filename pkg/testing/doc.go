// Package testing provides utilities for testing rendered widget trees
// without a real UI runtime.
//
// A [Tester] mounts a UI description produced by a widget's Render and
// simulates the raw interactions a runtime would deliver (Press, Click,
// Blur), collecting the messages the tree's event bindings emit.
// [Finder] values locate nodes in the mounted tree by tag, class, text,
// or predicate.
//
//	tester := uitest.NewTester[dropdown.Msg[string]]()
//	tester.Mount(widget.Render(items, nil, label))
//	if err := tester.Click(uitest.ByTag[dropdown.Msg[string]]("button")); err != nil {
//	    t.Fatal(err)
//	}
//	msgs := tester.TakeMessages()
package testing
